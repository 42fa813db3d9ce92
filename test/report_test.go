package test

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seedReport(ctx context.Context, reporter *ent.User, mutate func(*ent.ReportCreate)) *ent.Report {
	create := testClient.Report.Create().
		SetReportNumber(helper.NewReportNumber()).
		SetTitle("Seeded report").
		SetDescription("Seeded description for integration tests").
		SetCategory(report.CategoryRoadsTransport).
		SetLongitude(-73.9857).
		SetLatitude(40.7484).
		SetCity("New York").
		SetReporterID(reporter.ID)
	if mutate != nil {
		mutate(create)
	}
	return create.SaveX(ctx)
}

func TestCreateReport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	createDepartment(ctx, "DPW", []string{"street_lighting"}, 48, 12)
	citizen := createCitizen(ctx, "reporter@test.com")
	token := tokenFor(citizen)

	rr := createReport(token, defaultReportRequest())
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	resp := decodeData[model.ReportResponse](t, rr)
	assert.True(t, helper.ValidReportNumber(resp.ReportNumber))
	assert.Equal(t, "Broken streetlight on 5th Ave", resp.Title)
	assert.Equal(t, "street_lighting", resp.Category)
	assert.Equal(t, "submitted", resp.Status)
	assert.Equal(t, []float64{-73.9857, 40.7484}, resp.Coordinates)
	assert.Equal(t, "DPW", resp.AssignedDepartmentCode)
	assert.NotNil(t, resp.SLA.ExpectedResolutionHours)
	assert.Equal(t, 48.0, *resp.SLA.ExpectedResolutionHours)

	assert.Equal(t, 0, resp.Votes.Upvotes)
	assert.Equal(t, 0, resp.Votes.Downvotes)
	assert.Equal(t, 0, resp.Votes.TotalVotes)

	u := testClient.User.GetX(ctx, citizen.ID)
	assert.Equal(t, 10, u.Points)
	assert.Equal(t, 1, u.Streak)
	assert.Equal(t, 1, u.ReportsSubmitted)
	assert.Contains(t, u.Badges, "reporter")
}

func TestCreateReport_NoDepartmentFallsBackToDefaultSLA(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")

	rr := createReport(tokenFor(citizen), defaultReportRequest())
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	resp := decodeData[model.ReportResponse](t, rr)
	assert.Empty(t, resp.AssignedDepartmentCode)
	assert.NotNil(t, resp.SLA.ExpectedResolutionHours)
	assert.Equal(t, testConfig.DefaultResolutionHours, *resp.SLA.ExpectedResolutionHours)
}

func TestCreateReport_Validation(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	token := tokenFor(citizen)

	missingTitle := defaultReportRequest()
	missingTitle.Title = ""
	rr := createReport(token, missingTitle)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	badCategory := defaultReportRequest()
	badCategory.Category = "potholes"
	rr = createReport(token, badCategory)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	badCoordinates := defaultReportRequest()
	badCoordinates.Coordinates = []float64{200, 40.7484}
	rr = createReport(token, badCoordinates)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	missingCity := defaultReportRequest()
	missingCity.Address.City = ""
	rr = createReport(token, missingCity)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	count := testClient.Report.Query().CountX(ctx)
	assert.Equal(t, 0, count)
}

func TestGetReport_IncrementsViews(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	seeded := seedReport(ctx, citizen, nil)

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("GET", "/api/reports/"+seeded.ID.String(), nil)
		rr := executeRequest(req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	r := testClient.Report.GetX(ctx, seeded.ID)
	assert.Equal(t, 2, r.Views)
}

func TestGetReport_HiddenOnlyVisibleToOwnerAndStaff(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	owner := createCitizen(ctx, "owner@test.com")
	other := createCitizen(ctx, "other@test.com")
	staff := createStaff(ctx, "staff@test.com")

	hidden := seedReport(ctx, owner, func(c *ent.ReportCreate) {
		c.SetIsPublic(false)
	})

	get := func(token string) int {
		req, _ := http.NewRequest("GET", "/api/reports/"+hidden.ID.String(), nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return executeRequest(req).Code
	}

	assert.Equal(t, http.StatusNotFound, get(""))
	assert.Equal(t, http.StatusNotFound, get(tokenFor(other)))
	assert.Equal(t, http.StatusOK, get(tokenFor(owner)))
	assert.Equal(t, http.StatusOK, get(tokenFor(staff)))
}

func TestSearchReports(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetTitle("Pothole near the library")
	})
	seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetTitle("Overflowing trash can")
	})

	req, _ := http.NewRequest("GET", "/api/reports/search?q=pothole", nil)
	rr := executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code)

	results := decodeData[[]model.ReportResponse](t, rr)
	assert.Len(t, results, 1)
	assert.Equal(t, "Pothole near the library", results[0].Title)
}

func TestNearbyReports_RadiusAndOrdering(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")

	// Center: Empire State Building. One report ~100m away, one ~4km away,
	// one across the country.
	near := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetTitle("Near").SetLongitude(-73.9850).SetLatitude(40.7490)
	})
	mid := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetTitle("Mid").SetLongitude(-73.9665).SetLatitude(40.7812)
	})
	seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetTitle("Far").SetLongitude(-122.4194).SetLatitude(37.7749)
	})

	url := "/api/reports/nearby?lon=-73.9857&lat=40.7484&radius=1000"
	req, _ := http.NewRequest("GET", url, nil)
	rr := executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code)

	small := decodeData[[]model.NearbyReportResponse](t, rr)
	assert.Len(t, small, 1)
	assert.Equal(t, near.ID, small[0].ID)
	assert.Less(t, small[0].DistanceMeters, 1000.0)

	url = "/api/reports/nearby?lon=-73.9857&lat=40.7484&radius=5000"
	req, _ = http.NewRequest("GET", url, nil)
	rr = executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code)

	wide := decodeData[[]model.NearbyReportResponse](t, rr)
	assert.Len(t, wide, 2)
	assert.Equal(t, near.ID, wide[0].ID)
	assert.Equal(t, mid.ID, wide[1].ID)
	assert.Less(t, wide[0].DistanceMeters, wide[1].DistanceMeters)
}

func TestAnalytics(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	for i := 0; i < 3; i++ {
		seedReport(ctx, citizen, nil)
	}
	seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetCategory(report.CategoryWasteManagement)
	})

	url := "/api/reports/analytics?start=2020-01-01T00:00:00Z&end=2030-01-01T00:00:00Z"
	req, _ := http.NewRequest("GET", url, nil)
	rr := executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rows := decodeData[[]model.AnalyticsRow](t, rr)
	total := 0
	for _, row := range rows {
		total += row.Count
	}
	assert.Equal(t, 4, total)
}

func TestAddComment(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	seeded := seedReport(ctx, citizen, nil)

	body := []byte(`{"message": "Any update on this?"}`)
	url := fmt.Sprintf("/api/reports/%s/comments", seeded.ID)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tokenFor(citizen))

	rr := executeRequest(req)
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	comment := decodeData[model.CommentResponse](t, rr)
	assert.Equal(t, "Any update on this?", comment.Message)
	assert.True(t, comment.IsPublic)
}

func TestListReports_Pagination(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "lister@test.com")
	for i := 0; i < 25; i++ {
		seedReport(ctx, citizen, nil)
	}

	var page struct {
		Data []model.ReportResponse `json:"data"`
		Meta helper.PaginationMeta  `json:"meta"`
	}

	req, _ := http.NewRequest("GET", "/api/reports?category=roads_transport&limit=10", nil)
	rr := executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Len(t, page.Data, 10)
	assert.True(t, page.Meta.HasNext)
	assert.Equal(t, "10", page.Meta.NextCursor)

	req, _ = http.NewRequest("GET", "/api/reports?category=roads_transport&limit=10&offset=20", nil)
	rr = executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &page))
	assert.Len(t, page.Data, 5)
	assert.False(t, page.Meta.HasNext)
	assert.Empty(t, page.Meta.NextCursor)
}

func TestRemoveMedia(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	token := tokenFor(citizen)

	keepURL := "https://cdn.test/reports/keep.jpg"
	dropURL := "https://cdn.test/reports/drop.jpg"
	seeded := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetMedia([]model.MediaRef{
			{Type: "image", URL: keepURL},
			{Type: "image", URL: dropURL},
		})
	})

	path := fmt.Sprintf("/api/reports/%s/media?url=%s", seeded.ID, url.QueryEscape(dropURL))
	req, _ := http.NewRequest("DELETE", path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	r := testClient.Report.GetX(ctx, seeded.ID)
	assert.Len(t, r.Media, 1)
	assert.Equal(t, keepURL, r.Media[0].URL)

	// Removing a reference the report never carried is a 404.
	rr = executeRequest(req)
	assert.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())
}
