package test

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/statusupdate"
	"CivicPulseAPI/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func transition(token string, reportID uuid.UUID, status, message string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(model.TransitionStatusRequest{Status: status, Message: message})
	url := fmt.Sprintf("/api/reports/%s/status", reportID)
	req, _ := http.NewRequest("PATCH", url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return executeRequest(req)
}

func linkDuplicate(token string, reportID, canonicalID uuid.UUID) *httptest.ResponseRecorder {
	body, _ := json.Marshal(model.LinkDuplicateRequest{CanonicalID: canonicalID})
	url := fmt.Sprintf("/api/reports/%s/duplicate", reportID)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return executeRequest(req)
}

func TestTransitionStatus_FullWorkflow(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	staff := createStaff(ctx, "staff@test.com")
	staffToken := tokenFor(staff)

	seeded := seedReport(ctx, citizen, nil)

	rr := transition(staffToken, seeded.ID, "validated", "Confirmed on site")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	validated := decodeData[model.ReportResponse](t, rr)
	assert.Equal(t, "validated", validated.Status)

	r := testClient.Report.GetX(ctx, seeded.ID)
	assert.True(t, r.IsValidated)
	assert.NotNil(t, r.ValidatedAt)
	assert.Equal(t, staff.ID, *r.ValidatedBy)

	rr = transition(staffToken, seeded.ID, "in_progress", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = transition(staffToken, seeded.ID, "resolved", "Replaced the bulb")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	resolved := decodeData[model.ReportResponse](t, rr)
	assert.Equal(t, "resolved", resolved.Status)
	assert.NotNil(t, resolved.Resolution)
	assert.NotNil(t, resolved.Resolution.ResolvedAt)
	assert.Equal(t, staff.ID, *resolved.Resolution.ResolvedBy)
	assert.NotNil(t, resolved.SLA.ActualResolutionHours)

	audit := testClient.StatusUpdate.Query().
		Where(statusupdate.ReportID(seeded.ID)).
		Order(statusupdate.ByCreatedAt()).
		AllX(ctx)
	assert.Len(t, audit, 3)
	assert.Equal(t, statusupdate.StatusValidated, audit[0].Status)
	assert.Equal(t, statusupdate.StatusInProgress, audit[1].Status)
	assert.Equal(t, statusupdate.StatusResolved, audit[2].Status)
}

func TestTransitionStatus_IllegalLeavesReportUntouched(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	staff := createStaff(ctx, "staff@test.com")

	seeded := seedReport(ctx, citizen, nil)

	rr := transition(tokenFor(staff), seeded.ID, "resolved", "skipping the queue")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())

	r := testClient.Report.GetX(ctx, seeded.ID)
	assert.Equal(t, "submitted", string(r.Status))
	assert.Nil(t, r.ResolvedAt)

	audit := testClient.StatusUpdate.Query().CountX(ctx)
	assert.Equal(t, 0, audit)
}

func TestTransitionStatus_TerminalIsFinal(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	staff := createStaff(ctx, "staff@test.com")
	staffToken := tokenFor(staff)

	seeded := seedReport(ctx, citizen, nil)
	transition(staffToken, seeded.ID, "rejected", "not actionable")

	rr := transition(staffToken, seeded.ID, "validated", "second thoughts")
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestTransitionStatus_RequiresStaff(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	seeded := seedReport(ctx, citizen, nil)

	rr := transition(tokenFor(citizen), seeded.ID, "validated", "")
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestResolve_OverdueFromDepartmentHours(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	createDepartment(ctx, "DPW", []string{"roads_transport"}, 1, 12)
	citizen := createCitizen(ctx, "reporter@test.com")
	staff := createStaff(ctx, "staff@test.com")

	// No per-report expectation; the department's resolution hours decide
	// whether two hours in the queue counts as overdue.
	seeded := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetStatus(report.StatusInProgress).
			SetAssignedDepartmentCode("DPW").
			SetCreatedAt(time.Now().UTC().Add(-2 * time.Hour))
	})

	rr := transition(tokenFor(staff), seeded.ID, "resolved", "Patched")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	r := testClient.Report.GetX(ctx, seeded.ID)
	assert.True(t, r.IsOverdue)
}

func TestLinkDuplicate(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	staff := createStaff(ctx, "staff@test.com")

	canonical := seedReport(ctx, citizen, nil)
	duplicate := seedReport(ctx, citizen, nil)

	rr := linkDuplicate(tokenFor(staff), duplicate.ID, canonical.ID)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	linked := decodeData[model.ReportResponse](t, rr)
	assert.Equal(t, "duplicate", linked.Status)
	assert.NotNil(t, linked.DuplicateOf)
	assert.Equal(t, canonical.ID, *linked.DuplicateOf)

	root := testClient.Report.GetX(ctx, canonical.ID)
	assert.Nil(t, root.DuplicateOfID)
	assert.Equal(t, "submitted", string(root.Status))
}

func TestLinkDuplicate_InboundDuplicatesFollowNewCanonical(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	staff := createStaff(ctx, "staff@test.com")
	staffToken := tokenFor(staff)

	first := seedReport(ctx, citizen, nil)
	middle := seedReport(ctx, citizen, nil)
	root := seedReport(ctx, citizen, nil)

	rr := linkDuplicate(staffToken, first.ID, middle.ID)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	// Linking middle after it collected a duplicate of its own must
	// re-point that duplicate at the new canonical, keeping the forest flat.
	rr = linkDuplicate(staffToken, middle.ID, root.ID)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	movedFirst := testClient.Report.GetX(ctx, first.ID)
	assert.NotNil(t, movedFirst.DuplicateOfID)
	assert.Equal(t, root.ID, *movedFirst.DuplicateOfID)

	movedMiddle := testClient.Report.GetX(ctx, middle.ID)
	assert.NotNil(t, movedMiddle.DuplicateOfID)
	assert.Equal(t, root.ID, *movedMiddle.DuplicateOfID)
	assert.Equal(t, "duplicate", string(movedMiddle.Status))
}

func TestLinkDuplicate_ReciprocalIsCycle(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	staff := createStaff(ctx, "staff@test.com")
	staffToken := tokenFor(staff)

	a := seedReport(ctx, citizen, nil)
	b := seedReport(ctx, citizen, nil)

	rr := linkDuplicate(staffToken, a.ID, b.ID)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = linkDuplicate(staffToken, b.ID, a.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code, rr.Body.String())

	// Nothing moved on the failed link.
	rb := testClient.Report.GetX(ctx, b.ID)
	assert.Nil(t, rb.DuplicateOfID)
	assert.Equal(t, "submitted", string(rb.Status))
}

func TestLinkDuplicate_CanonicalMustBeRoot(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	staff := createStaff(ctx, "staff@test.com")
	staffToken := tokenFor(staff)

	root := seedReport(ctx, citizen, nil)
	child := seedReport(ctx, citizen, nil)
	grandchild := seedReport(ctx, citizen, nil)

	rr := linkDuplicate(staffToken, child.ID, root.ID)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = linkDuplicate(staffToken, grandchild.ID, child.ID)
	assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
}

func TestLinkDuplicate_Self(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	staff := createStaff(ctx, "staff@test.com")

	a := seedReport(ctx, citizen, nil)

	rr := linkDuplicate(tokenFor(staff), a.ID, a.ID)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
