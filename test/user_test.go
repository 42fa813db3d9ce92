package test

import (
	"CivicPulseAPI/internal/model"
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetUserProfile(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "profile@test.com")
	token := tokenFor(citizen)

	rr := createReport(token, defaultReportRequest())
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	// Anonymous viewers see trust and gamification but no email.
	req, _ := http.NewRequest("GET", "/api/users/"+citizen.ID.String(), nil)
	rr = executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	profile := decodeData[model.UserDTO](t, rr)
	assert.Equal(t, citizen.ID, profile.ID)
	assert.Equal(t, 100, profile.TrustScore)
	assert.Equal(t, 10, profile.Gamification.Points)
	assert.Equal(t, 1, profile.Gamification.Level)
	assert.Equal(t, 1, profile.Gamification.Streak)
	assert.Contains(t, profile.Gamification.Badges, "reporter")
	assert.Empty(t, profile.Email)

	// The user themselves sees their own email.
	req, _ = http.NewRequest("GET", "/api/users/"+citizen.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code)

	profile = decodeData[model.UserDTO](t, rr)
	assert.Equal(t, "profile@test.com", profile.Email)
}

func TestGetUserProfile_StaffSeesEmail(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "citizen@test.com")
	staff := createStaff(ctx, "staff@test.com")

	req, _ := http.NewRequest("GET", "/api/users/"+citizen.ID.String(), nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(staff))
	rr := executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code)

	profile := decodeData[model.UserDTO](t, rr)
	assert.Equal(t, "citizen@test.com", profile.Email)
}

func TestGetUserProfile_NotFound(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	req, _ := http.NewRequest("GET", "/api/users/"+uuid.NewString(), nil)
	rr := executeRequest(req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
