package test

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportCreationRateLimit(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")
	token := tokenFor(citizen)

	for i := 0; i < testConfig.ReportRateLimitPerHour; i++ {
		req := defaultReportRequest()
		req.Title = fmt.Sprintf("Report number %d", i)
		rr := createReport(token, req)
		assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
		remaining := testConfig.ReportRateLimitPerHour - i - 1
		assert.Equal(t, strconv.Itoa(remaining), rr.Header().Get("X-RateLimit-Remaining"))
	}

	rr := createReport(token, defaultReportRequest())
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "0", rr.Header().Get("X-RateLimit-Remaining"))

	// The limit is per user, not global.
	other := createCitizen(ctx, "other@test.com")
	rr = createReport(tokenFor(other), defaultReportRequest())
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}
