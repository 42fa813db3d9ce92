package test

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/internal/repository"
	"CivicPulseAPI/internal/scheduler/job"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEscalationSweep_EscalatesOncePerWindow(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	createDepartment(ctx, "DPW", []string{"roads_transport"}, 168, 2)
	citizen := createCitizen(ctx, "reporter@test.com")

	stale := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetAssignedDepartmentCode("DPW").
			SetStatusChangedAt(time.Now().UTC().Add(-3 * time.Hour))
	})
	fresh := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetAssignedDepartmentCode("DPW").
			SetStatusChangedAt(time.Now().UTC().Add(-1 * time.Hour))
	})

	sweeps := repository.NewSweepRepository(redisAdapter)

	err := job.RunEscalationSweep(ctx, testClient, sweeps, testConfig, nil)
	assert.NoError(t, err)

	r := testClient.Report.GetX(ctx, stale.ID)
	assert.Equal(t, 1, r.EscalationLevel)
	assert.NotNil(t, r.LastEscalatedAt)

	untouched := testClient.Report.GetX(ctx, fresh.ID)
	assert.Equal(t, 0, untouched.EscalationLevel)

	// Re-running inside the same window must not escalate again: level 2
	// needs 4 hours since the status change, only 3 have passed.
	err = job.RunEscalationSweep(ctx, testClient, sweeps, testConfig, nil)
	assert.NoError(t, err)

	r = testClient.Report.GetX(ctx, stale.ID)
	assert.Equal(t, 1, r.EscalationLevel)
}

func TestEscalationSweep_ResumesAfterCursor(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	createDepartment(ctx, "DPW", []string{"roads_transport"}, 168, 2)
	citizen := createCitizen(ctx, "reporter@test.com")

	// UUIDv7 IDs order by creation time, so a comes before b in the scan.
	a := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetAssignedDepartmentCode("DPW").
			SetStatusChangedAt(time.Now().UTC().Add(-3 * time.Hour))
	})
	b := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetAssignedDepartmentCode("DPW").
			SetStatusChangedAt(time.Now().UTC().Add(-3 * time.Hour))
	})

	sweeps := repository.NewSweepRepository(redisAdapter)

	// A checkpoint at a means a was already handled by the interrupted
	// pass; the resume must pick up strictly after it.
	err := sweeps.SetCursor(ctx, "escalation", a.ID)
	assert.NoError(t, err)

	err = job.RunEscalationSweep(ctx, testClient, sweeps, testConfig, nil)
	assert.NoError(t, err)

	assert.Equal(t, 0, testClient.Report.GetX(ctx, a.ID).EscalationLevel)
	assert.Equal(t, 1, testClient.Report.GetX(ctx, b.ID).EscalationLevel)

	cursor, err := sweeps.GetCursor(ctx, "escalation")
	assert.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestEscalationSweep_SkipsTerminalReports(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	createDepartment(ctx, "DPW", []string{"roads_transport"}, 168, 1)
	citizen := createCitizen(ctx, "reporter@test.com")

	resolved := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetAssignedDepartmentCode("DPW").
			SetStatus(report.StatusResolved).
			SetStatusChangedAt(time.Now().UTC().Add(-48 * time.Hour))
	})

	sweeps := repository.NewSweepRepository(redisAdapter)
	err := job.RunEscalationSweep(ctx, testClient, sweeps, testConfig, nil)
	assert.NoError(t, err)

	r := testClient.Report.GetX(ctx, resolved.ID)
	assert.Equal(t, 0, r.EscalationLevel)
}

func TestOverdueSweep(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	citizen := createCitizen(ctx, "reporter@test.com")

	past := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetExpectedResolutionHours(1).
			SetCreatedAt(time.Now().UTC().Add(-2 * time.Hour))
	})
	within := seedReport(ctx, citizen, func(c *ent.ReportCreate) {
		c.SetExpectedResolutionHours(24).
			SetCreatedAt(time.Now().UTC().Add(-2 * time.Hour))
	})

	err := job.RunOverdueSweep(ctx, testClient, testConfig)
	assert.NoError(t, err)

	assert.True(t, testClient.Report.GetX(ctx, past.ID).IsOverdue)
	assert.False(t, testClient.Report.GetX(ctx, within.ID).IsOverdue)
}
