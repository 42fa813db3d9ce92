package job

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/internal/config"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// RunOverdueSweep flags unresolved reports that have outlived their expected
// resolution window. Resolved reports get the flag stamped at resolution
// time instead.
func RunOverdueSweep(ctx context.Context, client *ent.Client, cfg *config.AppConfig) error {
	now := time.Now().UTC()
	var cursor *uuid.UUID

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		query := client.Report.Query().
			Where(
				report.StatusIn(report.StatusSubmitted, report.StatusValidated, report.StatusInProgress),
				report.IsOverdue(false),
				report.ExpectedResolutionHoursNotNil(),
			).
			Order(ent.Asc(report.FieldID)).
			Limit(cfg.SweepBatchSize)
		if cursor != nil {
			query = query.Where(report.IDGT(*cursor))
		}

		batch, err := query.All(ctx)
		if err != nil {
			slog.Error("Failed to load overdue batch", "error", err)
			return err
		}

		for _, r := range batch {
			deadline := r.CreatedAt.Add(time.Duration(*r.ExpectedResolutionHours * float64(time.Hour)))
			if now.Before(deadline) {
				continue
			}

			err := client.Report.UpdateOneID(r.ID).
				Where(report.IsOverdue(false)).
				SetIsOverdue(true).
				Exec(ctx)
			if err != nil {
				if ent.IsNotFound(err) {
					continue
				}
				slog.Error("Failed to flag overdue report", "error", err, "reportID", r.ID)
				continue
			}

			slog.Info("Report is overdue", "reportID", r.ID, "deadline", deadline)
		}

		if len(batch) < cfg.SweepBatchSize {
			return nil
		}

		last := batch[len(batch)-1].ID
		cursor = &last
	}
}
