package job

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/department"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/repository"
	"CivicPulseAPI/internal/websocket"
	"context"
	"log/slog"
	"time"
)

const escalationSweepName = "escalation"

// RunEscalationSweep walks every non-terminal report and bumps its
// escalation level when the time since the last status change exceeds the
// department threshold for the next level. Each level is granted at most
// once, so re-running the sweep inside the same window is a no-op. Progress
// is checkpointed in redis; a cancelled pass resumes from its cursor.
func RunEscalationSweep(ctx context.Context, client *ent.Client, sweeps *repository.SweepRepository, cfg *config.AppConfig, hub *websocket.Hub) error {
	cursor, err := sweeps.GetCursor(ctx, escalationSweepName)
	if err != nil {
		slog.Warn("Failed to load sweep cursor, rescanning", "error", err)
		cursor = nil
	}

	thresholds, err := departmentThresholds(ctx, client)
	if err != nil {
		slog.Error("Failed to load department thresholds", "error", err)
		return err
	}

	now := time.Now().UTC()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		query := client.Report.Query().
			Where(report.StatusIn(report.StatusSubmitted, report.StatusValidated, report.StatusInProgress)).
			Order(ent.Asc(report.FieldID)).
			Limit(cfg.SweepBatchSize)
		if cursor != nil {
			query = query.Where(report.IDGT(*cursor))
		}

		batch, err := query.All(ctx)
		if err != nil {
			slog.Error("Failed to load sweep batch", "error", err)
			return err
		}

		for _, r := range batch {
			if err := ctx.Err(); err != nil {
				// Checkpoint the last report that was fully handled; the
				// interrupted one gets re-examined on resume.
				if cursor != nil {
					if saveErr := sweeps.SetCursor(context.WithoutCancel(ctx), escalationSweepName, *cursor); saveErr != nil {
						slog.Warn("Failed to save sweep cursor", "error", saveErr)
					}
				}
				return err
			}

			threshold := cfg.DefaultEscalationHours
			if r.AssignedDepartmentCode != nil {
				if t, ok := thresholds[*r.AssignedDepartmentCode]; ok {
					threshold = t
				}
			}

			sinceChange := now.Sub(r.StatusChangedAt).Hours()
			required := threshold * float64(r.EscalationLevel+1)
			if sinceChange > required {
				// Conditional on the level we observed, so a concurrent
				// sweep cannot double-escalate the same window.
				err := client.Report.UpdateOneID(r.ID).
					Where(report.EscalationLevelEQ(r.EscalationLevel)).
					AddEscalationLevel(1).
					SetLastEscalatedAt(now).
					Exec(ctx)
				switch {
				case err == nil:
					slog.Info("Escalated report", "reportID", r.ID, "level", r.EscalationLevel+1)
					if hub != nil {
						hub.Publish(websocket.EventEscalationTriggered, r.ID, map[string]interface{}{
							"report_id":        r.ID,
							"escalation_level": r.EscalationLevel + 1,
						})
					}
				case ent.IsNotFound(err):
					// Lost the race to a concurrent pass; nothing to redo.
				default:
					slog.Error("Failed to escalate report", "error", err, "reportID", r.ID)
				}
			}

			id := r.ID
			cursor = &id
		}

		if len(batch) < cfg.SweepBatchSize {
			if err := sweeps.ClearCursor(ctx, escalationSweepName); err != nil {
				slog.Warn("Failed to clear sweep cursor", "error", err)
			}
			return nil
		}

		last := batch[len(batch)-1].ID
		cursor = &last
		if err := sweeps.SetCursor(ctx, escalationSweepName, last); err != nil {
			slog.Warn("Failed to save sweep cursor", "error", err)
		}
	}
}

func departmentThresholds(ctx context.Context, client *ent.Client) (map[string]float64, error) {
	departments, err := client.Department.Query().
		Where(department.IsActive(true)).
		Select(department.FieldCode, department.FieldEscalationThresholdHours).
		All(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(departments))
	for _, d := range departments {
		out[d.Code] = d.EscalationThresholdHours
	}
	return out, nil
}
