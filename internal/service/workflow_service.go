package service

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/statusupdate"
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/model"
	"CivicPulseAPI/internal/repository"
	"CivicPulseAPI/internal/websocket"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// statusTransitions is the full workflow graph. Statuses absent from the map
// (resolved, rejected, duplicate) are terminal.
var statusTransitions = map[report.Status][]report.Status{
	report.StatusSubmitted:  {report.StatusValidated, report.StatusRejected, report.StatusDuplicate},
	report.StatusValidated:  {report.StatusInProgress, report.StatusRejected, report.StatusDuplicate},
	report.StatusInProgress: {report.StatusResolved, report.StatusRejected, report.StatusDuplicate},
}

func canTransition(from, to report.Status) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type WorkflowService struct {
	client      *ent.Client
	cfg         *config.AppConfig
	validator   *validator.Validate
	departments *repository.DepartmentRepository
	hub         *websocket.Hub
}

func NewWorkflowService(client *ent.Client, cfg *config.AppConfig, validator *validator.Validate, departments *repository.DepartmentRepository, hub *websocket.Hub) *WorkflowService {
	return &WorkflowService{
		client:      client,
		cfg:         cfg,
		validator:   validator,
		departments: departments,
		hub:         hub,
	}
}

// TransitionStatus moves a report along the workflow graph, stamps the
// status-specific side effects and appends an audit row, all in one
// transaction. An illegal transition leaves the report untouched.
func (s *WorkflowService) TransitionStatus(ctx context.Context, actor *model.UserContext, reportID uuid.UUID, req model.TransitionStatusRequest) (*model.ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err, "reportID", reportID)
		return nil, helper.NewBadRequestError("status is required and must be a known workflow status")
	}

	target := report.Status(req.Status)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		slog.Error("Failed to start transaction", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	defer func() {
		_ = tx.Rollback()
		if v := recover(); v != nil {
			panic(v)
		}
	}()

	r, err := tx.Report.Query().
		Where(report.ID(reportID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to lock report", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	if !canTransition(r.Status, target) {
		return nil, helper.NewUnprocessableError(
			fmt.Sprintf("cannot transition report from %s to %s", r.Status, target))
	}

	now := time.Now().UTC()

	update := tx.Report.UpdateOneID(reportID).
		SetStatus(target).
		SetStatusChangedAt(now)

	switch target {
	case report.StatusValidated:
		update.SetIsValidated(true).
			SetValidatedAt(now)
		if actor != nil {
			update.SetValidatedBy(actor.ID)
		}
		if req.Message != "" {
			update.SetValidationNotes(req.Message)
		}
	case report.StatusResolved:
		actualHours := now.Sub(r.CreatedAt).Hours()
		update.SetResolvedAt(now).
			SetActualResolutionHours(actualHours)
		if actor != nil {
			update.SetResolvedBy(actor.ID)
		}
		if req.Message != "" {
			update.SetResolutionNotes(req.Message)
		}
		expected := r.ExpectedResolutionHours
		if expected == nil && r.AssignedDepartmentCode != nil {
			// Reports created before a department set its SLA carry no
			// expectation; fall back to the department's current one.
			dept, deptErr := s.departments.GetByCode(ctx, *r.AssignedDepartmentCode)
			if deptErr != nil && !ent.IsNotFound(deptErr) {
				slog.Warn("Failed to load department for overdue check", "error", deptErr, "reportID", reportID)
			}
			if dept != nil {
				expected = &dept.ResolutionHours
			}
		}
		if expected != nil {
			update.SetIsOverdue(actualHours > *expected)
		}
	}

	updated, err := update.Save(ctx)
	if err != nil {
		slog.Error("Failed to update report status", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	if err := appendStatusUpdate(ctx, tx, reportID, target, req.Message, actor); err != nil {
		slog.Error("Failed to append audit row", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Failed to commit status transition", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}

	resp := toReportResponse(updated)
	s.hub.Publish(websocket.EventStatusChanged, reportID, resp)

	return resp, nil
}

// LinkDuplicate marks one report as a duplicate of another. Every duplicate
// must point directly at a non-duplicate report, so a canonical that is
// itself a duplicate is rejected and the caller is told to link against the
// root of its chain, while duplicates already pointing at the linked report
// are re-pointed at the new canonical. The chain walk runs first and doubles
// as cycle detection, so a reciprocal link reads as a cycle rather than a
// bad canonical.
func (s *WorkflowService) LinkDuplicate(ctx context.Context, actor *model.UserContext, duplicateID uuid.UUID, req model.LinkDuplicateRequest) (*model.ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, helper.NewBadRequestError("canonical_id is required")
	}

	if duplicateID == req.CanonicalID {
		return nil, helper.NewUnprocessableError("a report cannot be a duplicate of itself")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		slog.Error("Failed to start transaction", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	defer func() {
		_ = tx.Rollback()
		if v := recover(); v != nil {
			panic(v)
		}
	}()

	if err := s.checkCanonical(ctx, tx, duplicateID, req.CanonicalID); err != nil {
		return nil, err
	}

	// Lock both rows in a deterministic order so two concurrent links
	// touching the same pair cannot deadlock.
	lockIDs := []uuid.UUID{duplicateID, req.CanonicalID}
	if lockIDs[1].String() < lockIDs[0].String() {
		lockIDs[0], lockIDs[1] = lockIDs[1], lockIDs[0]
	}

	locked, err := tx.Report.Query().
		Where(report.IDIn(lockIDs...)).
		Order(ent.Asc(report.FieldID)).
		ForUpdate().
		All(ctx)
	if err != nil {
		slog.Error("Failed to lock reports for duplicate link", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if len(locked) != 2 {
		return nil, helper.NewNotFoundError("Report not found")
	}

	var dup, canonical *ent.Report
	for _, r := range locked {
		switch r.ID {
		case duplicateID:
			dup = r
		case req.CanonicalID:
			canonical = r
		}
	}

	// The chain walk ran before the locks were taken; a concurrent link may
	// have turned the canonical into a duplicate in between.
	if canonical.DuplicateOfID != nil {
		return nil, helper.NewBadRequestError("canonical report is itself a duplicate, link against the root of its chain")
	}

	if !canTransition(dup.Status, report.StatusDuplicate) {
		return nil, helper.NewUnprocessableError(
			fmt.Sprintf("cannot transition report from %s to %s", dup.Status, report.StatusDuplicate))
	}

	now := time.Now().UTC()

	// The report being linked may have collected inbound duplicates while it
	// was still a root. Re-point them at the new canonical so every duplicate
	// keeps pointing directly at a chain root.
	moved, err := tx.Report.Update().
		Where(report.DuplicateOfIDEQ(duplicateID)).
		SetDuplicateOfID(req.CanonicalID).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to re-point inbound duplicates", "error", err, "reportID", duplicateID)
		return nil, helper.NewInternalServerError("")
	}
	if moved > 0 {
		slog.Info("Re-pointed inbound duplicates to new canonical", "count", moved, "canonicalID", req.CanonicalID)
	}

	updated, err := tx.Report.UpdateOneID(duplicateID).
		SetDuplicateOfID(req.CanonicalID).
		SetStatus(report.StatusDuplicate).
		SetStatusChangedAt(now).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to link duplicate", "error", err, "reportID", duplicateID)
		return nil, helper.NewInternalServerError("")
	}

	message := fmt.Sprintf("Marked as duplicate of %s", canonical.ReportNumber)
	if err := appendStatusUpdate(ctx, tx, duplicateID, report.StatusDuplicate, message, actor); err != nil {
		slog.Error("Failed to append audit row", "error", err, "reportID", duplicateID)
		return nil, helper.NewInternalServerError("")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Failed to commit duplicate link", "error", err, "reportID", duplicateID)
		return nil, helper.NewInternalServerError("")
	}

	resp := toReportResponse(updated)
	s.hub.Publish(websocket.EventStatusChanged, duplicateID, resp)

	return resp, nil
}

// checkCanonical walks the duplicate_of chain upward from the requested
// canonical. Reaching the report being linked means the link would close a
// cycle. A chain that terminates elsewhere means the canonical is itself a
// duplicate, which is rejected so that every link points at a chain root.
func (s *WorkflowService) checkCanonical(ctx context.Context, tx *ent.Tx, duplicateID, canonicalID uuid.UUID) error {
	current := canonicalID
	visited := map[uuid.UUID]bool{duplicateID: true}

	for {
		if visited[current] {
			return helper.NewUnprocessableError("duplicate link would create a cycle")
		}
		visited[current] = true

		r, err := tx.Report.Query().
			Where(report.ID(current)).
			Select(report.FieldID, report.FieldDuplicateOfID).
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return helper.NewNotFoundError("Canonical report not found")
			}
			slog.Error("Failed to walk duplicate chain", "error", err)
			return helper.NewInternalServerError("")
		}

		if r.DuplicateOfID == nil {
			if r.ID != canonicalID {
				return helper.NewBadRequestError("canonical report is itself a duplicate, link against the root of its chain")
			}
			return nil
		}
		current = *r.DuplicateOfID
	}
}

func appendStatusUpdate(ctx context.Context, tx *ent.Tx, reportID uuid.UUID, status report.Status, message string, actor *model.UserContext) error {
	create := tx.StatusUpdate.Create().
		SetReportID(reportID).
		SetStatus(statusupdate.Status(status))
	if message != "" {
		create.SetMessage(message)
	}
	if actor != nil {
		create.SetUpdatedBy(actor.ID)
	}
	return create.Exec(ctx)
}
