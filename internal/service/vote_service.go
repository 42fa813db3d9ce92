package service

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/vote"
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/model"
	"CivicPulseAPI/internal/websocket"
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// VoteService is the vote ledger: it owns the one-vote-per-(user, report)
// invariant and keeps the report's counters consistent with the ledger.
type VoteService struct {
	client    *ent.Client
	cfg       *config.AppConfig
	validator *validator.Validate
	trust     *TrustService
	hub       *websocket.Hub
}

func NewVoteService(client *ent.Client, cfg *config.AppConfig, validator *validator.Validate, trust *TrustService, hub *websocket.Hub) *VoteService {
	return &VoteService{
		client:    client,
		cfg:       cfg,
		validator: validator,
		trust:     trust,
		hub:       hub,
	}
}

// counterDelta captures what one ledger action does to the report counters.
// totalVotes always stays equal to upvotes + downvotes: a switch moves a
// vote between columns without changing the total.
type counterDelta struct {
	action    model.VoteAction
	upvotes   int
	downvotes int
	total     int
}

// classifyVote resolves the (previous, requested) pair against the ledger
// transition table. previous is nil when the user has no standing vote.
func classifyVote(previous *string, requested string) counterDelta {
	if previous == nil {
		if requested == "upvote" {
			return counterDelta{action: model.VoteActionCreated, upvotes: 1, total: 1}
		}
		return counterDelta{action: model.VoteActionCreated, downvotes: 1, total: 1}
	}

	if *previous == requested {
		if requested == "upvote" {
			return counterDelta{action: model.VoteActionRetracted, upvotes: -1, total: -1}
		}
		return counterDelta{action: model.VoteActionRetracted, downvotes: -1, total: -1}
	}

	if requested == "upvote" {
		return counterDelta{action: model.VoteActionSwitched, upvotes: 1, downvotes: -1}
	}
	return counterDelta{action: model.VoteActionSwitched, upvotes: -1, downvotes: 1}
}

func (s *VoteService) CastVote(ctx context.Context, userID, reportID uuid.UUID, req model.CastVoteRequest) (*model.VoteResult, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err, "userID", userID)
		return nil, helper.NewBadRequestError("vote_type must be upvote or downvote")
	}

	// Each attempt re-reads the ledger, so a lost race is retried against
	// fresh state. Attempts are bounded; persistent contention surfaces as
	// a conflict for the caller to retry.
	result, err := helper.RetryWithBackoff(func() (*model.VoteResult, bool, error) {
		return s.castOnce(ctx, userID, reportID, req)
	}, s.cfg.VoteWriteMaxRetries, 10*time.Millisecond)
	if err != nil {
		if appErr, ok := err.(*helper.AppError); ok {
			return nil, appErr
		}
		return nil, helper.NewConflictError("Vote conflicted with a concurrent write, please retry")
	}

	s.trust.ApplyVoteEffect(ctx, userID, result.Action, req.VoteType)

	s.hub.Publish(websocket.EventVoteCast, reportID, result)

	return result, nil
}

// castOnce applies one ledger transition and the matching counter update as
// a single transaction: either both halves commit or neither does. The
// second return value reports whether a failure is retryable.
func (s *VoteService) castOnce(ctx context.Context, userID, reportID uuid.UUID, req model.CastVoteRequest) (*model.VoteResult, bool, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		slog.Error("Failed to start transaction", "error", err)
		return nil, false, helper.NewInternalServerError("")
	}

	defer func() {
		_ = tx.Rollback()
		if v := recover(); v != nil {
			panic(v)
		}
	}()

	exists, err := tx.Report.Query().Where(report.ID(reportID)).Exist(ctx)
	if err != nil {
		slog.Error("Failed to check report existence", "error", err, "reportID", reportID)
		return nil, false, helper.NewInternalServerError("")
	}
	if !exists {
		return nil, false, helper.NewNotFoundError("Report not found")
	}

	var previousType *string
	existing, err := tx.Vote.Query().
		Where(vote.UserID(userID), vote.ReportID(reportID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		slog.Error("Failed to read vote ledger", "error", err)
		return nil, false, helper.NewInternalServerError("")
	}
	if existing != nil {
		t := string(existing.VoteType)
		previousType = &t
	}

	delta := classifyVote(previousType, req.VoteType)

	switch delta.action {
	case model.VoteActionCreated:
		create := tx.Vote.Create().
			SetUserID(userID).
			SetReportID(reportID).
			SetVoteType(vote.VoteType(req.VoteType))
		if req.Reason != "" {
			create.SetReason(req.Reason)
		}
		if err := create.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Lost the race against a concurrent first vote by the
				// same user; retry against the fresh ledger entry.
				return nil, true, helper.NewConflictError("")
			}
			slog.Error("Failed to create vote", "error", err)
			return nil, false, helper.NewInternalServerError("")
		}

	case model.VoteActionRetracted:
		err := tx.Vote.DeleteOneID(existing.ID).
			Where(vote.VoteTypeEQ(existing.VoteType)).
			Exec(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				// The vote we read was switched or removed concurrently;
				// the counter delta would be stale, so retry from scratch.
				return nil, true, helper.NewConflictError("")
			}
			slog.Error("Failed to delete vote", "error", err)
			return nil, false, helper.NewInternalServerError("")
		}

	case model.VoteActionSwitched:
		err := tx.Vote.UpdateOneID(existing.ID).
			Where(vote.VoteTypeEQ(existing.VoteType)).
			SetVoteType(vote.VoteType(req.VoteType)).
			Exec(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				// The ledger entry changed or vanished underneath us.
				return nil, true, helper.NewConflictError("")
			}
			slog.Error("Failed to switch vote", "error", err)
			return nil, false, helper.NewInternalServerError("")
		}
	}

	// Counter updates are atomic column increments, never a read-modify-
	// write of the whole row, so concurrent voters on the same report do
	// not trample each other.
	updated, err := tx.Report.UpdateOneID(reportID).
		AddUpvotes(delta.upvotes).
		AddDownvotes(delta.downvotes).
		AddTotalVotes(delta.total).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, true, helper.NewConflictError("")
		}
		slog.Error("Failed to update vote counters", "error", err)
		return nil, false, helper.NewInternalServerError("")
	}

	if err := tx.Commit(); err != nil {
		return nil, true, helper.NewConflictError("")
	}

	result := &model.VoteResult{
		Action: delta.action,
		Votes: model.VoteCounters{
			Upvotes:    updated.Upvotes,
			Downvotes:  updated.Downvotes,
			TotalVotes: updated.TotalVotes,
		},
	}
	if previousType != nil {
		result.PreviousType = *previousType
	}

	return result, false, nil
}
