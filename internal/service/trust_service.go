package service

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/user"
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/model"
	"CivicPulseAPI/internal/repository"
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// VoteEffect keys the trust policy table: what the voter's previous vote was
// and what they just did about it.
type VoteEffect struct {
	Action        model.VoteAction
	RequestedType string
}

// VotePolicy maps vote actions to trust-score deltas. The defaults below are
// deliberate product numbers, kept in one table so they can be swapped
// without touching call sites.
type VotePolicy map[VoteEffect]int

func DefaultVotePolicy() VotePolicy {
	return VotePolicy{
		{model.VoteActionCreated, "upvote"}:     2,
		{model.VoteActionCreated, "downvote"}:   -1,
		{model.VoteActionSwitched, "upvote"}:    3,
		{model.VoteActionSwitched, "downvote"}:  -1,
		{model.VoteActionRetracted, "upvote"}:   -2,
		{model.VoteActionRetracted, "downvote"}: 1,
	}
}

// BadgeRule awards a badge the first time its predicate holds for a user's
// submission history. Rules are data; adding a badge is a table change.
type BadgeRule struct {
	Badge     string
	Qualifies func(reportsSubmitted, streak, mediaCount int) bool
}

func DefaultBadgeRules(cfg *config.AppConfig) []BadgeRule {
	frequentCount := cfg.FrequentReporterCount
	heroStreak := cfg.CommunityHeroStreak

	return []BadgeRule{
		{
			Badge: "reporter",
			Qualifies: func(reportsSubmitted, _, _ int) bool {
				return reportsSubmitted >= 1
			},
		},
		{
			Badge: "frequent_reporter",
			Qualifies: func(reportsSubmitted, _, _ int) bool {
				return reportsSubmitted >= frequentCount
			},
		},
		{
			Badge: "community_hero",
			Qualifies: func(_, streak, _ int) bool {
				return streak >= heroStreak
			},
		},
		{
			Badge: "photo_expert",
			Qualifies: func(_, _, mediaCount int) bool {
				return mediaCount >= 3
			},
		},
	}
}

// LevelForPoints is the monotonic level curve: one level per 100 points,
// starting at level 1.
func LevelForPoints(points int) int {
	if points < 0 {
		points = 0
	}
	return 1 + points/100
}

// StreakAfterSubmission recomputes the consecutive-day report streak: a
// submission within 24 hours of the previous one extends it, anything later
// resets it to 1.
func StreakAfterSubmission(previous int, lastReportDate *time.Time, now time.Time) int {
	if lastReportDate == nil {
		return 1
	}
	if now.Sub(*lastReportDate) <= 24*time.Hour {
		return previous + 1
	}
	return 1
}

type TrustService struct {
	client     *ent.Client
	cfg        *config.AppConfig
	users      *repository.UserRepository
	votePolicy VotePolicy
	badgeRules []BadgeRule
}

func NewTrustService(client *ent.Client, cfg *config.AppConfig, users *repository.UserRepository) *TrustService {
	return &TrustService{
		client:     client,
		cfg:        cfg,
		users:      users,
		votePolicy: DefaultVotePolicy(),
		badgeRules: DefaultBadgeRules(cfg),
	}
}

// WithVotePolicy swaps the trust policy table, mainly for tests and for
// per-deployment tuning.
func (s *TrustService) WithVotePolicy(policy VotePolicy) *TrustService {
	s.votePolicy = policy
	return s
}

func (s *TrustService) VoteDelta(action model.VoteAction, requestedType string) int {
	return s.votePolicy[VoteEffect{Action: action, RequestedType: requestedType}]
}

// ApplyVoteEffect adjusts the voter's trust score for a ledger action. The
// delta is applied as an atomic increment after the vote transaction has
// committed; a failure here never unwinds the vote itself.
func (s *TrustService) ApplyVoteEffect(ctx context.Context, voterID uuid.UUID, action model.VoteAction, requestedType string) {
	delta := s.VoteDelta(action, requestedType)
	if delta == 0 {
		return
	}

	if err := s.users.AddTrustScore(ctx, voterID, delta); err != nil {
		slog.Error("Failed to apply trust delta", "error", err, "voterID", voterID, "delta", delta)
	}
}

// GetProfile returns a user's public trust and gamification state. The email
// is only included when the viewer is the user themselves or staff.
func (s *TrustService) GetProfile(ctx context.Context, id uuid.UUID, viewer *model.UserContext) (*model.UserDTO, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("User not found")
		}
		slog.Error("Failed to load user profile", "error", err, "userID", id)
		return nil, helper.NewInternalServerError("")
	}

	dto := &model.UserDTO{
		ID:         u.ID,
		Role:       string(u.Role),
		TrustScore: u.TrustScore,
		Gamification: model.GamificationDTO{
			Points:         u.Points,
			Level:          u.Level,
			Badges:         u.Badges,
			Streak:         u.Streak,
			LastReportDate: u.LastReportDate,
		},
	}
	if u.FullName != nil {
		dto.FullName = *u.FullName
	}
	if viewer != nil && (viewer.ID == u.ID || viewer.IsStaff()) {
		dto.Email = u.Email
	}

	return dto, nil
}

// ApplyReportSubmission credits the reporter for a new report: points,
// streak, badges, and level, all recomputed inside one transaction against a
// locked user row so concurrent submissions by the same user serialize.
func (s *TrustService) ApplyReportSubmission(ctx context.Context, reporterID uuid.UUID, mediaCount int) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		slog.Error("Failed to start transaction", "error", err)
		return helper.NewInternalServerError("")
	}

	defer func() {
		_ = tx.Rollback()
		if v := recover(); v != nil {
			panic(v)
		}
	}()

	u, err := tx.User.Query().
		Where(user.ID(reporterID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return helper.NewNotFoundError("User not found")
		}
		slog.Error("Failed to load user for gamification update", "error", err)
		return helper.NewInternalServerError("")
	}

	now := time.Now().UTC()
	points := u.Points + s.cfg.SubmissionPoints
	streak := StreakAfterSubmission(u.Streak, u.LastReportDate, now)
	reportsSubmitted := u.ReportsSubmitted + 1

	badges := u.Badges
	owned := make(map[string]bool, len(badges))
	for _, b := range badges {
		owned[b] = true
	}
	for _, rule := range s.badgeRules {
		if !owned[rule.Badge] && rule.Qualifies(reportsSubmitted, streak, mediaCount) {
			badges = append(badges, rule.Badge)
			owned[rule.Badge] = true
		}
	}

	err = tx.User.UpdateOneID(reporterID).
		SetPoints(points).
		SetLevel(LevelForPoints(points)).
		SetStreak(streak).
		SetBadges(badges).
		SetLastReportDate(now).
		SetReportsSubmitted(reportsSubmitted).
		Exec(ctx)
	if err != nil {
		slog.Error("Failed to update gamification state", "error", err, "reporterID", reporterID)
		return helper.NewInternalServerError("")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Failed to commit gamification update", "error", err)
		return helper.NewInternalServerError("")
	}

	return nil
}
