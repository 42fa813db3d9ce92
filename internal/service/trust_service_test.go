package service

import (
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/model"
	"testing"
	"time"
)

func TestDefaultVotePolicyDeltas(t *testing.T) {
	policy := DefaultVotePolicy()

	cases := []struct {
		action    model.VoteAction
		voteType  string
		wantDelta int
	}{
		{model.VoteActionCreated, "upvote", 2},
		{model.VoteActionCreated, "downvote", -1},
		{model.VoteActionSwitched, "upvote", 3},
		{model.VoteActionSwitched, "downvote", -1},
		{model.VoteActionRetracted, "upvote", -2},
		{model.VoteActionRetracted, "downvote", 1},
	}

	for _, tc := range cases {
		got := policy[VoteEffect{Action: tc.action, RequestedType: tc.voteType}]
		if got != tc.wantDelta {
			t.Fatalf("policy[%s %s] = %d, want %d", tc.action, tc.voteType, got, tc.wantDelta)
		}
	}
}

func TestLevelForPointsMonotonic(t *testing.T) {
	cases := map[int]int{
		-5:  1,
		0:   1,
		99:  1,
		100: 2,
		250: 3,
		999: 10,
	}
	for points, want := range cases {
		if got := LevelForPoints(points); got != want {
			t.Fatalf("LevelForPoints(%d) = %d, want %d", points, got, want)
		}
	}

	prev := 0
	for points := 0; points <= 1000; points += 10 {
		level := LevelForPoints(points)
		if level < prev {
			t.Fatalf("level curve decreased at %d points", points)
		}
		prev = level
	}
}

func TestStreakAfterSubmission(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	if got := StreakAfterSubmission(5, nil, now); got != 1 {
		t.Fatalf("first submission should start streak at 1, got %d", got)
	}

	recent := now.Add(-23 * time.Hour)
	if got := StreakAfterSubmission(3, &recent, now); got != 4 {
		t.Fatalf("submission within 24h should extend streak to 4, got %d", got)
	}

	stale := now.Add(-25 * time.Hour)
	if got := StreakAfterSubmission(3, &stale, now); got != 1 {
		t.Fatalf("submission after 24h should reset streak to 1, got %d", got)
	}
}

func TestDefaultBadgeRules(t *testing.T) {
	cfg := &config.AppConfig{
		FrequentReporterCount: 10,
		CommunityHeroStreak:   7,
	}

	award := func(reports, streak, media int) map[string]bool {
		out := map[string]bool{}
		for _, rule := range DefaultBadgeRules(cfg) {
			if rule.Qualifies(reports, streak, media) {
				out[rule.Badge] = true
			}
		}
		return out
	}

	first := award(1, 1, 0)
	if !first["reporter"] {
		t.Fatal("first report should award reporter badge")
	}
	if first["frequent_reporter"] || first["community_hero"] || first["photo_expert"] {
		t.Fatalf("first plain report awarded too much: %v", first)
	}

	frequent := award(10, 1, 0)
	if !frequent["frequent_reporter"] {
		t.Fatal("10th report should award frequent_reporter")
	}

	hero := award(7, 7, 0)
	if !hero["community_hero"] {
		t.Fatal("7-day streak should award community_hero")
	}

	photo := award(1, 1, 3)
	if !photo["photo_expert"] {
		t.Fatal("report with 3 attachments should award photo_expert")
	}
}
