package service

import (
	"CivicPulseAPI/internal/model"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestClassifyVoteTransitionTable(t *testing.T) {
	cases := []struct {
		name      string
		previous  *string
		requested string
		want      counterDelta
	}{
		{"new upvote", nil, "upvote", counterDelta{action: model.VoteActionCreated, upvotes: 1, total: 1}},
		{"new downvote", nil, "downvote", counterDelta{action: model.VoteActionCreated, downvotes: 1, total: 1}},
		{"retract upvote", strPtr("upvote"), "upvote", counterDelta{action: model.VoteActionRetracted, upvotes: -1, total: -1}},
		{"retract downvote", strPtr("downvote"), "downvote", counterDelta{action: model.VoteActionRetracted, downvotes: -1, total: -1}},
		{"switch to upvote", strPtr("downvote"), "upvote", counterDelta{action: model.VoteActionSwitched, upvotes: 1, downvotes: -1}},
		{"switch to downvote", strPtr("upvote"), "downvote", counterDelta{action: model.VoteActionSwitched, upvotes: -1, downvotes: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyVote(tc.previous, tc.requested)
			if got != tc.want {
				t.Fatalf("classifyVote(%v, %s) = %+v, want %+v", tc.previous, tc.requested, got, tc.want)
			}
		})
	}
}

func TestClassifyVoteKeepsTotalConsistent(t *testing.T) {
	previous := []*string{nil, strPtr("upvote"), strPtr("downvote")}
	requested := []string{"upvote", "downvote"}

	for _, p := range previous {
		for _, r := range requested {
			d := classifyVote(p, r)
			if d.total != d.upvotes+d.downvotes {
				t.Fatalf("classifyVote(%v, %s): total delta %d != up %d + down %d",
					p, r, d.total, d.upvotes, d.downvotes)
			}
		}
	}
}
