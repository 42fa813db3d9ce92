package model

// VoteAction classifies what a cast did to the ledger.
type VoteAction string

const (
	VoteActionCreated   VoteAction = "created"
	VoteActionSwitched  VoteAction = "switched"
	VoteActionRetracted VoteAction = "retracted"
)

type CastVoteRequest struct {
	VoteType string `json:"vote_type" validate:"required,oneof=upvote downvote"`
	Reason   string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

type VoteResult struct {
	Action       VoteAction   `json:"action"`
	PreviousType string       `json:"previous_type,omitempty"`
	Votes        VoteCounters `json:"votes"`
}
