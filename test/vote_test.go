package test

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/vote"
	"CivicPulseAPI/internal/model"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func castVote(token string, reportID uuid.UUID, voteType string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(model.CastVoteRequest{VoteType: voteType})
	url := fmt.Sprintf("/api/reports/%s/votes", reportID)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return executeRequest(req)
}

func TestCastVote_Create(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	reporter := createCitizen(ctx, "reporter@test.com")
	voter := createCitizen(ctx, "voter@test.com")
	seeded := seedReport(ctx, reporter, nil)

	rr := castVote(tokenFor(voter), seeded.ID, "upvote")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	result := decodeData[model.VoteResult](t, rr)
	assert.Equal(t, model.VoteActionCreated, result.Action)
	assert.Empty(t, result.PreviousType)
	assert.Equal(t, model.VoteCounters{Upvotes: 1, Downvotes: 0, TotalVotes: 1}, result.Votes)

	ledger := testClient.Vote.Query().Where(vote.ReportID(seeded.ID)).CountX(ctx)
	assert.Equal(t, 1, ledger)

	u := testClient.User.GetX(ctx, voter.ID)
	assert.Equal(t, 102, u.TrustScore)
}

func TestCastVote_SwitchThenRetract(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	reporter := createCitizen(ctx, "reporter@test.com")
	voter := createCitizen(ctx, "voter@test.com")
	seeded := seedReport(ctx, reporter, nil)
	token := tokenFor(voter)

	castVote(token, seeded.ID, "upvote")

	rr := castVote(token, seeded.ID, "downvote")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	switched := decodeData[model.VoteResult](t, rr)
	assert.Equal(t, model.VoteActionSwitched, switched.Action)
	assert.Equal(t, "upvote", switched.PreviousType)
	assert.Equal(t, model.VoteCounters{Upvotes: 0, Downvotes: 1, TotalVotes: 1}, switched.Votes)

	rr = castVote(token, seeded.ID, "downvote")
	assert.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	retracted := decodeData[model.VoteResult](t, rr)
	assert.Equal(t, model.VoteActionRetracted, retracted.Action)
	assert.Equal(t, "downvote", retracted.PreviousType)
	assert.Equal(t, model.VoteCounters{Upvotes: 0, Downvotes: 0, TotalVotes: 0}, retracted.Votes)

	ledger := testClient.Vote.Query().Where(vote.ReportID(seeded.ID)).CountX(ctx)
	assert.Equal(t, 0, ledger)

	// +2 create upvote, -1 switch to downvote, +1 retract downvote.
	u := testClient.User.GetX(ctx, voter.ID)
	assert.Equal(t, 102, u.TrustScore)
}

func TestCastVote_InvalidType(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	reporter := createCitizen(ctx, "reporter@test.com")
	voter := createCitizen(ctx, "voter@test.com")
	seeded := seedReport(ctx, reporter, nil)

	rr := castVote(tokenFor(voter), seeded.ID, "sideways")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCastVote_ReportNotFound(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	voter := createCitizen(ctx, "voter@test.com")
	rr := castVote(tokenFor(voter), uuid.New(), "upvote")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCastVote_Unauthenticated(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	reporter := createCitizen(ctx, "reporter@test.com")
	seeded := seedReport(ctx, reporter, nil)

	body, _ := json.Marshal(model.CastVoteRequest{VoteType: "upvote"})
	url := fmt.Sprintf("/api/reports/%s/votes", seeded.ID)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(body))
	rr := executeRequest(req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestConcurrency_SwitchRetractStorm(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	reporter := createCitizen(ctx, "reporter@test.com")
	voter := createCitizen(ctx, "voter@test.com")
	voterToken := tokenFor(voter)
	seeded := seedReport(ctx, reporter, nil)

	// One voter hammering the same report creates, switches, and
	// retracts concurrently. Losers of the row race get a conflict;
	// whatever settles, the counters must match the ledger.
	attempts := 20
	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func(idx int) {
			defer wg.Done()
			voteType := "upvote"
			if idx%2 == 1 {
				voteType = "downvote"
			}
			rr := castVote(voterToken, seeded.ID, voteType)
			if rr.Code != http.StatusOK && rr.Code != http.StatusConflict {
				t.Errorf("vote %d failed with %d: %s", idx, rr.Code, rr.Body.String())
			}
		}(i)
	}
	wg.Wait()

	r := testClient.Report.GetX(ctx, seeded.ID)
	up := testClient.Vote.Query().
		Where(vote.ReportID(seeded.ID), vote.VoteTypeEQ(vote.VoteTypeUpvote)).
		CountX(ctx)
	down := testClient.Vote.Query().
		Where(vote.ReportID(seeded.ID), vote.VoteTypeEQ(vote.VoteTypeDownvote)).
		CountX(ctx)
	assert.Equal(t, up, r.Upvotes)
	assert.Equal(t, down, r.Downvotes)
	assert.Equal(t, up+down, r.TotalVotes)
}

func TestConcurrency_VoteCounters(t *testing.T) {
	ctx := context.Background()
	clearDatabase(ctx)

	reporter := createCitizen(ctx, "reporter@test.com")
	seeded := seedReport(ctx, reporter, nil)

	voterCount := 100
	voters := make([]*ent.User, voterCount)
	for i := 0; i < voterCount; i++ {
		voters[i] = createCitizen(ctx, fmt.Sprintf("voter%d@test.com", i))
	}

	var wg sync.WaitGroup
	wg.Add(voterCount)
	for i := 0; i < voterCount; i++ {
		go func(idx int) {
			defer wg.Done()
			voteType := "upvote"
			if idx >= 60 {
				voteType = "downvote"
			}
			rr := castVote(tokenFor(voters[idx]), seeded.ID, voteType)
			if rr.Code != http.StatusOK {
				t.Errorf("vote %d failed with %d: %s", idx, rr.Code, rr.Body.String())
			}
		}(i)
	}
	wg.Wait()

	r := testClient.Report.GetX(ctx, seeded.ID)
	assert.Equal(t, 60, r.Upvotes)
	assert.Equal(t, 40, r.Downvotes)
	assert.Equal(t, 100, r.TotalVotes)
	assert.Equal(t, r.Upvotes+r.Downvotes, r.TotalVotes)

	ledger := testClient.Vote.Query().Where(vote.ReportID(seeded.ID)).CountX(ctx)
	assert.Equal(t, 100, ledger)
}
