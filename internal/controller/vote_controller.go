package controller

import (
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/middleware"
	"CivicPulseAPI/internal/model"
	"CivicPulseAPI/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type VoteController struct {
	voteService *service.VoteService
}

func NewVoteController(voteService *service.VoteService) *VoteController {
	return &VoteController{
		voteService: voteService,
	}
}

func (c *VoteController) CastVote(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserContext)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report id"))
		return
	}

	var req model.CastVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, svcErr := c.voteService.CastVote(r.Context(), userContext.ID, reportID, req)
	if svcErr != nil {
		helper.WriteError(w, svcErr)
		return
	}

	helper.WriteSuccess(w, resp)
}
