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

type WorkflowController struct {
	workflowService *service.WorkflowService
}

func NewWorkflowController(workflowService *service.WorkflowService) *WorkflowController {
	return &WorkflowController{
		workflowService: workflowService,
	}
}

func (c *WorkflowController) TransitionStatus(w http.ResponseWriter, r *http.Request) {
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

	var req model.TransitionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, svcErr := c.workflowService.TransitionStatus(r.Context(), userContext, reportID, req)
	if svcErr != nil {
		helper.WriteError(w, svcErr)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *WorkflowController) LinkDuplicate(w http.ResponseWriter, r *http.Request) {
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

	var req model.LinkDuplicateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, svcErr := c.workflowService.LinkDuplicate(r.Context(), userContext, reportID, req)
	if svcErr != nil {
		helper.WriteError(w, svcErr)
		return
	}

	helper.WriteSuccess(w, resp)
}
