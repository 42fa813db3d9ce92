package controller

import (
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/middleware"
	"CivicPulseAPI/internal/model"
	"CivicPulseAPI/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UserController struct {
	trustService *service.TrustService
}

func NewUserController(trustService *service.TrustService) *UserController {
	return &UserController{
		trustService: trustService,
	}
}

func (c *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid user id"))
		return
	}

	viewer, _ := r.Context().Value(middleware.UserContextKey).(*model.UserContext)

	resp, svcErr := c.trustService.GetProfile(r.Context(), id, viewer)
	if svcErr != nil {
		helper.WriteError(w, svcErr)
		return
	}

	helper.WriteSuccess(w, resp)
}
