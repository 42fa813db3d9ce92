package controller

import (
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/middleware"
	"CivicPulseAPI/internal/model"
	"CivicPulseAPI/internal/service"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MediaController struct {
	reportService *service.ReportService
}

func NewMediaController(reportService *service.ReportService) *MediaController {
	return &MediaController{
		reportService: reportService,
	}
}

func (c *MediaController) UploadMedia(w http.ResponseWriter, r *http.Request) {
	_, ok := r.Context().Value(middleware.UserContextKey).(*model.UserContext)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report id"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		slog.Warn("Error retrieving file", "error", err)
		helper.WriteError(w, helper.NewBadRequestError(""))
		return
	}
	defer file.Close()

	resp, svcErr := c.reportService.AddMedia(r.Context(), reportID, header)
	if svcErr != nil {
		helper.WriteError(w, svcErr)
		return
	}

	helper.WriteCreated(w, resp)
}

func (c *MediaController) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	_, ok := r.Context().Value(middleware.UserContextKey).(*model.UserContext)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	reportID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report id"))
		return
	}

	if svcErr := c.reportService.RemoveMedia(r.Context(), reportID, r.URL.Query().Get("url")); svcErr != nil {
		helper.WriteError(w, svcErr)
		return
	}

	helper.WriteSuccess(w, nil)
}
