package controller

import (
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/middleware"
	"CivicPulseAPI/internal/model"
	"CivicPulseAPI/internal/service"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ReportController struct {
	reportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

func (c *ReportController) CreateReport(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserContext)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	var req model.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, err := c.reportService.CreateReport(r.Context(), userContext.ID, req)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteCreated(w, resp)
}

func (c *ReportController) GetReport(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report id"))
		return
	}

	// Unauthenticated reads are allowed; the viewer just sees less.
	viewer, _ := r.Context().Value(middleware.UserContextKey).(*model.UserContext)

	resp, svcErr := c.reportService.GetReport(r.Context(), id, viewer)
	if svcErr != nil {
		helper.WriteError(w, svcErr)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *ReportController) ListReports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	category := query.Get("category")
	if category == "" {
		helper.WriteError(w, helper.NewBadRequestError("category query parameter is required"))
		return
	}

	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	resp, hasNext, err := c.reportService.ListByCategory(r.Context(), category, query.Get("status"), limit, offset)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	nextCursor := ""
	if hasNext {
		nextCursor = strconv.Itoa(offset + limit)
	}
	helper.WriteSuccessWithPagination(w, resp, nextCursor, hasNext)
}

func (c *ReportController) SearchReports(w http.ResponseWriter, r *http.Request) {
	resp, err := c.reportService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *ReportController) NearbyReports(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lon, lonErr := strconv.ParseFloat(query.Get("lon"), 64)
	lat, latErr := strconv.ParseFloat(query.Get("lat"), 64)
	if lonErr != nil || latErr != nil {
		helper.WriteError(w, helper.NewBadRequestError("lon and lat query parameters are required"))
		return
	}

	radius, _ := strconv.ParseFloat(query.Get("radius"), 64)

	resp, err := c.reportService.FindNearby(r.Context(), lon, lat, radius)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *ReportController) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	start, startErr := time.Parse(time.RFC3339, query.Get("start"))
	end, endErr := time.Parse(time.RFC3339, query.Get("end"))
	if startErr != nil || endErr != nil {
		helper.WriteError(w, helper.NewBadRequestError("start and end must be RFC3339 timestamps"))
		return
	}

	resp, err := c.reportService.GetAnalytics(r.Context(), start, end)
	if err != nil {
		helper.WriteError(w, err)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *ReportController) AddComment(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserContext)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report id"))
		return
	}

	var req model.AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, svcErr := c.reportService.AddComment(r.Context(), userContext.ID, id, req)
	if svcErr != nil {
		helper.WriteError(w, svcErr)
		return
	}

	helper.WriteCreated(w, resp)
}

func (c *ReportController) SetFeatured(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report id"))
		return
	}

	var req struct {
		Featured bool `json:"featured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, svcErr := c.reportService.SetFeatured(r.Context(), id, req.Featured)
	if svcErr != nil {
		helper.WriteError(w, svcErr)
		return
	}

	helper.WriteSuccess(w, resp)
}

func (c *ReportController) SetVisibility(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid report id"))
		return
	}

	var req struct {
		Public bool `json:"public"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.WriteError(w, helper.NewBadRequestError("Invalid request body"))
		return
	}

	resp, svcErr := c.reportService.SetVisibility(r.Context(), id, req.Public)
	if svcErr != nil {
		helper.WriteError(w, svcErr)
		return
	}

	helper.WriteSuccess(w, resp)
}
