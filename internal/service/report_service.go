package service

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/ent/user"
	"CivicPulseAPI/internal/adapter"
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/model"
	"CivicPulseAPI/internal/repository"
	"CivicPulseAPI/internal/websocket"
	"context"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ReportService struct {
	client      *ent.Client
	cfg         *config.AppConfig
	validator   *validator.Validate
	reports     *repository.ReportRepository
	departments *repository.DepartmentRepository
	trust       *TrustService
	storage     *adapter.StorageAdapter
	hub         *websocket.Hub
}

func NewReportService(
	client *ent.Client,
	cfg *config.AppConfig,
	validator *validator.Validate,
	repo *repository.Repository,
	trust *TrustService,
	storage *adapter.StorageAdapter,
	hub *websocket.Hub,
) *ReportService {
	return &ReportService{
		client:      client,
		cfg:         cfg,
		validator:   validator,
		reports:     repo.Report,
		departments: repo.Department,
		trust:       trust,
		storage:     storage,
		hub:         hub,
	}
}

func (s *ReportService) CreateReport(ctx context.Context, reporterID uuid.UUID, req model.CreateReportRequest) (*model.ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		slog.Warn("Validation failed", "error", err, "reporterID", reporterID)
		return nil, helper.NewBadRequestError("title, description, category and address.city are required")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Title == "" || req.Description == "" {
		return nil, helper.NewBadRequestError("title and description must not be blank")
	}

	lon, lat := req.Coordinates[0], req.Coordinates[1]
	if !helper.ValidCoordinates(lon, lat) {
		return nil, helper.NewBadRequestError("coordinates must be a [longitude, latitude] pair")
	}

	if req.ReportNumber != "" && !helper.ValidReportNumber(req.ReportNumber) {
		return nil, helper.NewBadRequestError("report_number must match REP-<millis>-<3 digits>")
	}

	reporterExists, err := s.client.User.Query().
		Where(user.ID(reporterID), user.IsActive(true)).
		Exist(ctx)
	if err != nil {
		slog.Error("Failed to check reporter", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if !reporterExists {
		return nil, helper.NewNotFoundError("Reporter not found")
	}

	dept, err := s.departments.FindForCategory(ctx, req.Category)
	if err != nil {
		slog.Error("Failed to resolve department for category", "error", err, "category", req.Category)
		return nil, helper.NewInternalServerError("")
	}

	expectedHours := s.cfg.DefaultResolutionHours
	var departmentCode *string
	if dept != nil {
		expectedHours = dept.ResolutionHours
		departmentCode = &dept.Code
	}

	// The report number format is not collision-free, so an insert that
	// trips the unique constraint regenerates and retries. A caller-supplied
	// number is not regenerated; its collision is a hard validation error.
	created, err := helper.RetryWithBackoff(func() (*ent.Report, bool, error) {
		number := req.ReportNumber
		if number == "" {
			number = helper.NewReportNumber()
		}

		r, err := s.insertReport(ctx, reporterID, req, number, lon, lat, departmentCode, expectedHours)
		if err != nil {
			if ent.IsConstraintError(err) {
				if req.ReportNumber != "" {
					return nil, false, helper.NewBadRequestError("report_number already exists")
				}
				return nil, true, err
			}
			slog.Error("Failed to create report", "error", err)
			return nil, false, helper.NewInternalServerError("")
		}
		return r, false, nil
	}, 3, 5*time.Millisecond)
	if err != nil {
		if appErr, ok := err.(*helper.AppError); ok {
			return nil, appErr
		}
		slog.Error("Report number generation kept colliding", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if err := s.trust.ApplyReportSubmission(ctx, reporterID, len(req.Media)); err != nil {
		// Gamification is best-effort bookkeeping; the report itself is
		// already durable.
		slog.Error("Failed to credit reporter", "error", err, "reporterID", reporterID)
	}

	resp := toReportResponse(created)
	s.hub.Publish(websocket.EventReportCreated, created.ID, resp)

	return resp, nil
}

func (s *ReportService) insertReport(
	ctx context.Context,
	reporterID uuid.UUID,
	req model.CreateReportRequest,
	number string,
	lon, lat float64,
	departmentCode *string,
	expectedHours float64,
) (*ent.Report, error) {
	create := s.client.Report.Create().
		SetReportNumber(number).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetCategory(report.Category(req.Category)).
		SetLongitude(lon).
		SetLatitude(lat).
		SetCity(req.Address.City).
		SetReporterID(reporterID).
		SetIsAnonymous(req.IsAnonymous).
		SetNillableAssignedDepartmentCode(departmentCode).
		SetExpectedResolutionHours(expectedHours)

	if req.Subcategory != "" {
		create.SetSubcategory(req.Subcategory)
	}
	if req.Priority != "" {
		create.SetPriority(report.Priority(req.Priority))
	}
	if req.Address.Street != "" {
		create.SetStreet(req.Address.Street)
	}
	if req.Address.State != "" {
		create.SetState(req.Address.State)
	}
	if req.Address.ZipCode != "" {
		create.SetZipCode(req.Address.ZipCode)
	}
	if req.Address.Country != "" {
		create.SetCountry(req.Address.Country)
	}
	if req.Landmark != "" {
		create.SetLandmark(req.Landmark)
	}
	if len(req.Media) > 0 {
		create.SetMedia(req.Media)
	}
	if len(req.Tags) > 0 {
		create.SetTags(req.Tags)
	}

	return create.Save(ctx)
}

func (s *ReportService) GetReport(ctx context.Context, id uuid.UUID, viewer *model.UserContext) (*model.ReportResponse, error) {
	r, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to load report", "error", err, "reportID", id)
		return nil, helper.NewInternalServerError("")
	}

	if !r.IsPublic && !canSeeHidden(r, viewer) {
		return nil, helper.NewNotFoundError("Report not found")
	}

	if err := s.reports.IncrementViews(ctx, id); err != nil {
		slog.Warn("Failed to bump view counter", "error", err, "reportID", id)
	}

	return toReportResponse(r), nil
}

func (s *ReportService) ListByCategory(ctx context.Context, category string, status string, limit, offset int) ([]*model.ReportResponse, bool, error) {
	if !config.IsReportCategory(category) {
		return nil, false, helper.NewBadRequestError("unknown category: " + category)
	}

	var statusFilter *report.Status
	if status != "" {
		st := report.Status(status)
		if err := report.StatusValidator(st); err != nil {
			return nil, false, helper.NewBadRequestError("unknown status: " + status)
		}
		statusFilter = &st
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	// Fetch one extra row to learn whether another page exists.
	reports, err := s.reports.ListByCategory(ctx, report.Category(category), statusFilter, limit+1, offset)
	if err != nil {
		slog.Error("Failed to list reports", "error", err, "category", category)
		return nil, false, helper.NewInternalServerError("")
	}

	hasNext := len(reports) > limit
	if hasNext {
		reports = reports[:limit]
	}

	return toReportResponses(reports), hasNext, nil
}

func (s *ReportService) Search(ctx context.Context, text string) ([]*model.ReportResponse, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, helper.NewBadRequestError("search text is required")
	}

	reports, err := s.reports.Search(ctx, text, 50)
	if err != nil {
		slog.Error("Search failed", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return toReportResponses(reports), nil
}

func (s *ReportService) FindNearby(ctx context.Context, lon, lat, radiusMeters float64) ([]*model.NearbyReportResponse, error) {
	if !helper.ValidCoordinates(lon, lat) {
		return nil, helper.NewBadRequestError("coordinates must be a [longitude, latitude] pair")
	}
	if radiusMeters <= 0 {
		radiusMeters = 5000
	}

	nearby, err := s.reports.FindNearby(ctx, lon, lat, radiusMeters, 100)
	if err != nil {
		slog.Error("Nearby query failed", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	responses := make([]*model.NearbyReportResponse, 0, len(nearby))
	for _, n := range nearby {
		responses = append(responses, &model.NearbyReportResponse{
			ReportResponse: *toReportResponse(n.Report),
			DistanceMeters: n.DistanceMeters,
		})
	}

	return responses, nil
}

func (s *ReportService) GetAnalytics(ctx context.Context, start, end time.Time) ([]model.AnalyticsRow, error) {
	if !end.After(start) {
		return nil, helper.NewBadRequestError("end must be after start")
	}

	buckets, err := s.reports.Analytics(ctx, start, end)
	if err != nil {
		slog.Error("Analytics query failed", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	rows := make([]model.AnalyticsRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, model.AnalyticsRow{
			Category:           b.Category,
			Status:             b.Status,
			Count:              b.Count,
			AvgResolutionHours: b.AvgResolutionHours,
			AvgPriorityScore:   b.AvgPriorityScore,
		})
	}

	return rows, nil
}

func (s *ReportService) AddComment(ctx context.Context, userID, reportID uuid.UUID, req model.AddCommentRequest) (*model.CommentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, helper.NewBadRequestError("message is required")
	}

	exists, err := s.client.Report.Query().Where(report.ID(reportID)).Exist(ctx)
	if err != nil {
		slog.Error("Failed to check report existence", "error", err)
		return nil, helper.NewInternalServerError("")
	}
	if !exists {
		return nil, helper.NewNotFoundError("Report not found")
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	c, err := s.client.Comment.Create().
		SetReportID(reportID).
		SetUserID(userID).
		SetMessage(strings.TrimSpace(req.Message)).
		SetIsPublic(isPublic).
		Save(ctx)
	if err != nil {
		slog.Error("Failed to create comment", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return &model.CommentResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Message:   c.Message,
		IsPublic:  c.IsPublic,
		CreatedAt: c.CreatedAt,
	}, nil
}

// AddMedia uploads attachment bytes to object storage and appends the
// returned opaque reference to the report. The report row is locked for the
// append so concurrent uploads do not drop each other's references.
func (s *ReportService) AddMedia(ctx context.Context, reportID uuid.UUID, file *multipart.FileHeader) (*model.MediaRef, error) {
	ref, err := s.storage.Store(ctx, file)
	if err != nil {
		slog.Error("Failed to store attachment", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		slog.Error("Failed to start transaction", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	defer func() {
		_ = tx.Rollback()
		if v := recover(); v != nil {
			panic(v)
		}
	}()

	r, err := tx.Report.Query().
		Where(report.ID(reportID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to lock report for media append", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	media := append(r.Media, *ref)
	if err := tx.Report.UpdateOneID(reportID).SetMedia(media).Exec(ctx); err != nil {
		slog.Error("Failed to append media reference", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Failed to commit media append", "error", err)
		return nil, helper.NewInternalServerError("")
	}

	return ref, nil
}

// RemoveMedia detaches a stored reference from the report, then deletes the
// underlying object. The row is locked like the append path so concurrent
// attachment changes do not drop each other's writes.
func (s *ReportService) RemoveMedia(ctx context.Context, reportID uuid.UUID, mediaURL string) error {
	mediaURL = strings.TrimSpace(mediaURL)
	if mediaURL == "" {
		return helper.NewBadRequestError("url query parameter is required")
	}

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

	r, err := tx.Report.Query().
		Where(report.ID(reportID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to lock report for media removal", "error", err)
		return helper.NewInternalServerError("")
	}

	kept := make([]model.MediaRef, 0, len(r.Media))
	found := false
	for _, ref := range r.Media {
		if ref.URL == mediaURL {
			found = true
			continue
		}
		kept = append(kept, ref)
	}
	if !found {
		return helper.NewNotFoundError("Media not found")
	}

	if err := tx.Report.UpdateOneID(reportID).SetMedia(kept).Exec(ctx); err != nil {
		slog.Error("Failed to remove media reference", "error", err)
		return helper.NewInternalServerError("")
	}

	if err := tx.Commit(); err != nil {
		slog.Error("Failed to commit media removal", "error", err)
		return helper.NewInternalServerError("")
	}

	// Object removal is best effort; an orphaned object beats a dangling
	// reference.
	if err := s.storage.DeleteByURL(ctx, mediaURL); err != nil {
		slog.Warn("Failed to delete stored object", "error", err, "url", mediaURL)
	}

	return nil
}

func (s *ReportService) SetFeatured(ctx context.Context, reportID uuid.UUID, featured bool) (*model.ReportResponse, error) {
	r, err := s.client.Report.UpdateOneID(reportID).SetIsFeatured(featured).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to set featured flag", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}
	return toReportResponse(r), nil
}

// SetVisibility soft-hides a report. Hidden reports stay in the database and
// remain readable by their reporter and by staff.
func (s *ReportService) SetVisibility(ctx context.Context, reportID uuid.UUID, public bool) (*model.ReportResponse, error) {
	r, err := s.client.Report.UpdateOneID(reportID).SetIsPublic(public).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, helper.NewNotFoundError("Report not found")
		}
		slog.Error("Failed to set visibility", "error", err, "reportID", reportID)
		return nil, helper.NewInternalServerError("")
	}
	return toReportResponse(r), nil
}

func canSeeHidden(r *ent.Report, viewer *model.UserContext) bool {
	if viewer == nil {
		return false
	}
	return viewer.ID == r.ReporterID || viewer.IsStaff()
}

func toReportResponses(reports []*ent.Report) []*model.ReportResponse {
	out := make([]*model.ReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, toReportResponse(r))
	}
	return out
}

func toReportResponse(r *ent.Report) *model.ReportResponse {
	resp := &model.ReportResponse{
		ID:              r.ID,
		ReportNumber:    r.ReportNumber,
		Title:           r.Title,
		Description:     r.Description,
		Category:        string(r.Category),
		Priority:        string(r.Priority),
		AIPriorityScore: r.AiPriorityScore,
		Coordinates:     []float64{r.Longitude, r.Latitude},
		Address: model.AddressDTO{
			City:    r.City,
			Country: r.Country,
		},
		IsAnonymous: r.IsAnonymous,
		IsPublic:    r.IsPublic,
		IsFeatured:  r.IsFeatured,
		Status:      string(r.Status),
		Media:       r.Media,
		Tags:        r.Tags,
		Votes: model.VoteCounters{
			Upvotes:    r.Upvotes,
			Downvotes:  r.Downvotes,
			TotalVotes: r.TotalVotes,
		},
		SLA: model.SLADTO{
			ExpectedResolutionHours: r.ExpectedResolutionHours,
			ActualResolutionHours:   r.ActualResolutionHours,
			IsOverdue:               r.IsOverdue,
			EscalationLevel:         r.EscalationLevel,
			LastEscalatedAt:         r.LastEscalatedAt,
		},
		DuplicateOf: r.DuplicateOfID,
		Views:       r.Views,
		Shares:      r.Shares,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.Subcategory != nil {
		resp.Subcategory = *r.Subcategory
	}
	if r.Street != nil {
		resp.Address.Street = *r.Street
	}
	if r.State != nil {
		resp.Address.State = *r.State
	}
	if r.ZipCode != nil {
		resp.Address.ZipCode = *r.ZipCode
	}
	if r.Landmark != nil {
		resp.Landmark = *r.Landmark
	}
	if r.AssignedDepartmentCode != nil {
		resp.AssignedDepartmentCode = *r.AssignedDepartmentCode
	}

	if !r.IsAnonymous {
		reporterID := r.ReporterID
		resp.ReporterID = &reporterID
	}

	if r.ResolvedAt != nil || r.ResolvedBy != nil || r.ResolutionNotes != nil {
		resolution := &model.ResolutionDTO{
			ResolvedAt:         r.ResolvedAt,
			ResolvedBy:         r.ResolvedBy,
			SatisfactionRating: r.SatisfactionRating,
		}
		if r.ResolutionNotes != nil {
			resolution.Notes = *r.ResolutionNotes
		}
		resp.Resolution = resolution
	}

	if r.Edges.Duplicates != nil {
		for _, d := range r.Edges.Duplicates {
			resp.Duplicates = append(resp.Duplicates, d.ID)
		}
	}

	return resp
}
