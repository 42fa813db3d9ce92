package repository

import (
	"CivicPulseAPI/ent"
	"CivicPulseAPI/ent/report"
	"CivicPulseAPI/internal/helper"
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

type ReportRepository struct {
	client *ent.Client
}

func NewReportRepository(client *ent.Client) *ReportRepository {
	return &ReportRepository{
		client: client,
	}
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Report, error) {
	return r.client.Report.Query().
		Where(report.ID(id)).
		WithDuplicates().
		Only(ctx)
}

// IncrementViews is a fire-and-forget atomic counter bump; it never
// participates in a caller's transaction.
func (r *ReportRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.client.Report.UpdateOneID(id).AddViews(1).Exec(ctx)
}

func (r *ReportRepository) ListByCategory(ctx context.Context, category report.Category, status *report.Status, limit, offset int) ([]*ent.Report, error) {
	query := r.client.Report.Query().
		Where(
			report.CategoryEQ(category),
			report.IsPublic(true),
		)

	if status != nil {
		query = query.Where(report.StatusEQ(*status))
	}

	return query.
		Order(ent.Desc(report.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
}

func (r *ReportRepository) Search(ctx context.Context, text string, limit int) ([]*ent.Report, error) {
	return r.client.Report.Query().
		Where(
			report.IsPublic(true),
			report.Or(
				report.TitleContainsFold(text),
				report.DescriptionContainsFold(text),
				report.StreetContainsFold(text),
				report.CityContainsFold(text),
				report.LandmarkContainsFold(text),
			),
		).
		Order(ent.Desc(report.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
}

type NearbyReport struct {
	Report         *ent.Report
	DistanceMeters float64
}

// FindNearby returns public, non-rejected reports within radiusMeters of the
// point, ordered by ascending distance. A bounding-box predicate narrows the
// candidate set on the (longitude, latitude) index before the exact haversine
// filter runs in memory. The read is intentionally non-locking; a slightly
// stale view is acceptable for proximity queries.
func (r *ReportRepository) FindNearby(ctx context.Context, lon, lat, radiusMeters float64, limit int) ([]NearbyReport, error) {
	minLon, maxLon, minLat, maxLat := helper.BoundingBox(lon, lat, radiusMeters)

	candidates, err := r.client.Report.Query().
		Where(
			report.IsPublic(true),
			report.StatusNEQ(report.StatusRejected),
			report.LongitudeGTE(minLon),
			report.LongitudeLTE(maxLon),
			report.LatitudeGTE(minLat),
			report.LatitudeLTE(maxLat),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	nearby := make([]NearbyReport, 0, len(candidates))
	for _, c := range candidates {
		d := helper.HaversineMeters(lon, lat, c.Longitude, c.Latitude)
		if d <= radiusMeters {
			nearby = append(nearby, NearbyReport{Report: c, DistanceMeters: d})
		}
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}

type AnalyticsBucket struct {
	Category           string   `json:"category"`
	Status             string   `json:"status"`
	Count              int      `json:"count"`
	AvgResolutionHours *float64 `json:"avg_resolution_hours"`
	AvgPriorityScore   *float64 `json:"avg_priority_score"`
}

func (r *ReportRepository) Analytics(ctx context.Context, start, end time.Time) ([]AnalyticsBucket, error) {
	var rows []struct {
		Category           string   `json:"category"`
		Status             string   `json:"status"`
		Count              int      `json:"count"`
		AvgResolutionHours *float64 `json:"avg_resolution_hours"`
		AvgPriorityScore   *float64 `json:"avg_priority_score"`
	}

	err := r.client.Report.Query().
		Where(
			report.CreatedAtGTE(start),
			report.CreatedAtLTE(end),
		).
		GroupBy(report.FieldCategory, report.FieldStatus).
		Aggregate(
			ent.Count(),
			ent.As(ent.Mean(report.FieldActualResolutionHours), "avg_resolution_hours"),
			ent.As(ent.Mean(report.FieldAiPriorityScore), "avg_priority_score"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}

	buckets := make([]AnalyticsBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, AnalyticsBucket{
			Category:           row.Category,
			Status:             row.Status,
			Count:              row.Count,
			AvgResolutionHours: row.AvgResolutionHours,
			AvgPriorityScore:   row.AvgPriorityScore,
		})
	}

	return buckets, nil
}
