package schema

import (
	"CivicPulseAPI/internal/model"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Report struct {
	ent.Schema
}

func (Report) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),

		field.String("report_number").MaxLen(32).Unique(),

		field.String("title").MaxLen(200).NotEmpty(),
		field.Text("description").NotEmpty(),

		field.Enum("category").
			Values(
				"roads_transport",
				"water_sewage",
				"electricity",
				"waste_management",
				"public_safety",
				"parks_recreation",
				"street_lighting",
				"noise_pollution",
				"air_pollution",
				"building_violations",
				"other",
			),
		field.String("subcategory").MaxLen(100).Optional().Nillable(),

		field.Enum("priority").
			Values("low", "medium", "high", "critical").
			Default("medium"),
		field.Float("ai_priority_score").Min(0).Max(100).Default(50),

		// GeoJSON convention: coordinates are always [longitude, latitude].
		field.Float("longitude").Min(-180).Max(180),
		field.Float("latitude").Min(-90).Max(90),

		field.String("street").MaxLen(200).Optional().Nillable(),
		field.String("city").MaxLen(100).NotEmpty(),
		field.String("state").MaxLen(100).Optional().Nillable(),
		field.String("zip_code").MaxLen(20).Optional().Nillable(),
		field.String("country").MaxLen(100).Default("USA"),
		field.String("landmark").MaxLen(200).Optional().Nillable(),

		field.JSON("media", []model.MediaRef{}).Optional(),
		field.JSON("tags", []string{}).Optional(),

		field.UUID("reporter_id", uuid.UUID{}),
		field.Bool("is_anonymous").Default(false),
		field.Bool("is_public").Default(true),
		field.Bool("is_featured").Default(false),

		field.Enum("status").
			Values("submitted", "validated", "in_progress", "resolved", "rejected", "duplicate").
			Default("submitted"),
		field.Time("status_changed_at").Default(nowUTC),

		field.String("assigned_department_code").MaxLen(20).Optional().Nillable(),

		field.Bool("is_validated").Default(false),
		field.UUID("validated_by", uuid.UUID{}).Optional().Nillable(),
		field.Time("validated_at").Optional().Nillable(),
		field.String("validation_notes").Optional().Nillable(),

		field.Int("upvotes").Default(0).NonNegative(),
		field.Int("downvotes").Default(0).NonNegative(),
		field.Int("total_votes").Default(0).NonNegative(),

		field.Int("views").Default(0),
		field.Int("shares").Default(0),

		field.Float("expected_resolution_hours").Optional().Nillable(),
		field.Float("actual_resolution_hours").Optional().Nillable(),
		field.Bool("is_overdue").Default(false),
		field.Int("escalation_level").Default(0).NonNegative(),
		field.Time("last_escalated_at").Optional().Nillable(),

		field.Time("resolved_at").Optional().Nillable(),
		field.UUID("resolved_by", uuid.UUID{}).Optional().Nillable(),
		field.Text("resolution_notes").Optional().Nillable(),
		field.Int("satisfaction_rating").Min(1).Max(5).Optional().Nillable(),

		field.UUID("duplicate_of_id", uuid.UUID{}).Optional().Nillable(),
	}
}

func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("reporter", User.Type).
			Ref("reports").
			Field("reporter_id").
			Unique().
			Required(),

		edge.To("duplicates", Report.Type).
			From("duplicate_of").
			Field("duplicate_of_id").
			Unique(),

		edge.To("votes", Vote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("status_updates", StatusUpdate.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("comments", Comment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category", "status"),
		index.Fields("status", "priority"),
		index.Fields("reporter_id"),
		index.Fields("assigned_department_code"),
		index.Fields("created_at"),
		index.Fields("longitude", "latitude"),
	}
}
