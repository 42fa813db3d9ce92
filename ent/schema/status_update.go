package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// StatusUpdate rows are the append-only audit trail of a report's workflow.
// They are never updated or deleted individually.
type StatusUpdate struct {
	ent.Schema
}

func (StatusUpdate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.UUID("report_id", uuid.UUID{}).Immutable(),
		field.Enum("status").
			Values("submitted", "validated", "in_progress", "resolved", "rejected", "duplicate").
			Immutable(),
		field.Text("message").Optional().Immutable(),
		field.UUID("updated_by", uuid.UUID{}).Optional().Nillable().Immutable(),
		field.Bool("is_public").Default(true).Immutable(),
		field.Time("created_at").Default(nowUTC).Immutable(),
	}
}

func (StatusUpdate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("status_updates").
			Field("report_id").
			Unique().
			Required().
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (StatusUpdate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "created_at"),
	}
}
