package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Department struct {
	ent.Schema
}

func (Department) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Department) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.String("code").MaxLen(20).NotEmpty().Unique(),
		field.String("name").MaxLen(100).NotEmpty().Unique(),
		field.Text("description").Optional().Nillable(),

		field.JSON("categories", []string{}).Optional(),

		// SLA thresholds, in hours.
		field.Float("response_hours").Default(24),
		field.Float("resolution_hours").Default(168),
		field.Float("escalation_threshold_hours").Default(72),

		field.Bool("is_active").Default(true),
	}
}

func (Department) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active"),
	}
}
