package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.String("email").MaxLen(255).Unique(),
		field.String("full_name").MaxLen(100).Optional().Nillable(),

		field.Enum("role").
			Values("citizen", "department_staff", "admin").
			Default("citizen"),
		field.String("department_code").MaxLen(20).Optional().Nillable(),

		field.Int("trust_score").Default(100),

		field.Int("points").Default(0).NonNegative(),
		field.Int("level").Default(1).Positive(),
		field.JSON("badges", []string{}).Optional(),
		field.Int("streak").Default(0).NonNegative(),
		field.Time("last_report_date").Optional().Nillable(),
		field.Int("reports_submitted").Default(0).NonNegative(),

		field.Bool("is_active").Default(true),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("reports", Report.Type),
		edge.To("votes", Vote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("comments", Comment.Type).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("role"),
		index.Fields("department_code"),
	}
}
