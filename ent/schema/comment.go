package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Comment struct {
	ent.Schema
}

func (Comment) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.UUID("report_id", uuid.UUID{}),
		field.UUID("user_id", uuid.UUID{}).Optional().Nillable(),
		field.Text("message").NotEmpty(),
		field.Bool("is_public").Default(true),
	}
}

func (Comment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("comments").
			Field("report_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.From("author", User.Type).
			Ref("comments").
			Field("user_id").
			Unique(),
	}
}

func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "created_at"),
	}
}
