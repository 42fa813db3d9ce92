package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

type Vote struct {
	ent.Schema
}

func (Vote) Mixin() []ent.Mixin { return []ent.Mixin{TimeMixin{}} }

func (Vote) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(newUUIDv7),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("report_id", uuid.UUID{}),
		field.Enum("vote_type").Values("upvote", "downvote"),
		field.String("reason").MaxLen(500).Optional().Nillable(),
	}
}

func (Vote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("voter", User.Type).
			Ref("votes").
			Field("user_id").
			Unique().
			Required(),
		edge.From("report", Report.Type).
			Ref("votes").
			Field("report_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Vote) Indexes() []ent.Index {
	return []ent.Index{
		// The ledger invariant: at most one vote per (user, report).
		index.Fields("user_id", "report_id").Unique(),
		index.Fields("report_id"),
	}
}
