package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single flashcard self-rating.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("flashcard_id").
			Immutable(),
		field.Int("rating").
			Range(0, 5).
			Immutable().
			Comment("SM-2 quality, 0 = blackout, 5 = perfect"),
	}
}

func (ReviewEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("flashcard", Flashcard.Type).
			Ref("reviews").
			Field("flashcard_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rating"),
	}
}
