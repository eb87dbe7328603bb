package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Flashcard holds card content plus its SM-2 scheduling state.
type Flashcard struct {
	ent.Schema
}

func (Flashcard) Fields() []ent.Field {
	return []ent.Field{
		field.Int("domain_id"),
		field.Int("subtopic_id").
			Optional().
			Nillable(),
		field.Text("front").
			NotEmpty(),
		field.Text("back").
			NotEmpty(),
		field.String("source").
			Default("seeded"),
		field.Float("ease_factor").
			Default(2.5).
			Min(1.3),
		field.Int("interval").
			Default(0).
			NonNegative().
			Comment("Current review interval in days"),
		field.Int("repetitions").
			Default(0).
			NonNegative().
			Comment("Consecutive passing reviews"),
		field.Time("next_review").
			Optional().
			Nillable().
			Comment("Calendar day the card is next due; nil means due now"),
	}
}

func (Flashcard) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("domain", Domain.Type).
			Ref("flashcards").
			Field("domain_id").
			Unique().
			Required(),
		edge.From("subtopic", Subtopic.Type).
			Ref("flashcards").
			Field("subtopic_id").
			Unique(),
		edge.To("reviews", ReviewEvent.Type),
	}
}

func (Flashcard) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("next_review"),
	}
}
