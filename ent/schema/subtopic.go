package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Subtopic is a taxonomy node under a Domain.
type Subtopic struct {
	ent.Schema
}

func (Subtopic) Fields() []ent.Field {
	return []ent.Field{
		field.Int("domain_id"),
		field.String("name").
			NotEmpty(),
		field.String("description").
			Default(""),
	}
}

func (Subtopic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("domain", Domain.Type).
			Ref("subtopics").
			Field("domain_id").
			Unique().
			Required(),
		edge.To("flashcards", Flashcard.Type),
		edge.To("questions", QuizQuestion.Type),
	}
}
