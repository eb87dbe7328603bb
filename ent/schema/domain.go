package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Domain is a top-level exam section.
type Domain struct {
	ent.Schema
}

func (Domain) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Int("section_number").
			Comment("Exam section number, used for display ordering"),
		field.Float("exam_weight").
			Default(0).
			Comment("Share of the exam, as a percentage"),
		field.String("description").
			Default(""),
	}
}

func (Domain) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("subtopics", Subtopic.Type),
		edge.To("flashcards", Flashcard.Type),
		edge.To("questions", QuizQuestion.Type),
		edge.To("study_days", StudyDay.Type),
	}
}
