package schema

import (
	"regexp"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// QuizQuestion is a four-choice practice question. Immutable after seeding.
type QuizQuestion struct {
	ent.Schema
}

func (QuizQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.Int("domain_id"),
		field.Int("subtopic_id").
			Optional().
			Nillable(),
		field.Text("stem").
			NotEmpty(),
		field.Text("choice_a").
			NotEmpty(),
		field.Text("choice_b").
			NotEmpty(),
		field.Text("choice_c").
			NotEmpty(),
		field.Text("choice_d").
			NotEmpty(),
		field.String("correct_answer").
			Match(regexp.MustCompile(`^[abcd]$`)).
			Comment("Letter of the correct choice"),
		field.Text("explanation").
			Default(""),
		field.String("source").
			Default("seeded"),
	}
}

func (QuizQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("domain", Domain.Type).
			Ref("questions").
			Field("domain_id").
			Unique().
			Required(),
		edge.From("subtopic", Subtopic.Type).
			Ref("questions").
			Field("subtopic_id").
			Unique(),
		edge.To("answers", AnswerEvent.Type),
	}
}
