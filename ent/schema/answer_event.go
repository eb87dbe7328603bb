package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single quiz answer.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("question_id").
			Immutable(),
		field.String("user_answer").
			NotEmpty().
			Immutable().
			Comment("Letter the learner picked"),
		field.Bool("correct").
			Immutable(),
	}
}

func (AnswerEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", QuizQuestion.Type).
			Ref("answers").
			Field("question_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("correct"),
	}
}
