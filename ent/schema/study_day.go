package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// StudyDay is one entry of the fixed study plan.
type StudyDay struct {
	ent.Schema
}

func (StudyDay) Fields() []ent.Field {
	return []ent.Field{
		field.Int("day_number").
			Unique().
			Positive(),
		field.Int("domain_id").
			Optional().
			Nillable().
			Comment("Focus domain; nil for mixed review and practice exam days"),
		field.Text("reading_content").
			Default(""),
	}
}

func (StudyDay) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("domain", Domain.Type).
			Ref("study_days").
			Field("domain_id").
			Unique(),
	}
}
