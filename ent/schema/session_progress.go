package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// SessionProgress tracks the three study components of one session day.
type SessionProgress struct {
	ent.Schema
}

func (SessionProgress) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_day").
			Unique().
			Positive(),
		field.Time("calendar_date").
			Comment("Calendar day the session day was first started"),
		field.Bool("reading_done").
			Default(false),
		field.Bool("flashcards_done").
			Default(false),
		field.Bool("quiz_done").
			Default(false),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("Set once, when all three components are done"),
	}
}
