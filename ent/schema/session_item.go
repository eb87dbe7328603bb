package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionItem records a flashcard or quiz question already processed on a
// session day, so an interrupted component can resume where it stopped.
type SessionItem struct {
	ent.Schema
}

func (SessionItem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("session_day").
			Positive(),
		field.Enum("component").
			Values("flashcard", "quiz"),
		field.Int("item_id"),
	}
}

func (SessionItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_day", "component", "item_id").
			Unique(),
	}
}
