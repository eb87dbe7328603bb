package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// UserSetting is a single key/value setting, upserted by key.
type UserSetting struct {
	ent.Schema
}

func (UserSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty(),
		field.String("val"),
	}
}
