// Code generated by ent, DO NOT EDIT.

package usersetting

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLTE(FieldID, id))
}

// Key applies equality check predicate on the "key" field. It's identical to KeyEQ.
func Key(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldKey, v))
}

// Val applies equality check predicate on the "val" field. It's identical to ValEQ.
func Val(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldVal, v))
}

// KeyEQ applies the EQ predicate on the "key" field.
func KeyEQ(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldKey, v))
}

// KeyNEQ applies the NEQ predicate on the "key" field.
func KeyNEQ(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNEQ(FieldKey, v))
}

// KeyIn applies the In predicate on the "key" field.
func KeyIn(vs ...string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldIn(FieldKey, vs...))
}

// KeyNotIn applies the NotIn predicate on the "key" field.
func KeyNotIn(vs ...string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNotIn(FieldKey, vs...))
}

// KeyGT applies the GT predicate on the "key" field.
func KeyGT(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGT(FieldKey, v))
}

// KeyGTE applies the GTE predicate on the "key" field.
func KeyGTE(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGTE(FieldKey, v))
}

// KeyLT applies the LT predicate on the "key" field.
func KeyLT(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLT(FieldKey, v))
}

// KeyLTE applies the LTE predicate on the "key" field.
func KeyLTE(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLTE(FieldKey, v))
}

// KeyContains applies the Contains predicate on the "key" field.
func KeyContains(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldContains(FieldKey, v))
}

// KeyHasPrefix applies the HasPrefix predicate on the "key" field.
func KeyHasPrefix(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldHasPrefix(FieldKey, v))
}

// KeyHasSuffix applies the HasSuffix predicate on the "key" field.
func KeyHasSuffix(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldHasSuffix(FieldKey, v))
}

// KeyEqualFold applies the EqualFold predicate on the "key" field.
func KeyEqualFold(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEqualFold(FieldKey, v))
}

// KeyContainsFold applies the ContainsFold predicate on the "key" field.
func KeyContainsFold(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldContainsFold(FieldKey, v))
}

// ValEQ applies the EQ predicate on the "val" field.
func ValEQ(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEQ(FieldVal, v))
}

// ValNEQ applies the NEQ predicate on the "val" field.
func ValNEQ(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNEQ(FieldVal, v))
}

// ValIn applies the In predicate on the "val" field.
func ValIn(vs ...string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldIn(FieldVal, vs...))
}

// ValNotIn applies the NotIn predicate on the "val" field.
func ValNotIn(vs ...string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldNotIn(FieldVal, vs...))
}

// ValGT applies the GT predicate on the "val" field.
func ValGT(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGT(FieldVal, v))
}

// ValGTE applies the GTE predicate on the "val" field.
func ValGTE(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldGTE(FieldVal, v))
}

// ValLT applies the LT predicate on the "val" field.
func ValLT(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLT(FieldVal, v))
}

// ValLTE applies the LTE predicate on the "val" field.
func ValLTE(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldLTE(FieldVal, v))
}

// ValContains applies the Contains predicate on the "val" field.
func ValContains(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldContains(FieldVal, v))
}

// ValHasPrefix applies the HasPrefix predicate on the "val" field.
func ValHasPrefix(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldHasPrefix(FieldVal, v))
}

// ValHasSuffix applies the HasSuffix predicate on the "val" field.
func ValHasSuffix(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldHasSuffix(FieldVal, v))
}

// ValEqualFold applies the EqualFold predicate on the "val" field.
func ValEqualFold(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldEqualFold(FieldVal, v))
}

// ValContainsFold applies the ContainsFold predicate on the "val" field.
func ValContainsFold(v string) predicate.UserSetting {
	return predicate.UserSetting(sql.FieldContainsFold(FieldVal, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserSetting) predicate.UserSetting {
	return predicate.UserSetting(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserSetting) predicate.UserSetting {
	return predicate.UserSetting(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserSetting) predicate.UserSetting {
	return predicate.UserSetting(sql.NotPredicates(p))
}
