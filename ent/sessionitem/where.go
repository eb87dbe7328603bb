// Code generated by ent, DO NOT EDIT.

package sessionitem

import (
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/examprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLTE(FieldID, id))
}

// SessionDay applies equality check predicate on the "session_day" field. It's identical to SessionDayEQ.
func SessionDay(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldSessionDay, v))
}

// ItemID applies equality check predicate on the "item_id" field. It's identical to ItemIDEQ.
func ItemID(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldItemID, v))
}

// SessionDayEQ applies the EQ predicate on the "session_day" field.
func SessionDayEQ(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldSessionDay, v))
}

// SessionDayNEQ applies the NEQ predicate on the "session_day" field.
func SessionDayNEQ(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldSessionDay, v))
}

// SessionDayIn applies the In predicate on the "session_day" field.
func SessionDayIn(vs ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldSessionDay, vs...))
}

// SessionDayNotIn applies the NotIn predicate on the "session_day" field.
func SessionDayNotIn(vs ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldSessionDay, vs...))
}

// SessionDayGT applies the GT predicate on the "session_day" field.
func SessionDayGT(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGT(FieldSessionDay, v))
}

// SessionDayGTE applies the GTE predicate on the "session_day" field.
func SessionDayGTE(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGTE(FieldSessionDay, v))
}

// SessionDayLT applies the LT predicate on the "session_day" field.
func SessionDayLT(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLT(FieldSessionDay, v))
}

// SessionDayLTE applies the LTE predicate on the "session_day" field.
func SessionDayLTE(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLTE(FieldSessionDay, v))
}

// ComponentEQ applies the EQ predicate on the "component" field.
func ComponentEQ(v Component) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldComponent, v))
}

// ComponentNEQ applies the NEQ predicate on the "component" field.
func ComponentNEQ(v Component) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldComponent, v))
}

// ComponentIn applies the In predicate on the "component" field.
func ComponentIn(vs ...Component) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldComponent, vs...))
}

// ComponentNotIn applies the NotIn predicate on the "component" field.
func ComponentNotIn(vs ...Component) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldComponent, vs...))
}

// ItemIDEQ applies the EQ predicate on the "item_id" field.
func ItemIDEQ(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldEQ(FieldItemID, v))
}

// ItemIDNEQ applies the NEQ predicate on the "item_id" field.
func ItemIDNEQ(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNEQ(FieldItemID, v))
}

// ItemIDIn applies the In predicate on the "item_id" field.
func ItemIDIn(vs ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldIn(FieldItemID, vs...))
}

// ItemIDNotIn applies the NotIn predicate on the "item_id" field.
func ItemIDNotIn(vs ...int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldNotIn(FieldItemID, vs...))
}

// ItemIDGT applies the GT predicate on the "item_id" field.
func ItemIDGT(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGT(FieldItemID, v))
}

// ItemIDGTE applies the GTE predicate on the "item_id" field.
func ItemIDGTE(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldGTE(FieldItemID, v))
}

// ItemIDLT applies the LT predicate on the "item_id" field.
func ItemIDLT(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLT(FieldItemID, v))
}

// ItemIDLTE applies the LTE predicate on the "item_id" field.
func ItemIDLTE(v int) predicate.SessionItem {
	return predicate.SessionItem(sql.FieldLTE(FieldItemID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionItem) predicate.SessionItem {
	return predicate.SessionItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionItem) predicate.SessionItem {
	return predicate.SessionItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionItem) predicate.SessionItem {
	return predicate.SessionItem(sql.NotPredicates(p))
}
