// Code generated by ent, DO NOT EDIT.

package studyday

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/abhisek/examprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldLTE(FieldID, id))
}

// DayNumber applies equality check predicate on the "day_number" field. It's identical to DayNumberEQ.
func DayNumber(v int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldEQ(FieldDayNumber, v))
}

// DomainID applies equality check predicate on the "domain_id" field. It's identical to DomainIDEQ.
func DomainID(v int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldEQ(FieldDomainID, v))
}

// ReadingContent applies equality check predicate on the "reading_content" field. It's identical to ReadingContentEQ.
func ReadingContent(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldEQ(FieldReadingContent, v))
}

// DayNumberEQ applies the EQ predicate on the "day_number" field.
func DayNumberEQ(v int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldEQ(FieldDayNumber, v))
}

// DayNumberNEQ applies the NEQ predicate on the "day_number" field.
func DayNumberNEQ(v int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldNEQ(FieldDayNumber, v))
}

// DayNumberIn applies the In predicate on the "day_number" field.
func DayNumberIn(vs ...int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldIn(FieldDayNumber, vs...))
}

// DayNumberNotIn applies the NotIn predicate on the "day_number" field.
func DayNumberNotIn(vs ...int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldNotIn(FieldDayNumber, vs...))
}

// DayNumberGT applies the GT predicate on the "day_number" field.
func DayNumberGT(v int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldGT(FieldDayNumber, v))
}

// DayNumberGTE applies the GTE predicate on the "day_number" field.
func DayNumberGTE(v int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldGTE(FieldDayNumber, v))
}

// DayNumberLT applies the LT predicate on the "day_number" field.
func DayNumberLT(v int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldLT(FieldDayNumber, v))
}

// DayNumberLTE applies the LTE predicate on the "day_number" field.
func DayNumberLTE(v int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldLTE(FieldDayNumber, v))
}

// DomainIDEQ applies the EQ predicate on the "domain_id" field.
func DomainIDEQ(v int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldEQ(FieldDomainID, v))
}

// DomainIDNEQ applies the NEQ predicate on the "domain_id" field.
func DomainIDNEQ(v int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldNEQ(FieldDomainID, v))
}

// DomainIDIn applies the In predicate on the "domain_id" field.
func DomainIDIn(vs ...int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldIn(FieldDomainID, vs...))
}

// DomainIDNotIn applies the NotIn predicate on the "domain_id" field.
func DomainIDNotIn(vs ...int) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldNotIn(FieldDomainID, vs...))
}

// DomainIDIsNil applies the IsNil predicate on the "domain_id" field.
func DomainIDIsNil() predicate.StudyDay {
	return predicate.StudyDay(sql.FieldIsNull(FieldDomainID))
}

// DomainIDNotNil applies the NotNil predicate on the "domain_id" field.
func DomainIDNotNil() predicate.StudyDay {
	return predicate.StudyDay(sql.FieldNotNull(FieldDomainID))
}

// ReadingContentEQ applies the EQ predicate on the "reading_content" field.
func ReadingContentEQ(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldEQ(FieldReadingContent, v))
}

// ReadingContentNEQ applies the NEQ predicate on the "reading_content" field.
func ReadingContentNEQ(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldNEQ(FieldReadingContent, v))
}

// ReadingContentIn applies the In predicate on the "reading_content" field.
func ReadingContentIn(vs ...string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldIn(FieldReadingContent, vs...))
}

// ReadingContentNotIn applies the NotIn predicate on the "reading_content" field.
func ReadingContentNotIn(vs ...string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldNotIn(FieldReadingContent, vs...))
}

// ReadingContentGT applies the GT predicate on the "reading_content" field.
func ReadingContentGT(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldGT(FieldReadingContent, v))
}

// ReadingContentGTE applies the GTE predicate on the "reading_content" field.
func ReadingContentGTE(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldGTE(FieldReadingContent, v))
}

// ReadingContentLT applies the LT predicate on the "reading_content" field.
func ReadingContentLT(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldLT(FieldReadingContent, v))
}

// ReadingContentLTE applies the LTE predicate on the "reading_content" field.
func ReadingContentLTE(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldLTE(FieldReadingContent, v))
}

// ReadingContentContains applies the Contains predicate on the "reading_content" field.
func ReadingContentContains(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldContains(FieldReadingContent, v))
}

// ReadingContentHasPrefix applies the HasPrefix predicate on the "reading_content" field.
func ReadingContentHasPrefix(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldHasPrefix(FieldReadingContent, v))
}

// ReadingContentHasSuffix applies the HasSuffix predicate on the "reading_content" field.
func ReadingContentHasSuffix(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldHasSuffix(FieldReadingContent, v))
}

// ReadingContentEqualFold applies the EqualFold predicate on the "reading_content" field.
func ReadingContentEqualFold(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldEqualFold(FieldReadingContent, v))
}

// ReadingContentContainsFold applies the ContainsFold predicate on the "reading_content" field.
func ReadingContentContainsFold(v string) predicate.StudyDay {
	return predicate.StudyDay(sql.FieldContainsFold(FieldReadingContent, v))
}

// HasDomain applies the HasEdge predicate on the "domain" edge.
func HasDomain() predicate.StudyDay {
	return predicate.StudyDay(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DomainTable, DomainColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDomainWith applies the HasEdge predicate on the "domain" edge with a given conditions (other predicates).
func HasDomainWith(preds ...predicate.Domain) predicate.StudyDay {
	return predicate.StudyDay(func(s *sql.Selector) {
		step := newDomainStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudyDay) predicate.StudyDay {
	return predicate.StudyDay(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudyDay) predicate.StudyDay {
	return predicate.StudyDay(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudyDay) predicate.StudyDay {
	return predicate.StudyDay(sql.NotPredicates(p))
}
