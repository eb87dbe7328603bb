// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnswerEvent is the predicate function for answerevent builders.
type AnswerEvent func(*sql.Selector)

// Domain is the predicate function for domain builders.
type Domain func(*sql.Selector)

// Flashcard is the predicate function for flashcard builders.
type Flashcard func(*sql.Selector)

// QuizQuestion is the predicate function for quizquestion builders.
type QuizQuestion func(*sql.Selector)

// ReviewEvent is the predicate function for reviewevent builders.
type ReviewEvent func(*sql.Selector)

// SessionItem is the predicate function for sessionitem builders.
type SessionItem func(*sql.Selector)

// SessionProgress is the predicate function for sessionprogress builders.
type SessionProgress func(*sql.Selector)

// StudyDay is the predicate function for studyday builders.
type StudyDay func(*sql.Selector)

// Subtopic is the predicate function for subtopic builders.
type Subtopic func(*sql.Selector)

// UserSetting is the predicate function for usersetting builders.
type UserSetting func(*sql.Selector)
