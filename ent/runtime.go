// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/examprep/ent/answerevent"
	"github.com/abhisek/examprep/ent/domain"
	"github.com/abhisek/examprep/ent/flashcard"
	"github.com/abhisek/examprep/ent/quizquestion"
	"github.com/abhisek/examprep/ent/reviewevent"
	"github.com/abhisek/examprep/ent/schema"
	"github.com/abhisek/examprep/ent/sessionitem"
	"github.com/abhisek/examprep/ent/sessionprogress"
	"github.com/abhisek/examprep/ent/studyday"
	"github.com/abhisek/examprep/ent/subtopic"
	"github.com/abhisek/examprep/ent/usersetting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescBatchID is the schema descriptor for batch_id field.
	answereventDescBatchID := answereventMixinFields0[2].Descriptor()
	// answerevent.DefaultBatchID holds the default value on creation for the batch_id field.
	answerevent.DefaultBatchID = answereventDescBatchID.Default.(string)
	// answereventDescUserAnswer is the schema descriptor for user_answer field.
	answereventDescUserAnswer := answereventFields[1].Descriptor()
	// answerevent.UserAnswerValidator is a validator for the "user_answer" field. It is called by the builders before save.
	answerevent.UserAnswerValidator = answereventDescUserAnswer.Validators[0].(func(string) error)
	domainFields := schema.Domain{}.Fields()
	_ = domainFields
	// domainDescName is the schema descriptor for name field.
	domainDescName := domainFields[0].Descriptor()
	// domain.NameValidator is a validator for the "name" field. It is called by the builders before save.
	domain.NameValidator = domainDescName.Validators[0].(func(string) error)
	// domainDescExamWeight is the schema descriptor for exam_weight field.
	domainDescExamWeight := domainFields[2].Descriptor()
	// domain.DefaultExamWeight holds the default value on creation for the exam_weight field.
	domain.DefaultExamWeight = domainDescExamWeight.Default.(float64)
	// domainDescDescription is the schema descriptor for description field.
	domainDescDescription := domainFields[3].Descriptor()
	// domain.DefaultDescription holds the default value on creation for the description field.
	domain.DefaultDescription = domainDescDescription.Default.(string)
	flashcardFields := schema.Flashcard{}.Fields()
	_ = flashcardFields
	// flashcardDescFront is the schema descriptor for front field.
	flashcardDescFront := flashcardFields[2].Descriptor()
	// flashcard.FrontValidator is a validator for the "front" field. It is called by the builders before save.
	flashcard.FrontValidator = flashcardDescFront.Validators[0].(func(string) error)
	// flashcardDescBack is the schema descriptor for back field.
	flashcardDescBack := flashcardFields[3].Descriptor()
	// flashcard.BackValidator is a validator for the "back" field. It is called by the builders before save.
	flashcard.BackValidator = flashcardDescBack.Validators[0].(func(string) error)
	// flashcardDescSource is the schema descriptor for source field.
	flashcardDescSource := flashcardFields[4].Descriptor()
	// flashcard.DefaultSource holds the default value on creation for the source field.
	flashcard.DefaultSource = flashcardDescSource.Default.(string)
	// flashcardDescEaseFactor is the schema descriptor for ease_factor field.
	flashcardDescEaseFactor := flashcardFields[5].Descriptor()
	// flashcard.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	flashcard.DefaultEaseFactor = flashcardDescEaseFactor.Default.(float64)
	// flashcard.EaseFactorValidator is a validator for the "ease_factor" field. It is called by the builders before save.
	flashcard.EaseFactorValidator = flashcardDescEaseFactor.Validators[0].(func(float64) error)
	// flashcardDescInterval is the schema descriptor for interval field.
	flashcardDescInterval := flashcardFields[6].Descriptor()
	// flashcard.DefaultInterval holds the default value on creation for the interval field.
	flashcard.DefaultInterval = flashcardDescInterval.Default.(int)
	// flashcard.IntervalValidator is a validator for the "interval" field. It is called by the builders before save.
	flashcard.IntervalValidator = flashcardDescInterval.Validators[0].(func(int) error)
	// flashcardDescRepetitions is the schema descriptor for repetitions field.
	flashcardDescRepetitions := flashcardFields[7].Descriptor()
	// flashcard.DefaultRepetitions holds the default value on creation for the repetitions field.
	flashcard.DefaultRepetitions = flashcardDescRepetitions.Default.(int)
	// flashcard.RepetitionsValidator is a validator for the "repetitions" field. It is called by the builders before save.
	flashcard.RepetitionsValidator = flashcardDescRepetitions.Validators[0].(func(int) error)
	quizquestionFields := schema.QuizQuestion{}.Fields()
	_ = quizquestionFields
	// quizquestionDescStem is the schema descriptor for stem field.
	quizquestionDescStem := quizquestionFields[2].Descriptor()
	// quizquestion.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	quizquestion.StemValidator = quizquestionDescStem.Validators[0].(func(string) error)
	// quizquestionDescChoiceA is the schema descriptor for choice_a field.
	quizquestionDescChoiceA := quizquestionFields[3].Descriptor()
	// quizquestion.ChoiceAValidator is a validator for the "choice_a" field. It is called by the builders before save.
	quizquestion.ChoiceAValidator = quizquestionDescChoiceA.Validators[0].(func(string) error)
	// quizquestionDescChoiceB is the schema descriptor for choice_b field.
	quizquestionDescChoiceB := quizquestionFields[4].Descriptor()
	// quizquestion.ChoiceBValidator is a validator for the "choice_b" field. It is called by the builders before save.
	quizquestion.ChoiceBValidator = quizquestionDescChoiceB.Validators[0].(func(string) error)
	// quizquestionDescChoiceC is the schema descriptor for choice_c field.
	quizquestionDescChoiceC := quizquestionFields[5].Descriptor()
	// quizquestion.ChoiceCValidator is a validator for the "choice_c" field. It is called by the builders before save.
	quizquestion.ChoiceCValidator = quizquestionDescChoiceC.Validators[0].(func(string) error)
	// quizquestionDescChoiceD is the schema descriptor for choice_d field.
	quizquestionDescChoiceD := quizquestionFields[6].Descriptor()
	// quizquestion.ChoiceDValidator is a validator for the "choice_d" field. It is called by the builders before save.
	quizquestion.ChoiceDValidator = quizquestionDescChoiceD.Validators[0].(func(string) error)
	// quizquestionDescCorrectAnswer is the schema descriptor for correct_answer field.
	quizquestionDescCorrectAnswer := quizquestionFields[7].Descriptor()
	// quizquestion.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	quizquestion.CorrectAnswerValidator = quizquestionDescCorrectAnswer.Validators[0].(func(string) error)
	// quizquestionDescExplanation is the schema descriptor for explanation field.
	quizquestionDescExplanation := quizquestionFields[8].Descriptor()
	// quizquestion.DefaultExplanation holds the default value on creation for the explanation field.
	quizquestion.DefaultExplanation = quizquestionDescExplanation.Default.(string)
	// quizquestionDescSource is the schema descriptor for source field.
	quizquestionDescSource := quizquestionFields[9].Descriptor()
	// quizquestion.DefaultSource holds the default value on creation for the source field.
	quizquestion.DefaultSource = quizquestionDescSource.Default.(string)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescBatchID is the schema descriptor for batch_id field.
	revieweventDescBatchID := revieweventMixinFields0[2].Descriptor()
	// reviewevent.DefaultBatchID holds the default value on creation for the batch_id field.
	reviewevent.DefaultBatchID = revieweventDescBatchID.Default.(string)
	// revieweventDescRating is the schema descriptor for rating field.
	revieweventDescRating := revieweventFields[1].Descriptor()
	// reviewevent.RatingValidator is a validator for the "rating" field. It is called by the builders before save.
	reviewevent.RatingValidator = revieweventDescRating.Validators[0].(func(int) error)
	sessionitemFields := schema.SessionItem{}.Fields()
	_ = sessionitemFields
	// sessionitemDescSessionDay is the schema descriptor for session_day field.
	sessionitemDescSessionDay := sessionitemFields[0].Descriptor()
	// sessionitem.SessionDayValidator is a validator for the "session_day" field. It is called by the builders before save.
	sessionitem.SessionDayValidator = sessionitemDescSessionDay.Validators[0].(func(int) error)
	sessionprogressFields := schema.SessionProgress{}.Fields()
	_ = sessionprogressFields
	// sessionprogressDescSessionDay is the schema descriptor for session_day field.
	sessionprogressDescSessionDay := sessionprogressFields[0].Descriptor()
	// sessionprogress.SessionDayValidator is a validator for the "session_day" field. It is called by the builders before save.
	sessionprogress.SessionDayValidator = sessionprogressDescSessionDay.Validators[0].(func(int) error)
	// sessionprogressDescReadingDone is the schema descriptor for reading_done field.
	sessionprogressDescReadingDone := sessionprogressFields[2].Descriptor()
	// sessionprogress.DefaultReadingDone holds the default value on creation for the reading_done field.
	sessionprogress.DefaultReadingDone = sessionprogressDescReadingDone.Default.(bool)
	// sessionprogressDescFlashcardsDone is the schema descriptor for flashcards_done field.
	sessionprogressDescFlashcardsDone := sessionprogressFields[3].Descriptor()
	// sessionprogress.DefaultFlashcardsDone holds the default value on creation for the flashcards_done field.
	sessionprogress.DefaultFlashcardsDone = sessionprogressDescFlashcardsDone.Default.(bool)
	// sessionprogressDescQuizDone is the schema descriptor for quiz_done field.
	sessionprogressDescQuizDone := sessionprogressFields[4].Descriptor()
	// sessionprogress.DefaultQuizDone holds the default value on creation for the quiz_done field.
	sessionprogress.DefaultQuizDone = sessionprogressDescQuizDone.Default.(bool)
	studydayFields := schema.StudyDay{}.Fields()
	_ = studydayFields
	// studydayDescDayNumber is the schema descriptor for day_number field.
	studydayDescDayNumber := studydayFields[0].Descriptor()
	// studyday.DayNumberValidator is a validator for the "day_number" field. It is called by the builders before save.
	studyday.DayNumberValidator = studydayDescDayNumber.Validators[0].(func(int) error)
	// studydayDescReadingContent is the schema descriptor for reading_content field.
	studydayDescReadingContent := studydayFields[2].Descriptor()
	// studyday.DefaultReadingContent holds the default value on creation for the reading_content field.
	studyday.DefaultReadingContent = studydayDescReadingContent.Default.(string)
	subtopicFields := schema.Subtopic{}.Fields()
	_ = subtopicFields
	// subtopicDescName is the schema descriptor for name field.
	subtopicDescName := subtopicFields[1].Descriptor()
	// subtopic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	subtopic.NameValidator = subtopicDescName.Validators[0].(func(string) error)
	// subtopicDescDescription is the schema descriptor for description field.
	subtopicDescDescription := subtopicFields[2].Descriptor()
	// subtopic.DefaultDescription holds the default value on creation for the description field.
	subtopic.DefaultDescription = subtopicDescDescription.Default.(string)
	usersettingFields := schema.UserSetting{}.Fields()
	_ = usersettingFields
	// usersettingDescKey is the schema descriptor for key field.
	usersettingDescKey := usersettingFields[0].Descriptor()
	// usersetting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	usersetting.KeyValidator = usersettingDescKey.Validators[0].(func(string) error)
}
