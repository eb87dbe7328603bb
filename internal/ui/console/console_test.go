package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/internal/activity"
	"github.com/abhisek/examprep/internal/session"
)

func presenter(input string) (*Presenter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(strings.NewReader(input), &out), &out
}

var (
	pos  = activity.Position{Index: 1, Total: 3}
	card = &ent.Flashcard{Front: "What is EC2?", Back: "Virtual servers"}
	q    = &ent.QuizQuestion{
		Stem:          "Which service stores objects?",
		ChoiceA:       "EC2",
		ChoiceB:       "S3",
		ChoiceC:       "RDS",
		ChoiceD:       "VPC",
		CorrectAnswer: "b",
		Explanation:   "S3 is object storage.",
	}
)

func TestRate_RevealsBackThenRates(t *testing.T) {
	p, out := presenter("\n7\nx\n4\n")
	r, o, err := p.Rate(context.Background(), pos, card)
	require.NoError(t, err)
	assert.Equal(t, 4, r)
	assert.Equal(t, activity.Continue, o)
	assert.Contains(t, out.String(), "Card 1 of 3")
	assert.Contains(t, out.String(), "Virtual servers")
	assert.Equal(t, 2, strings.Count(out.String(), "Enter a number from 0 to 5."))
}

func TestRate_QuitBeforeReveal(t *testing.T) {
	p, out := presenter("menu\n")
	_, o, err := p.Rate(context.Background(), pos, card)
	require.NoError(t, err)
	assert.Equal(t, activity.SkipToEnd, o)
	assert.NotContains(t, out.String(), "Virtual servers")
}

func TestRate_EndOfInputSkips(t *testing.T) {
	p, _ := presenter("\n")
	_, o, err := p.Rate(context.Background(), pos, card)
	require.NoError(t, err)
	assert.Equal(t, activity.SkipToEnd, o)
}

func TestRate_LastLineWithoutNewline(t *testing.T) {
	p, _ := presenter("\n5")
	r, o, err := p.Rate(context.Background(), pos, card)
	require.NoError(t, err)
	assert.Equal(t, activity.Continue, o)
	assert.Equal(t, 5, r)
}

func TestAnswer(t *testing.T) {
	p, out := presenter("e\n B \n")
	a, o, err := p.Answer(context.Background(), pos, q)
	require.NoError(t, err)
	assert.Equal(t, "b", a)
	assert.Equal(t, activity.Continue, o)
	assert.Contains(t, out.String(), "b) S3")
	assert.Contains(t, out.String(), "Choose a, b, c or d.")
}

func TestAnswer_Quit(t *testing.T) {
	p, _ := presenter("q\n")
	_, o, err := p.Answer(context.Background(), pos, q)
	require.NoError(t, err)
	assert.Equal(t, activity.SkipToEnd, o)
}

func TestFeedback(t *testing.T) {
	p, out := presenter("")
	require.NoError(t, p.Feedback(context.Background(), q, false))
	assert.Contains(t, out.String(), "The answer is B.")
	assert.Contains(t, out.String(), "S3 is object storage.")

	p, out = presenter("")
	require.NoError(t, p.Feedback(context.Background(), q, true))
	assert.Contains(t, out.String(), "Correct!")
}

func TestRead(t *testing.T) {
	p, out := presenter("\n")
	o, err := p.Read(context.Background(), &ent.StudyDay{ReadingContent: "Read chapter 1"})
	require.NoError(t, err)
	assert.Equal(t, activity.Continue, o)
	assert.Contains(t, out.String(), "Read chapter 1")
}

func TestBegin(t *testing.T) {
	p, out := presenter("")
	require.NoError(t, p.Begin(context.Background(), session.Flashcards, 12))
	assert.Contains(t, out.String(), "Flashcards (12)")
}

func TestConfirm(t *testing.T) {
	for input, want := range map[string]bool{"y\n": true, "YES\n": true, "n\n": false, "": false, "q\n": false} {
		p, _ := presenter(input)
		got, err := p.Confirm(context.Background(), "Reset?")
		require.NoError(t, err)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, _ := presenter("4\n")
	_, _, err := p.Rate(ctx, pos, card)
	assert.ErrorIs(t, err, context.Canceled)
}
