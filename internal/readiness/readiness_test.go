package readiness

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examprep/internal/store"
	"github.com/abhisek/examprep/internal/store/storetest"
)

func TestLabelFor(t *testing.T) {
	tests := []struct {
		score float64
		want  Label
	}{
		{100, Ready},
		{80, Ready},
		{79.9, Likely},
		{65, Likely},
		{64.9, NeedsWork},
		{50, NeedsWork},
		{49.9, NotReady},
		{0, NotReady},
	}
	for _, tt := range tests {
		if got := LabelFor(tt.score); got != tt.want {
			t.Errorf("LabelFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestBreakdownScore(t *testing.T) {
	b := Breakdown{QuizAccuracy: 75, FlashcardRetention: 50, StudyCompletion: 10}
	// 37.5 + 15 + 2
	if got := b.Score(); got != 54.5 {
		t.Errorf("Score() = %v, want 54.5", got)
	}
	if got := (Breakdown{}).Score(); got != 0 {
		t.Errorf("empty Score() = %v, want 0", got)
	}
}

func TestOverallScoreNoData(t *testing.T) {
	st := storetest.Open(t)
	score, err := NewScorer(st).OverallScore(context.Background())
	require.NoError(t, err)
	assert.Zero(t, score)
}

func TestQuizTermThreeOfFour(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d := b.Domain("Compute", 1)
	for _, correct := range []bool{true, true, false, true} {
		q := b.Question(d, nil, "a")
		b.Answer(q, correct)
	}

	s := NewScorer(st)
	br, err := s.Breakdown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 75.0, br.QuizAccuracy)
	assert.Zero(t, br.FlashcardRetention)
	assert.Zero(t, br.StudyCompletion)

	score, err := s.OverallScore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 37.5, score)
}

func TestRepeatedAnswersAllCount(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	q := b.Question(b.Domain("Compute", 1), nil, "a")
	b.Answer(q, false)
	for i := 0; i < 3; i++ {
		b.Answer(q, true)
	}

	br, err := NewScorer(st).Breakdown(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 75.0, br.QuizAccuracy)
}

func TestDomainScores(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	// Created out of section order on purpose.
	storage := b.Domain("Storage", 2)
	compute := b.Domain("Compute", 1)
	b.Domain("Networking", 3)

	q := b.Question(compute, nil, "a")
	b.Answer(q, true)
	b.Answer(q, false)
	card := b.Flashcard(compute, nil)
	b.Review(card, 4)

	sq := b.Question(storage, nil, "a")
	b.Answer(sq, true)

	scores, err := NewScorer(st).DomainScores(context.Background())
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, "Compute", scores[0].Name)
	// 50*0.6 + 100*0.4
	assert.Equal(t, 70.0, scores[0].Score)
	assert.Equal(t, Likely, scores[0].Label)

	assert.Equal(t, "Storage", scores[1].Name)
	assert.Equal(t, 60.0, scores[1].Score)
	assert.Equal(t, NeedsWork, scores[1].Label)

	assert.Equal(t, "Networking", scores[2].Name)
	assert.Zero(t, scores[2].Score)
	assert.Equal(t, NotReady, scores[2].Label)
}

func TestStats(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d := b.Domain("Compute", 1)
	q := b.Question(d, nil, "a")
	card := b.Flashcard(d, nil)
	ctx := context.Background()

	for _, run := range []string{"run-1", "run-1", "run-2"} {
		err := st.Events().AppendAnswer(ctx, store.AnswerEventData{QuestionID: q, UserAnswer: "a", Correct: run == "run-1", BatchID: run})
		require.NoError(t, err)
	}
	b.Review(card, 2)
	b.Review(card, 5)

	stats, err := NewScorer(st).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Stats{
		SessionsCompleted:  0,
		FlashcardsReviewed: 2,
		QuizzesTaken:       2,
		AvgQuizScore:       66.7,
	}, stats)
}

func TestRecommendation(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	compute := b.Domain("Compute", 1)
	storage := b.Domain("Storage", 2)
	s := NewScorer(st)
	ctx := context.Background()

	q1 := b.Question(compute, nil, "a")
	b.Answer(q1, true)
	b.Review(b.Flashcard(compute, nil), 5)
	q2 := b.Question(storage, nil, "a")
	b.Answer(q2, true)

	// Compute 100, Storage 60.
	rec, err := s.Recommendation(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "Storage", rec.Name)

	b.Review(b.Flashcard(storage, nil), 4)
	rec, err = s.Recommendation(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec, "no domain below the bar")
}
