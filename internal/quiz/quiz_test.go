package quiz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examprep/internal/apperr"
	"github.com/abhisek/examprep/internal/store/storetest"
)

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"a", "a", false},
		{" B ", "b", false},
		{"D\n", "d", false},
		{"e", "", true},
		{"", "", true},
		{"ab", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeAnswer(tt.in)
		if tt.wantErr {
			assert.True(t, apperr.IsValidation(err), "NormalizeAnswer(%q) err = %v", tt.in, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestQuestionsFilterAndCount(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d1 := b.Domain("Compute", 1)
	d2 := b.Domain("Storage", 2)
	sub := b.Subtopic(d1, "VMs")
	for i := 0; i < 4; i++ {
		b.Question(d1, nil, "a")
	}
	inSub := b.Question(d1, &sub, "b")
	b.Question(d2, nil, "c")

	svc := NewService(st, nil)
	ctx := context.Background()

	all, err := svc.Questions(ctx, Filter{}, 100)
	require.NoError(t, err)
	assert.Len(t, all, 6)

	some, err := svc.Questions(ctx, Filter{}, 3)
	require.NoError(t, err)
	assert.Len(t, some, 3)

	dom, err := svc.Questions(ctx, Filter{DomainID: &d1}, 10)
	require.NoError(t, err)
	assert.Len(t, dom, 5)
	for _, q := range dom {
		assert.Equal(t, d1, q.DomainID)
	}

	bySub, err := svc.Questions(ctx, Filter{SubtopicID: &sub}, 10)
	require.NoError(t, err)
	require.Len(t, bySub, 1)
	assert.Equal(t, inSub, bySub[0].ID)

	none, err := svc.Questions(ctx, Filter{}, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRecordAnswer(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	q := b.Question(b.Domain("Compute", 1), nil, "c")

	svc := NewService(st, nil)
	ctx := context.Background()

	ok, err := svc.RecordAnswer(ctx, q, " C", "run-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.RecordAnswer(ctx, q, "a", "run-1")
	require.NoError(t, err)
	assert.False(t, ok)

	events, err := st.Client().AnswerEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "c", events[0].UserAnswer)
	assert.Equal(t, "run-1", events[0].BatchID)
}

func TestRecordAnswerRejectsWithoutWriting(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	q := b.Question(b.Domain("Compute", 1), nil, "c")
	svc := NewService(st, nil)
	ctx := context.Background()

	_, err := svc.RecordAnswer(ctx, q, "z", "")
	assert.True(t, apperr.IsValidation(err), "err = %v", err)

	_, err = svc.RecordAnswer(ctx, q+100, "a", "")
	assert.True(t, apperr.IsNotFound(err), "err = %v", err)

	n, err := st.Client().AnswerEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestChoices(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	id := b.Question(b.Domain("Compute", 1), nil, "a")
	q, err := st.Content().Question(context.Background(), id)
	require.NoError(t, err)

	choices := Choices(q)
	require.Len(t, choices, 4)
	assert.Equal(t, Choice{Letter: "d", Text: "D"}, choices[3])
}

func TestQuestionsExclude(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d := b.Domain("Compute", 1)
	q1 := b.Question(d, nil, "a")
	q2 := b.Question(d, nil, "a")

	qs, err := NewService(st, nil).Questions(context.Background(), Filter{Exclude: map[int]bool{q1: true}}, 5)
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, q2, qs[0].ID)
}
