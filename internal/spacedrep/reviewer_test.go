package spacedrep

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examprep/internal/apperr"
	"github.com/abhisek/examprep/internal/logger"
	"github.com/abhisek/examprep/internal/store/storetest"
)

func TestReviewReschedulesAndLogs(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	card := b.Flashcard(b.Domain("Compute", 1), nil)

	r := NewReviewer(st, logger.Nop())
	r.Now = func() time.Time { return time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC) }
	ctx := context.Background()

	res, err := r.Review(ctx, card, 4, "batch-1")
	require.NoError(t, err)
	assert.Equal(t, State{EaseFactor: 2.5, Interval: 1, Repetitions: 1}, res.After)
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), res.NextReview)

	fc, err := st.Content().Flashcard(ctx, card)
	require.NoError(t, err)
	assert.Equal(t, 1, fc.Repetitions)
	assert.Equal(t, 1, fc.Interval)
	require.NotNil(t, fc.NextReview)
	assert.True(t, fc.NextReview.Equal(res.NextReview))

	events, err := st.Client().ReviewEvent.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, 4, events[0].Rating)
	assert.Equal(t, "batch-1", events[0].BatchID)

	// Second review on the same day moves to the 6-day interval.
	res, err = r.Review(ctx, card, 5, "batch-1")
	require.NoError(t, err)
	assert.Equal(t, 6, res.After.Interval)
	assert.Equal(t, 2.6, res.After.EaseFactor)
}

func TestReviewRejectsBadRatingWithoutWriting(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	card := b.Flashcard(b.Domain("Compute", 1), nil)

	r := NewReviewer(st, nil)
	_, err := r.Review(context.Background(), card, 7, "")
	assert.True(t, apperr.IsValidation(err), "err = %v", err)

	n, err := st.Client().ReviewEvent.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	fc, err := st.Content().Flashcard(context.Background(), card)
	require.NoError(t, err)
	assert.Nil(t, fc.NextReview)
}

func TestReviewUnknownCard(t *testing.T) {
	st := storetest.Open(t)
	r := NewReviewer(st, nil)
	_, err := r.Review(context.Background(), 404, 3, "")
	assert.True(t, apperr.IsNotFound(err), "err = %v", err)
}
