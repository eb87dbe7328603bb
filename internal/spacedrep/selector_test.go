package spacedrep

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examprep/internal/store"
	"github.com/abhisek/examprep/internal/store/storetest"
)

func schedule(t *testing.T, st *store.Store, cardID int, next time.Time) {
	t.Helper()
	err := st.Content().UpdateSchedule(context.Background(), cardID, store.Schedule{
		EaseFactor:  2.5,
		Interval:    1,
		Repetitions: 1,
		NextReview:  &next,
	})
	require.NoError(t, err)
}

func TestSelectDueOrdering(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d := b.Domain("Compute", 1)

	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.Local)
	today := store.CalendarDay(now)

	older := b.Flashcard(d, nil)
	schedule(t, st, older, today.AddDate(0, 0, -3))
	recent := b.Flashcard(d, nil)
	schedule(t, st, recent, today)
	future := b.Flashcard(d, nil)
	schedule(t, st, future, today.AddDate(0, 0, 1))
	fresh := b.Flashcard(d, nil)

	sel := NewSelector(st.Content())
	cards, err := sel.SelectDue(context.Background(), now, DueFilter{}, 10)
	require.NoError(t, err)

	var got []int
	for _, c := range cards {
		got = append(got, c.ID)
	}
	assert.Equal(t, []int{fresh, older, recent}, got)
}

func TestSelectDueRespectsLimitAndDomain(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d1 := b.Domain("Compute", 1)
	d2 := b.Domain("Storage", 2)
	for i := 0; i < 5; i++ {
		b.Flashcard(d1, nil)
	}
	other := b.Flashcard(d2, nil)

	sel := NewSelector(st.Content())
	ctx := context.Background()
	now := time.Now()

	cards, err := sel.SelectDue(ctx, now, DueFilter{}, 3)
	require.NoError(t, err)
	assert.Len(t, cards, 3)

	cards, err = sel.SelectDue(ctx, now, DueFilter{DomainID: &d2}, 10)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, other, cards[0].ID)

	cards, err = sel.SelectDue(ctx, now, DueFilter{}, 0)
	require.NoError(t, err)
	assert.Empty(t, cards)
}

func TestSelectDueTiebreakIsRandom(t *testing.T) {
	st := storetest.Open(t)
	b := storetest.NewBuilder(t, st)
	d := b.Domain("Compute", 1)
	for i := 0; i < 8; i++ {
		b.Flashcard(d, nil)
	}

	sel := NewSelector(st.Content())
	first, err := sel.SelectDue(context.Background(), time.Now(), DueFilter{}, 8)
	require.NoError(t, err)

	// Reverse the tiebreak so ties come out in the opposite order.
	var n uint64 = 100
	sel.shuffle = func() uint64 { n--; return n }
	second, err := sel.SelectDue(context.Background(), time.Now(), DueFilter{}, 8)
	require.NoError(t, err)
	require.Len(t, second, 8)

	for i := 1; i < len(second); i++ {
		assert.Greater(t, second[i-1].ID, second[i].ID, "ties should follow the tiebreak key")
	}
	assert.Len(t, first, 8)
}
