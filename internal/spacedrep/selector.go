package spacedrep

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/abhisek/examprep/ent"
	"github.com/abhisek/examprep/internal/store"
)

// DueFilter narrows due-card selection. A nil DomainID selects from every
// domain.
type DueFilter struct {
	DomainID *int
}

// Selector picks the flashcards due for review.
type Selector struct {
	content store.ContentRepo

	// shuffle returns a tiebreak key per card. Replaced in tests.
	shuffle func() uint64
}

// NewSelector creates a selector reading cards from content.
func NewSelector(content store.ContentRepo) *Selector {
	return &Selector{content: content, shuffle: rand.Uint64}
}

// SelectDue returns up to limit cards that were never reviewed or whose
// review date is on or before now's calendar day. Never-reviewed cards come
// first, then cards by review date ascending. Cards sharing a position are
// ordered randomly, independently on every call.
func (s *Selector) SelectDue(ctx context.Context, now time.Time, filter DueFilter, limit int) ([]*ent.Flashcard, error) {
	if limit <= 0 {
		return []*ent.Flashcard{}, nil
	}

	cards, err := s.content.DueFlashcards(ctx, store.CalendarDay(now), filter.DomainID)
	if err != nil {
		return nil, fmt.Errorf("select due cards: %w", err)
	}

	keys := make(map[int]uint64, len(cards))
	for _, c := range cards {
		keys[c.ID] = s.shuffle()
	}

	sort.SliceStable(cards, func(i, j int) bool {
		a, b := cards[i], cards[j]
		switch {
		case a.NextReview == nil && b.NextReview != nil:
			return true
		case a.NextReview != nil && b.NextReview == nil:
			return false
		case a.NextReview != nil && !a.NextReview.Equal(*b.NextReview):
			return a.NextReview.Before(*b.NextReview)
		}
		return keys[a.ID] < keys[b.ID]
	})

	if len(cards) > limit {
		cards = cards[:limit]
	}
	return cards, nil
}
