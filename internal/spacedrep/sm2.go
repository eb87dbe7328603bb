package spacedrep

import (
	"math"
	"time"

	"github.com/abhisek/examprep/internal/apperr"
)

const (
	// DefaultEaseFactor is the ease factor of a card that was never reviewed.
	DefaultEaseFactor = 2.5

	// MinEaseFactor is the floor applied after every update.
	MinEaseFactor = 1.3

	// PassingQuality is the lowest quality counted as a successful recall.
	PassingQuality = 3

	MinQuality = 0
	MaxQuality = 5
)

// State is the SM-2 scheduling state of one flashcard.
type State struct {
	EaseFactor  float64
	Interval    int // days
	Repetitions int
}

// NewState returns the state of a card that was never reviewed.
func NewState() State {
	return State{EaseFactor: DefaultEaseFactor}
}

// Update applies one SM-2 review with the given quality and returns the new
// state. The ease factor is recomputed on every review, pass or fail. On a
// pass the interval grows using the ease factor from before this review.
func Update(quality int, s State) (State, error) {
	if quality < MinQuality || quality > MaxQuality {
		return s, apperr.Invalid("quality", quality, "must be between 0 and 5")
	}

	q := float64(MaxQuality - quality)
	ef := s.EaseFactor + (0.1 - q*(0.08+q*0.02))
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}
	ef = round2(ef)

	next := State{EaseFactor: ef}
	if quality < PassingQuality {
		next.Repetitions = 0
		next.Interval = 1
		return next, nil
	}

	next.Repetitions = s.Repetitions + 1
	switch next.Repetitions {
	case 1:
		next.Interval = 1
	case 2:
		next.Interval = 6
	default:
		next.Interval = int(math.RoundToEven(float64(s.Interval) * s.EaseFactor))
	}
	return next, nil
}

// NextReview returns the calendar date interval days after today.
func NextReview(today time.Time, interval int) time.Time {
	return today.AddDate(0, 0, interval)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
