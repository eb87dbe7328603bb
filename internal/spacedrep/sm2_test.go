package spacedrep

import (
	"testing"
	"time"

	"github.com/abhisek/examprep/internal/apperr"
)

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		quality int
		in      State
		want    State
	}{
		{"first pass", 4, State{EaseFactor: 2.5, Interval: 0, Repetitions: 0}, State{EaseFactor: 2.5, Interval: 1, Repetitions: 1}},
		{"second pass", 4, State{EaseFactor: 2.5, Interval: 1, Repetitions: 1}, State{EaseFactor: 2.5, Interval: 6, Repetitions: 2}},
		{"third pass uses old ease", 4, State{EaseFactor: 2.5, Interval: 6, Repetitions: 2}, State{EaseFactor: 2.5, Interval: 15, Repetitions: 3}},
		{"perfect raises ease", 5, State{EaseFactor: 2.5, Interval: 6, Repetitions: 2}, State{EaseFactor: 2.6, Interval: 15, Repetitions: 3}},
		{"fail resets", 1, State{EaseFactor: 2.5, Interval: 30, Repetitions: 5}, State{EaseFactor: 1.96, Interval: 1, Repetitions: 0}},
		{"difficult recall resets", 2, State{EaseFactor: 2.5, Interval: 15, Repetitions: 3}, State{EaseFactor: 2.18, Interval: 1, Repetitions: 0}},
		{"blackout at floor", 0, State{EaseFactor: 1.3, Interval: 0, Repetitions: 0}, State{EaseFactor: 1.3, Interval: 1, Repetitions: 0}},
		{"hard pass lowers ease", 3, State{EaseFactor: 2.5, Interval: 1, Repetitions: 1}, State{EaseFactor: 2.36, Interval: 6, Repetitions: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Update(tt.quality, tt.in)
			if err != nil {
				t.Fatalf("Update: %v", err)
			}
			if got != tt.want {
				t.Errorf("Update(%d, %+v) = %+v, want %+v", tt.quality, tt.in, got, tt.want)
			}
		})
	}
}

func TestUpdateRejectsOutOfRangeQuality(t *testing.T) {
	for _, q := range []int{-1, 6, 100} {
		_, err := Update(q, NewState())
		if !apperr.IsValidation(err) {
			t.Errorf("Update(%d) err = %v, want ValidationError", q, err)
		}
	}
}

func TestUpdateEaseNeverBelowFloor(t *testing.T) {
	s := NewState()
	for i := 0; i < 20; i++ {
		var err error
		s, err = Update(i%3, s)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if s.EaseFactor < MinEaseFactor {
			t.Fatalf("ease factor %v below floor after %d reviews", s.EaseFactor, i+1)
		}
	}
	if s.EaseFactor != MinEaseFactor {
		t.Errorf("ease factor = %v, want floor %v", s.EaseFactor, MinEaseFactor)
	}
}

func TestUpdatePassingIncrementsRepetitions(t *testing.T) {
	s := NewState()
	for i := 1; i <= 6; i++ {
		var err error
		s, err = Update(4, s)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if s.Repetitions != i {
			t.Errorf("after %d passes repetitions = %d", i, s.Repetitions)
		}
		if s.Interval < 1 {
			t.Errorf("after %d passes interval = %d, want >= 1", i, s.Interval)
		}
	}
}

func TestUpdateEaseIsRoundedToTwoDecimals(t *testing.T) {
	s := State{EaseFactor: 2.123, Interval: 6, Repetitions: 2}
	got, err := Update(4, s)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.EaseFactor != 2.12 {
		t.Errorf("ease factor = %v, want 2.12", got.EaseFactor)
	}
	// Interval uses the unrounded pre-update ease: round(6 * 2.123) = 13.
	if got.Interval != 13 {
		t.Errorf("interval = %d, want 13", got.Interval)
	}
}

func TestNextReview(t *testing.T) {
	today := time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC)
	got := NextReview(today, 6)
	want := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NextReview = %v, want %v", got, want)
	}
}
