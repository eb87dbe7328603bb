package apperr

import (
	"fmt"
	"testing"
)

func TestIsHelpers_MatchWrapped(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		validate bool
		notFound bool
		conflict bool
	}{
		{"validation", Invalid("rating", 7, "must be between 0 and 5"), true, false, false},
		{"not found", NotFound("flashcard", 42), false, true, false},
		{"conflict", Conflict("complete component", "day %d is ahead of current day %d", 3, 1), false, false, true},
	}

	for _, tt := range tests {
		wrapped := fmt.Errorf("outer: %w", tt.err)
		if got := IsValidation(wrapped); got != tt.validate {
			t.Errorf("%s: IsValidation = %v, want %v", tt.name, got, tt.validate)
		}
		if got := IsNotFound(wrapped); got != tt.notFound {
			t.Errorf("%s: IsNotFound = %v, want %v", tt.name, got, tt.notFound)
		}
		if got := IsConflict(wrapped); got != tt.conflict {
			t.Errorf("%s: IsConflict = %v, want %v", tt.name, got, tt.conflict)
		}
	}
}

func TestErrorMessages(t *testing.T) {
	if got := NotFound("study day", 31).Error(); got != "study day 31 not found" {
		t.Errorf("NotFound message = %q", got)
	}
	if got := Invalid("component", "lunch", "unknown component").Error(); got != "invalid component lunch: unknown component" {
		t.Errorf("Invalid message = %q", got)
	}
	if got := Conflict("start", "day %d is locked", 5).Error(); got != "start: day 5 is locked" {
		t.Errorf("Conflict message = %q", got)
	}
}
