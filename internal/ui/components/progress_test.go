package components

import (
	"strings"
	"testing"
)

func TestProgressBarFilled(t *testing.T) {
	tests := []struct {
		percent float64
		want    int
	}{
		{0, 0},
		{50, 10},
		{99.9, 19},
		{100, 20},
		{140, 20},
		{-5, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.percent, false, 20)
		if got := p.Filled(); got != tt.want {
			t.Errorf("Filled(%v) = %d, want %d", tt.percent, got, tt.want)
		}
	}
}

func TestProgressBarView(t *testing.T) {
	v := NewProgressBar("Readiness", 37.5, true, 8).View()
	for _, want := range []string{"Readiness", "███", "░░░░░", "37.5%"} {
		if !strings.Contains(v, want) {
			t.Errorf("view %q missing %q", v, want)
		}
	}
}
