package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWith_CarriesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := &Logger{SugaredLogger: zap.New(core).Sugar()}

	l.With("component", "session").Info("day advanced", "day", 2)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["component"] != "session" {
		t.Errorf("component = %v, want session", ctx["component"])
	}
	if ctx["day"] != int64(2) {
		t.Errorf("day = %v (%T), want 2", ctx["day"], ctx["day"])
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("expected non-nil logger for nil input")
	}
	l := Nop()
	if OrNop(l) != l {
		t.Error("expected OrNop to return the given logger")
	}
}

func TestNew_Modes(t *testing.T) {
	tests := []struct {
		mode      string
		debug     bool
		info      bool
		wantError bool
	}{
		{mode: "", debug: false, info: false},
		{mode: ModeQuiet, debug: false, info: false},
		{mode: ModeDev, debug: true, info: true},
		{mode: ModeProd, debug: false, info: true},
		{mode: "verbose", wantError: true},
	}
	for _, tt := range tests {
		l, err := New(tt.mode)
		if tt.wantError {
			if err == nil {
				t.Errorf("New(%q): expected error", tt.mode)
			}
			continue
		}
		if err != nil {
			t.Fatalf("New(%q): %v", tt.mode, err)
		}
		if got := l.Enabled(zap.DebugLevel); got != tt.debug {
			t.Errorf("New(%q) debug enabled = %v, want %v", tt.mode, got, tt.debug)
		}
		if got := l.Enabled(zap.InfoLevel); got != tt.info {
			t.Errorf("New(%q) info enabled = %v, want %v", tt.mode, got, tt.info)
		}
	}
}

func TestCallerIsCallSite(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := wrap(zap.New(core))

	l.Warn("slow commit")
	l.With("day", 1).Error("commit failed")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	for _, e := range entries {
		if !e.Caller.Defined || !strings.HasSuffix(e.Caller.File, "logger_test.go") {
			t.Errorf("%q caller = %s, want logger_test.go", e.Message, e.Caller.String())
		}
	}
}
