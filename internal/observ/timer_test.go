package observ

import (
	"strings"
	"testing"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()

	idx := tm.Begin("lex")
	tm.End(idx)
	idx = tm.Begin("parse")
	tm.End(idx)

	phases := tm.Phases()
	if len(phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(phases))
	}
	if phases[0].Name != "lex" || phases[1].Name != "parse" {
		t.Errorf("phase names: %s, %s", phases[0].Name, phases[1].Name)
	}
	if phases[0].Dur < 0 {
		t.Error("negative duration")
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	tm.End(tm.Begin("eval"))

	out := tm.Summary()
	if !strings.HasPrefix(out, "timings:\n") {
		t.Errorf("summary header: %q", out)
	}
	if !strings.Contains(out, "eval") || !strings.Contains(out, "total") {
		t.Errorf("summary body: %q", out)
	}
}

func TestNilTimerIsNoop(t *testing.T) {
	var tm *Timer

	idx := tm.Begin("lex")
	tm.End(idx)

	if tm.Phases() != nil {
		t.Error("nil timer has phases")
	}
	if tm.Summary() != "" {
		t.Error("nil timer has a summary")
	}
}

func TestEmptyTimerSummary(t *testing.T) {
	if NewTimer().Summary() != "" {
		t.Error("empty timer has a summary")
	}
}

func TestEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(-1)
	tm.End(5)
	if len(tm.Phases()) != 0 {
		t.Error("out-of-range End recorded a phase")
	}
}
