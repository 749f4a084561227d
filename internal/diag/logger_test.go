package diag

import (
	"bytes"
	"errors"
	"testing"
)

// TestLoggerPlainLines verifies level tags and key=value fields without styling.
func TestLoggerPlainLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false, false)
	logger.Info("hydrated", "source", "remote", "questions", 3)
	logger.Warn("fetch failed", "err", errors.New("status 500"))
	want := "[info] hydrated source=remote questions=3\n" +
		"[warn] fetch failed err=\"status 500\"\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

// TestLoggerDebugNeedsVerbose verifies debug lines are hidden by default.
func TestLoggerDebugNeedsVerbose(t *testing.T) {
	var quiet, loud bytes.Buffer
	New(&quiet, false, true).Debug("hidden")
	New(&loud, true, true).Debug("shown", "k", "v")
	if quiet.Len() != 0 {
		t.Fatalf("expected no debug output, got %q", quiet.String())
	}
	if loud.String() != "[debug] shown k=v\n" {
		t.Fatalf("unexpected debug output %q", loud.String())
	}
}

// TestLoggerOddFields verifies a dangling key is still printed.
func TestLoggerOddFields(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false, true).Error("boom", "path")
	if buf.String() != "[error] boom path=<missing>\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

// TestNilLoggerDiscards verifies a nil logger is safe to call.
func TestNilLoggerDiscards(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	Discard().Error("ignored")
}

// TestFormatCounts verifies map fields are sorted.
func TestFormatCounts(t *testing.T) {
	got := formatFields([]any{"types", map[string]int{"single_choice": 2, "free_text": 1}})
	if got != "types=free_text:1,single_choice:2" {
		t.Fatalf("unexpected fields %q", got)
	}
	if got := formatFields([]any{"types", map[string]int{}}); got != "types=none" {
		t.Fatalf("unexpected empty counts %q", got)
	}
}

// TestShouldStyleBuffers verifies non-terminal writers are never styled.
func TestShouldStyleBuffers(t *testing.T) {
	if ShouldStyle(&bytes.Buffer{}) || ShouldStyle(nil) {
		t.Fatalf("expected buffers to be unstyled")
	}
}
