package spinner_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lugassawan/tilik/internal/spinner"
)

func TestPlainOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	s := spinner.New(buf, true)

	s.Start("Loading worktrees...")
	s.Update("Loading worktrees... (2/3)")
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Loading worktrees...") {
		t.Errorf("output = %q, want start message", out)
	}
	if !strings.Contains(out, "(2/3)") {
		t.Errorf("output = %q, want progress update", out)
	}
	if strings.Contains(out, "\r") {
		t.Errorf("output = %q, plain mode must not emit carriage returns", out)
	}
}

func TestUpdateDeduplicates(t *testing.T) {
	buf := new(bytes.Buffer)
	s := spinner.New(buf, true)

	s.Start("working")
	s.Update("working")
	s.Update("working")
	s.Stop()

	if got := strings.Count(buf.String(), "working"); got != 1 {
		t.Errorf("message printed %d times, want 1", got)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	s := spinner.New(new(bytes.Buffer), true)
	s.Start("x")
	s.Stop()
	s.Stop() // must not panic or block
}

func TestUpdateBeforeStartIsNoop(t *testing.T) {
	buf := new(bytes.Buffer)
	s := spinner.New(buf, true)
	s.Update("ignored")

	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing before Start", buf.String())
	}
}
