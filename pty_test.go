package term

import (
	"testing"
	"time"
)

func TestPTYSessionRunsCommandOutput(t *testing.T) {
	term := New(WithSize(24, 80))
	sess, err := NewPTYSession(term, PTYOptions{
		Shell: "/bin/sh",
		Args:  []string{"-c", "echo hello"},
		Rows:  24,
		Cols:  80,
	})
	if err != nil {
		t.Fatalf("NewPTYSession failed: %v", err)
	}
	defer sess.Close()

	select {
	case <-sess.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for PTY session to finish")
	}

	if got := term.LineContent(0); got != "hello" {
		t.Errorf("expected terminal to contain 'hello', got %q", got)
	}
}

func TestPTYSessionAssignsUniqueID(t *testing.T) {
	term1 := New(WithSize(24, 80))
	term2 := New(WithSize(24, 80))

	s1, err := NewPTYSession(term1, PTYOptions{Shell: "/bin/sh", Args: []string{"-c", "true"}})
	if err != nil {
		t.Fatalf("NewPTYSession failed: %v", err)
	}
	defer s1.Close()

	s2, err := NewPTYSession(term2, PTYOptions{Shell: "/bin/sh", Args: []string{"-c", "true"}})
	if err != nil {
		t.Fatalf("NewPTYSession failed: %v", err)
	}
	defer s2.Close()

	if s1.ID == s2.ID {
		t.Error("expected distinct session IDs")
	}
}

func TestPTYSessionCloseIsIdempotent(t *testing.T) {
	term := New(WithSize(24, 80))
	sess, err := NewPTYSession(term, PTYOptions{Shell: "/bin/sh", Args: []string{"-c", "sleep 5"}})
	if err != nil {
		t.Fatalf("NewPTYSession failed: %v", err)
	}

	if err := sess.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := sess.Close(); err != nil {
		t.Fatalf("second Close should be a no-op, got: %v", err)
	}
}

func TestFindShellFallsBackToKnownPath(t *testing.T) {
	shell := findShell()
	if shell == "" {
		t.Error("expected a non-empty shell path")
	}
}
