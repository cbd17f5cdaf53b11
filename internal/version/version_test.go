package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	origCommit, origDate := Commit, Date
	defer func() { Commit, Date = origCommit, origDate }()

	if s := String(); !strings.HasPrefix(s, "circlecrop version dev (") {
		t.Errorf("Unexpected default version string: %s", s)
	}

	Commit = "0123456789abcdef"
	Date = "2025-01-02T03:04:05Z"
	s := String()
	if !strings.Contains(s, "commit: 01234567,") {
		t.Errorf("Expected truncated commit, got: %s", s)
	}
	if !strings.Contains(s, "built: 2025-01-02T03:04:05Z") {
		t.Errorf("Expected build date, got: %s", s)
	}

	Commit = "abc"
	if s := String(); !strings.Contains(s, "commit: abc,") {
		t.Errorf("Expected short commit kept intact, got: %s", s)
	}
}
