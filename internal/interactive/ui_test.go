package interactive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/knowhow-tools/probe/internal/config"
)

func writeFixtures(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture file: %v", err)
	}
	return path
}

// The initial run must come out of Init: sending into the program
// before Run starts blocks forever, so startup may not depend on an
// external Send.
func TestInitTriggersInitialRun(t *testing.T) {
	m := NewModel("probe.toml")

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init returned nil command")
	}

	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("Init command produced %T, want tea.BatchMsg", cmd())
	}

	found := false
	for _, c := range batch {
		if _, ok := c().(fileChangedMsg); ok {
			found = true
		}
	}
	if !found {
		t.Error("Init batch does not emit fileChangedMsg")
	}
}

func TestUpdateFileChangedStartsChecks(t *testing.T) {
	m := NewModel("probe.toml")

	updated, cmd := m.Update(fileChangedMsg{})
	if cmd == nil {
		t.Fatal("Update(fileChangedMsg) returned nil command")
	}
	if got := updated.(model).status; got != statusChecking {
		t.Errorf("status = %d, want statusChecking", got)
	}
}

func TestRunChecksAllPass(t *testing.T) {
	path := writeFixtures(t, `[fib]
n = 10
want = 55

[example]
name = "test"
value = 42
multiplier = 2.5
`)
	m := NewModel(path)

	msg, ok := m.runChecks()().(checksCompleteMsg)
	if !ok {
		t.Fatal("runChecks did not produce checksCompleteMsg")
	}
	if msg.err != nil {
		t.Fatalf("runChecks failed: %v", msg.err)
	}
	if msg.skipped {
		t.Fatal("first run reported skipped")
	}
	if len(msg.outcomes) != 2 {
		t.Fatalf("outcomes = %d, want 2", len(msg.outcomes))
	}
	for _, o := range msg.outcomes {
		if o.err != nil {
			t.Errorf("check %s failed: %v", o.name, o.err)
		}
	}
	joined := strings.Join(msg.outcomes[1].lines, "\n")
	if !strings.Contains(joined, "Result: 105.0") {
		t.Errorf("example lines = %q, want Result: 105.0", joined)
	}
	if msg.checksum == "" {
		t.Error("checksum is empty")
	}
}

func TestRunChecksSkipsUnchangedFixtures(t *testing.T) {
	path := writeFixtures(t, "[fib]\nn = 7\n")
	m := NewModel(path)

	first := m.runChecks()().(checksCompleteMsg)
	if first.err != nil {
		t.Fatalf("first run failed: %v", first.err)
	}

	m.lastChecksum = first.checksum
	second := m.runChecks()().(checksCompleteMsg)
	if !second.skipped {
		t.Error("second run with unchanged fixtures was not skipped")
	}
}

func TestRunChecksConfigError(t *testing.T) {
	path := writeFixtures(t, "[fib\nn = 1\n")
	m := NewModel(path)

	msg := m.runChecks()().(checksCompleteMsg)
	if msg.err == nil {
		t.Fatal("runChecks succeeded on malformed fixtures, want error")
	}
	if !strings.Contains(msg.err.Error(), "config error") {
		t.Errorf("error = %q, want config error wrapping", msg.err)
	}
}
