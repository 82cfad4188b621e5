package ui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// CheckView represents the view state for a single check
type CheckView struct {
	Name      string
	Index     int
	Total     int
	Status    string
	Logs      []LogEntry
	StartTime time.Time
	EndTime   time.Time
	mu        sync.RWMutex
}

// Model is the Bubble Tea model for the TUI
type Model struct {
	checks []*CheckView
	width  int
	height int
	mu     sync.RWMutex
}

// newModel creates a new TUI model
func newModel() *Model {
	return &Model{
		checks: make([]*CheckView, 0),
	}
}

// addCheck adds a new check to track
func (m *Model) addCheck(name string, index, total int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := &CheckView{
		Name:      name,
		Index:     index,
		Total:     total,
		Status:    "pending",
		Logs:      make([]LogEntry, 0),
		StartTime: time.Now(),
	}
	m.checks = append(m.checks, c)
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	// Refresh display periodically
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case logMsg:
		m.addLog(msg)

	case statusMsg:
		m.updateStatus(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.checks) == 0 {
		return "Initializing..."
	}

	var sections []string

	// Count checks by status
	passed := 0
	failed := 0
	running := 0
	pending := 0
	for _, c := range m.checks {
		switch c.Status {
		case "passed":
			passed++
		case "failed":
			failed++
		case "running":
			running++
		case "pending":
			pending++
		}
	}

	// Summary header
	summary := fmt.Sprintf("Checks: %d/%d passed", passed, len(m.checks))
	if running > 0 {
		summary += fmt.Sprintf(", %d running", running)
	}
	if pending > 0 {
		summary += fmt.Sprintf(", %d pending", pending)
	}
	if failed > 0 {
		summary += fmt.Sprintf(", %d failed", failed)
	}
	sections = append(sections, summary)
	sections = append(sections, strings.Repeat("=", 60))

	const logHeight = 2 // recent log lines shown per check

	for _, c := range m.checks {
		icon := m.getStatusIcon(c.Status)

		header := fmt.Sprintf("%s [%d/%d] %s", icon, c.Index, c.Total, c.Name)
		if c.Status == "passed" || c.Status == "failed" {
			duration := c.EndTime.Sub(c.StartTime).Round(time.Millisecond)
			header += fmt.Sprintf(" (%s)", duration)
		}

		divider := strings.Repeat("-", 60)

		c.mu.RLock()
		logs := c.Logs
		if len(logs) > logHeight {
			logs = logs[len(logs)-logHeight:]
		}

		var logLines []string
		for _, entry := range logs {
			line := fmt.Sprintf("[%s] %-5s: %s",
				entry.Timestamp.Format("15:04:05"),
				entry.Level,
				entry.Message)

			// Truncate long lines in interactive mode
			if m.height > 0 && len(line) > 80 {
				line = line[:77] + "..."
			}
			logLines = append(logLines, line)
		}
		c.mu.RUnlock()

		// Pad to a fixed height for consistent display
		for len(logLines) < logHeight {
			logLines = append(logLines, "")
		}

		section := header + "\n" +
			divider + "\n" +
			strings.Join(logLines, "\n")

		sections = append(sections, section)
	}

	return strings.Join(sections, "\n\n")
}

func (m *Model) getStatusIcon(status string) string {
	switch status {
	case "pending":
		return "[PENDING]"
	case "running":
		return "[RUNNING]"
	case "passed":
		return "[PASS]"
	case "failed":
		return "[FAIL]"
	default:
		return "[UNKNOWN]"
	}
}

func (m *Model) addLog(msg logMsg) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if msg.CheckIndex < 1 || msg.CheckIndex > len(m.checks) {
		return
	}

	c := m.checks[msg.CheckIndex-1] // Convert to 0-based index
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Logs = append(c.Logs, LogEntry{
		Level:     msg.Level,
		Message:   msg.Message,
		Timestamp: time.Now(),
	})

	// Auto-update status on first log
	if c.Status == "pending" {
		c.Status = "running"
	}
}

func (m *Model) updateStatus(msg statusMsg) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if msg.CheckIndex < 1 || msg.CheckIndex > len(m.checks) {
		return
	}

	c := m.checks[msg.CheckIndex-1]
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Status = msg.Status
	if msg.Status == "passed" || msg.Status == "failed" {
		c.EndTime = time.Now()
	}
}

// Message types
type tickMsg time.Time

type logMsg struct {
	CheckIndex int
	Level      string
	Message    string
}

type statusMsg struct {
	CheckIndex int
	Status     string
}
