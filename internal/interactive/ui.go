package interactive

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/knowhow-tools/probe/internal/check"
	"github.com/knowhow-tools/probe/internal/checksum"
	"github.com/knowhow-tools/probe/internal/config"
)

type status int

const (
	statusWatching status = iota
	statusChecking
	statusPassed
	statusFailed
	statusError
)

// outcome is the result of one check in the latest run
type outcome struct {
	name  string
	lines []string
	err   error
}

type model struct {
	configPath   string
	status       status
	lastUpdate   time.Time
	err          error
	lastChecksum string
	outcomes     []outcome

	// UI state
	spinner int
	width   int
	height  int
}

type fileChangedMsg struct{}

type checksCompleteMsg struct {
	outcomes []outcome
	checksum string
	skipped  bool
	err      error
}

type tickMsg time.Time

// NewModel creates the watch-mode model for the given fixture file
func NewModel(configPath string) model {
	return model{
		configPath: configPath,
		status:     statusWatching,
	}
}

func (m model) Init() tea.Cmd {
	// Trigger the initial run from here: Send blocks until the program
	// is receiving messages, so it must not be called before Run.
	return tea.Batch(tick(), FileChanged)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case fileChangedMsg:
		m.status = statusChecking
		m.lastUpdate = time.Now()
		return m, m.runChecks()

	case checksCompleteMsg:
		if msg.err != nil {
			m.status = statusError
			m.err = msg.err
			return m, nil
		}
		if msg.skipped {
			// Fixtures unchanged, keep showing the previous results
			m.status = statusWatching
			return m, nil
		}
		m.lastChecksum = msg.checksum
		m.outcomes = msg.outcomes
		m.err = nil
		m.status = statusPassed
		for _, o := range msg.outcomes {
			if o.err != nil {
				m.status = statusFailed
			}
		}
		return m, nil

	case tickMsg:
		if m.status == statusChecking {
			m.spinner++
		}
		return m, tick()
	}

	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	// Header
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	s.WriteString(headerStyle.Render("Probe - editor tooling sanity checks"))
	s.WriteString("\n\n")

	// File info
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(fileStyle.Render(fmt.Sprintf("Watching: %s", m.configPath)))
	s.WriteString("\n\n")

	// Status
	statusStyle := lipgloss.NewStyle().Bold(true)
	switch m.status {
	case statusWatching:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render("Watching for changes..."))
	case statusChecking:
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		s.WriteString(statusStyle.Foreground(lipgloss.Color("12")).Render(
			fmt.Sprintf("%s Running checks...", spinner[m.spinner%len(spinner)])))
	case statusPassed:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("10")).Render("All checks passed"))
		if !m.lastUpdate.IsZero() {
			s.WriteString(fmt.Sprintf(" (%s)", time.Since(m.lastUpdate).Round(time.Millisecond)))
		}
	case statusFailed:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("9")).Render("Some checks failed"))
	case statusError:
		s.WriteString(statusStyle.Foreground(lipgloss.Color("9")).Render("Error: "))
		if m.err != nil {
			s.WriteString(m.err.Error())
		}
	}
	s.WriteString("\n\n")

	// Latest results
	passStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	for _, o := range m.outcomes {
		if o.err != nil {
			s.WriteString(failStyle.Render(fmt.Sprintf("✗ %s: %v", o.name, o.err)))
			s.WriteString("\n")
			continue
		}
		s.WriteString(passStyle.Render(fmt.Sprintf("✓ %s", o.name)))
		s.WriteString("\n")
		for _, line := range o.lines {
			s.WriteString(fmt.Sprintf("    %s\n", line))
		}
	}
	if len(m.outcomes) > 0 {
		s.WriteString("\n")
	}

	// Instructions
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	s.WriteString(helpStyle.Render("Press 'q' to quit"))

	return s.String()
}

func (m model) runChecks() tea.Cmd {
	lastChecksum := m.lastChecksum
	configPath := m.configPath

	return func() tea.Msg {
		ctx := context.Background()

		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return checksCompleteMsg{err: fmt.Errorf("config error: %w", err)}
		}

		// Editors fire duplicate events; skip when fixtures are unchanged
		sum := checksum.Calculate(cfg)
		if sum == lastChecksum {
			return checksCompleteMsg{skipped: true, checksum: sum}
		}

		var outcomes []outcome
		for _, c := range check.All(cfg) {
			result, err := c.Run(ctx, quietLogger{})
			o := outcome{name: c.Name, err: err}
			if result != nil {
				o.lines = result.Lines
			}
			outcomes = append(outcomes, o)
		}

		return checksCompleteMsg{outcomes: outcomes, checksum: sum}
	}
}

// quietLogger drops check progress logs; the watch view renders the
// collected results itself.
type quietLogger struct{}

func (quietLogger) Info(msg string, args ...any)  {}
func (quietLogger) Debug(msg string, args ...any) {}
func (quietLogger) Error(msg string, args ...any) {}
func (quietLogger) Warn(msg string, args ...any)  {}
func (quietLogger) Trace(msg string, args ...any) {}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// FileChanged returns the message that triggers a re-run
func FileChanged() tea.Msg {
	return fileChangedMsg{}
}
