package ui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/knowhow-tools/probe/internal/log"
)

// ProgramOptions contains options for creating a Program
type ProgramOptions struct {
	Plain bool // Use plain text output instead of TUI
}

// Program manages the TUI program and provides logger creation. It
// implements check.Reporter.
type Program struct {
	model      *Model
	teaProgram *tea.Program
	isTerminal bool // Whether stdout is a terminal
	plain      bool // Whether to use plain text output
}

// NewProgramWithOptions creates a new TUI program with specified options
func NewProgramWithOptions(opts ProgramOptions) *Program {
	model := newModel()

	isTerminal := term.IsTerminal(int(os.Stdout.Fd()))

	var teaProgram *tea.Program
	if opts.Plain || !isTerminal {
		// Plain mode or non-terminal mode - disable TUI rendering
		teaProgram = tea.NewProgram(model, tea.WithInput(nil), tea.WithoutRenderer())
	} else {
		// No alt screen, to keep previous output visible after quit
		teaProgram = tea.NewProgram(model)
	}

	return &Program{
		model:      model,
		teaProgram: teaProgram,
		isTerminal: isTerminal,
		plain:      opts.Plain,
	}
}

// IsTUIEnabled returns whether the TUI is enabled
func (p *Program) IsTUIEnabled() bool {
	return p.isTerminal && !p.plain
}

// Start starts the TUI program (blocks until Quit is called)
func (p *Program) Start() error {
	_, err := p.teaProgram.Run()
	return err
}

// CreateCheckLogger registers a check and returns a logger for it
func (p *Program) CreateCheckLogger(name string, index, total int) log.Logger {
	p.model.addCheck(name, index, total)

	if p.shouldShowPlainOutput() {
		fmt.Fprintf(os.Stderr, "[%d/%d] Running: %s\n", index, total, name)
	}

	return newCheckLogger(p, name, index, total)
}

// sendLog sends a log message to the TUI
func (p *Program) sendLog(checkIndex int, level, message string) {
	p.teaProgram.Send(logMsg{
		CheckIndex: checkIndex,
		Level:      level,
		Message:    message,
	})
}

// shouldShowPlainOutput returns true if plain text output should be shown
func (p *Program) shouldShowPlainOutput() bool {
	return p.plain || !p.isTerminal
}

// printProgress prints a progress message for plain output mode
func (p *Program) printProgress(checkIndex int, status string) {
	if !p.shouldShowPlainOutput() {
		return
	}

	p.model.mu.RLock()
	defer p.model.mu.RUnlock()

	if checkIndex > 0 && checkIndex <= len(p.model.checks) {
		c := p.model.checks[checkIndex-1]
		fmt.Fprintf(os.Stderr, "[%d/%d] %s: %s\n", checkIndex, len(p.model.checks), status, c.Name)
	}
}

// Complete marks a check as passed
func (p *Program) Complete(checkIndex int) {
	p.teaProgram.Send(statusMsg{
		CheckIndex: checkIndex,
		Status:     "passed",
	})

	p.printProgress(checkIndex, "Passed")
}

// Fail marks a check as failed
func (p *Program) Fail(checkIndex int) {
	p.teaProgram.Send(statusMsg{
		CheckIndex: checkIndex,
		Status:     "failed",
	})

	p.printProgress(checkIndex, "Failed")
}

// Quit stops the TUI program
func (p *Program) Quit() {
	if p.isTerminal {
		p.teaProgram.Quit()
	}
}

// GetFailedChecks returns information about all failed checks
func (p *Program) GetFailedChecks() []*CheckView {
	p.model.mu.RLock()
	defer p.model.mu.RUnlock()

	var failed []*CheckView
	for _, c := range p.model.checks {
		if c.Status == "failed" {
			failed = append(failed, c)
		}
	}
	return failed
}
