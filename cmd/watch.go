package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/knowhow-tools/probe/internal/config"
	"github.com/knowhow-tools/probe/internal/interactive"
)

var watchCmd = &cobra.Command{
	Use:   "watch [probe.toml]",
	Short: "Watch the fixture file and re-run checks on change",
	Long: `Watch monitors the probe.toml fixture file and re-runs every sanity
check whenever the file is saved. Without an argument the fixture file
is searched upward from the current directory.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var filePath string
		if len(args) > 0 {
			filePath = args[0]
			if _, err := os.Stat(filePath); os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Error: file %s does not exist\n", filePath)
				os.Exit(1)
			}
		} else {
			found, err := config.FindFile(".")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			filePath = found
		}

		absPath, err := filepath.Abs(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to resolve path: %v\n", err)
			os.Exit(1)
		}

		if err := runInteractiveMode(absPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runInteractiveMode(filePath string) error {
	m := interactive.NewModel(filePath)

	p := tea.NewProgram(m, tea.WithAltScreen())

	watcher, err := interactive.NewFileWatcher(filePath, func() {
		p.Send(interactive.FileChanged())
	})
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go watcher.Start(ctx)

	// The model's Init triggers the initial run; the watcher only has
	// to report subsequent saves.
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}

	return nil
}
