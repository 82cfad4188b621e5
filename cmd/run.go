package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/knowhow-tools/probe/internal/check"
	"github.com/knowhow-tools/probe/internal/config"
	"github.com/knowhow-tools/probe/internal/log"
	"github.com/knowhow-tools/probe/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run [dir]",
	Short: "Run all sanity checks",
	Long: `Run executes every built-in sanity check using the fixture values
from probe.toml, searched upward from the given directory (default the
current directory). Built-in fixtures apply when no probe.toml exists.

Exits non-zero when any check fails.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		cfg, err := config.Load(dir)
		if err != nil {
			log.Error("failed to load configuration", slog.String("error", err.Error()))
			os.Exit(1)
		}
		cfg.Plain = viper.GetBool("plain")

		setupLogging(cfg)

		if cfg.Path != "" {
			log.Debug("using fixtures", slog.String("config", cfg.Path))
		} else {
			log.Debug("no probe.toml found, using built-in fixtures")
		}

		if err := runChecks(context.Background(), cfg); err != nil {
			log.Error("checks failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info("all checks passed")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// runChecks executes the checks under the TUI (or plain output when
// stdout is not a terminal or --plain is set)
func runChecks(ctx context.Context, cfg *config.Config) error {
	checks := check.All(cfg)

	program := ui.NewProgramWithOptions(ui.ProgramOptions{Plain: cfg.Plain})
	runner := check.NewRunner(program)

	// Run checks in the background while the TUI renders
	runDone := make(chan error, 1)
	go func() {
		err := runner.Run(ctx, checks)
		time.Sleep(100 * time.Millisecond) // allow final render
		program.Quit()
		runDone <- err
	}()

	tuiDone := make(chan error, 1)
	go func() {
		tuiDone <- program.Start()
	}()

	err := <-runDone
	if program.IsTUIEnabled() {
		<-tuiDone
		// Newline after the TUI so follow-up logs start clean
		fmt.Fprintln(os.Stderr, "")
	}

	for _, failed := range program.GetFailedChecks() {
		for _, entry := range failed.Logs {
			log.Error(fmt.Sprintf("[%s] %s", failed.Name, entry.Message))
		}
	}

	return err
}

func setupLogging(cfg *config.Config) {
	logLevel := viper.GetString("log-level")
	if logLevel == "" {
		logLevel = cfg.LogLevel
	}
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		log.Error("invalid log level", slog.String("level", logLevel))
		os.Exit(1)
	}
	if err := log.SetLevel(level); err != nil {
		log.Error("failed to set log level", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
