// Package check defines the built-in sanity checks that reproduce the
// original manual editor-tooling test scripts as verified, repeatable
// runs: a recursive Fibonacci workload and a data-holder round trip.
package check

import (
	"context"
	"fmt"

	"github.com/knowhow-tools/probe/internal/config"
	"github.com/knowhow-tools/probe/internal/example"
	"github.com/knowhow-tools/probe/internal/fib"
	"github.com/knowhow-tools/probe/internal/log"
)

// Result holds the output lines a check produced. The lines match what
// the original manual scripts printed, so they double as golden output.
type Result struct {
	Lines []string
}

// Check is a single named sanity check
type Check struct {
	Name string
	run  func(ctx context.Context, logger log.Logger) (*Result, error)
}

// Run executes the check, reporting progress through the given logger
func (c *Check) Run(ctx context.Context, logger log.Logger) (*Result, error) {
	return c.run(ctx, logger)
}

// Fibonacci builds the recursive Fibonacci check from its fixture
// values. When an expectation is configured the check fails if the
// computed value does not match it.
func Fibonacci(cfg config.FibConfig) *Check {
	return &Check{
		Name: "fibonacci",
		run: func(ctx context.Context, logger log.Logger) (*Result, error) {
			logger.Debug("computing fibonacci", "n", cfg.N)

			value := fib.Fib(cfg.N)
			if cfg.Want != nil && value != *cfg.Want {
				return nil, fmt.Errorf("fibonacci(%d) = %d, want %d", cfg.N, value, *cfg.Want)
			}

			return &Result{
				Lines: []string{
					fmt.Sprintf("Fibonacci of %d is: %d", cfg.N, value),
				},
			}, nil
		},
	}
}

// Example builds the data-holder check from its fixture values. The
// holder is constructed, its derived value verified, and its formatted
// output captured.
func Example(cfg config.ExampleConfig) *Check {
	return &Check{
		Name: "example",
		run: func(ctx context.Context, logger log.Logger) (*Result, error) {
			logger.Debug("constructing example", "name", cfg.Name, "value", cfg.Value)

			e := example.New(cfg.Name, cfg.Value)
			if e.Computed != cfg.Value*2 {
				return nil, fmt.Errorf("computed value = %d, want %d", e.Computed, cfg.Value*2)
			}

			info := e.Info()
			if want := fmt.Sprintf("Name: %s, Value: %d", cfg.Name, cfg.Value); info != want {
				return nil, fmt.Errorf("info = %q, want %q", info, want)
			}

			result := e.Calculate(cfg.Multiplier)
			if want := float64(cfg.Value) * cfg.Multiplier; result != want {
				return nil, fmt.Errorf("calculate(%v) = %v, want %v", cfg.Multiplier, result, want)
			}

			return &Result{
				Lines: []string{
					fmt.Sprintf("Info: %s", info),
					fmt.Sprintf("Result: %s", example.FormatResult(result)),
				},
			}, nil
		},
	}
}

// All returns the built-in checks for the given fixtures, in the order
// they are run.
func All(cfg *config.Config) []*Check {
	return []*Check{
		Fibonacci(cfg.Fib),
		Example(cfg.Example),
	}
}

// Get returns the named check built from the given fixtures
func Get(name string, cfg *config.Config) (*Check, error) {
	for _, c := range All(cfg) {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unknown check: %s", name)
}
