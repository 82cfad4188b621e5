package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/knowhow-tools/probe/internal/config"
	"github.com/knowhow-tools/probe/internal/fib"
)

var fibCmd = &cobra.Command{
	Use:   "fib [n]",
	Short: "Run the recursive Fibonacci demo",
	Long: `Fib runs the Fibonacci demo workload once and prints the result.
The input defaults to fib.n from probe.toml (10 when no fixture file
exists); a positional argument overrides it.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		n, err := resolveFibInput(cfg, args)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Testing editor tooling")
		fmt.Printf("Fibonacci of %d is: %d\n", n, fib.Fib(n))
	},
}

func init() {
	rootCmd.AddCommand(fibCmd)
}

// resolveFibInput picks the demo input: a positional argument wins,
// otherwise the configured fixture applies.
func resolveFibInput(cfg *config.Config, args []string) (int, error) {
	if len(args) == 0 {
		return cfg.Fib.N, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid input %q: not an integer", args[0])
	}
	return n, nil
}
