package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/knowhow-tools/probe/internal/example"
)

var exampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Run the data-holder demo",
	Long: `Example constructs the demo data holder through its factory and
prints its summary and a derived calculation.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		e := example.Create()
		info := e.Info()
		result := e.Calculate(2.5)
		fmt.Printf("Info: %s\n", info)
		fmt.Printf("Result: %s\n", example.FormatResult(result))
	},
}

func init() {
	rootCmd.AddCommand(exampleCmd)
}
