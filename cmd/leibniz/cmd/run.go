package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/leibniz/pkg/leibniz"
)

var runEvalExpr string

var runCmd = &cobra.Command{
	Use:   "run [expression]",
	Short: "Evaluate a single expression and print the simplified result",
	Long: `Parse and simplify a single expression (or read one from -e), then
print it in plain notation.

Examples:
  leibniz run "x^2 + 2 x + 1"
  leibniz run -e "Sin'(x)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOnce,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "evaluate inline expression instead of reading the positional argument")
}

func runOnce(_ *cobra.Command, args []string) error {
	var input string
	switch {
	case runEvalExpr != "":
		input = runEvalExpr
	case len(args) == 1:
		input = args[0]
	default:
		return fmt.Errorf("either provide an expression argument or use -e")
	}

	e, err := leibniz.Parse(input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("parsing failed")
	}
	if e == nil {
		return nil
	}

	fmt.Println(leibniz.Format(leibniz.Simplify(e), leibniz.Plain))
	return nil
}
