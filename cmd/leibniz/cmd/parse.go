package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/leibniz/pkg/leibniz"
)

var parseCmd = &cobra.Command{
	Use:   "parse <expression>",
	Short: "Parse an expression and dump its tree",
	Long: `Parse an expression without simplifying it and print its raw
constructor form and an indented tree, for debugging the parser and the
expression builders.

Examples:
  leibniz parse "x^2 + 1"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	e, err := leibniz.Parse(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("parsing failed")
	}
	if e == nil {
		return nil
	}

	fmt.Println("raw: ", leibniz.Format(e, leibniz.Raw))
	fmt.Println("tree:", leibniz.Format(e, leibniz.Tree))
	return nil
}
