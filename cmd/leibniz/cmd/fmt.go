package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/leibniz/pkg/leibniz"
)

var fmtStyle string

var fmtCmd = &cobra.Command{
	Use:   "fmt <expression>",
	Short: "Reformat an expression in another style",
	Long: `Parse and simplify an expression, then render it in the requested
style: plain (default), tex, python, raw or tree.

Examples:
  leibniz fmt "x / (y + 1)"
  leibniz fmt --style tex "1 / Cos(x)"`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().StringVar(&fmtStyle, "style", "plain", "output style: plain, tex, python, raw or tree")
}

func runFmt(_ *cobra.Command, args []string) error {
	style, err := parseStyle(fmtStyle)
	if err != nil {
		return err
	}

	e, err := leibniz.Parse(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("parsing failed")
	}
	if e == nil {
		return nil
	}

	fmt.Println(leibniz.Format(leibniz.Simplify(e), style))
	return nil
}

func parseStyle(name string) (leibniz.Style, error) {
	switch strings.ToLower(name) {
	case "plain":
		return leibniz.Plain, nil
	case "tex":
		return leibniz.Tex, nil
	case "python":
		return leibniz.Python, nil
	case "raw":
		return leibniz.Raw, nil
	case "tree":
		return leibniz.Tree, nil
	default:
		return leibniz.Plain, fmt.Errorf("unknown style %q (use plain, tex, python, raw or tree)", name)
	}
}
