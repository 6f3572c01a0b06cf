package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/leibniz/pkg/leibniz"
)

var (
	replPython bool
	replDebug  bool
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive CAS session",
	Long: `Start an interactive read-eval-print loop over standard input.

Enter an expression, an assignment ("x := 2 + 3"), an equation
("x + 1 = 2"), or one of the "$" commands: $debug, $session, $vars,
$python.

Examples:
  leibniz repl
  leibniz repl --python`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replPython, "python", false, "start with python-style output")
	replCmd.Flags().BoolVar(&replDebug, "debug", false, "start with debug mode on (stack traces on error)")
}

func runRepl(_ *cobra.Command, _ []string) error {
	var opts []leibniz.Option
	if replPython {
		opts = append(opts, leibniz.WithFormat(leibniz.Python))
	}
	if replDebug {
		opts = append(opts, leibniz.WithDebug(true))
	}

	engine := leibniz.New(os.Stdout, os.Stderr, opts...)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		engine.Eval(line)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return err
	}
	fmt.Fprintln(os.Stdout, "\nGoodbye!")
	return nil
}
