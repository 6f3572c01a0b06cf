// Package cmd wires the CAS into a Cobra CLI, grounded on the teacher's
// cmd/dwscript/cmd package: a package-level rootCmd, Version/GitCommit/
// BuildDate set by build flags, and an Execute entry point called from
// main.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "leibniz",
	Short: "A symbolic computer algebra system",
	Long: `leibniz is a small computer algebra system: it parses algebraic
expressions, simplifies them into canonical form, differentiates them
symbolically, evaluates them numerically, and formats them back out in
plain, tex, python, raw or tree notation.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
