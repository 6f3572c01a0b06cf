package functions

import "fmt"

// UnknownFunctionError describes a function name that is not in the
// registry (spec.md §7). No function in this package or in internal/parser
// returns it: Lookup reports an unknown name with a false result, and the
// parser reads an identifier that Lookup does not know as a variable.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %q", e.Name)
}
