package bindery

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Fprint writes a human-readable listing of the table: every
// controller, its annotated methods with their middleware in flattened
// order, and its resource bindings with their action scope. Intended
// for startup diagnostics and debugging route setups.
func (t *Table) Fprint(w io.Writer) {
	header := color.New(color.FgCyan, color.Bold)
	method := color.New(color.FgGreen)
	scope := color.New(color.FgYellow)

	for _, name := range t.Controllers() {
		header.Fprintf(w, "%s\n", name)

		for _, m := range t.Methods(name) {
			method.Fprintf(w, "  %s", m)
			fmt.Fprintf(w, " -> %s\n", middlewareLabels(t.MethodMiddleware(name, m)))
		}

		for _, rb := range t.ResourceBindings(name) {
			scope.Fprintf(w, "  [%s]", rb.Actions.String())
			fmt.Fprintf(w, " -> %s\n", middlewareLabels(rb.Middleware))
		}
	}
}

// Print writes the table listing to stdout.
func (t *Table) Print() {
	t.Fprint(os.Stdout)
}

func middlewareLabels(group Group) string {
	if len(group) == 0 {
		return "(none)"
	}
	out := ""
	for i, m := range group {
		if i > 0 {
			out += ", "
		}
		out += m.Label()
	}
	return out
}
