// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/example/printadmin/internal/ports/primary"
)

// FailureError reports a failed pipeline envelope to the command layer so the
// process exits non-zero.
type FailureError struct {
	Message string
	Fields  map[string]string
}

func (e *FailureError) Error() string {
	if len(e.Fields) <= 1 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(e.Message)
	for _, k := range keys {
		fmt.Fprintf(&b, "\n  %s: %s", k, e.Fields[k])
	}
	return b.String()
}

// failure converts a failed envelope into an error.
func failure[T any](r *primary.Result[T]) error {
	return &FailureError{Message: r.Error, Fields: r.Errors}
}

func okMark() string {
	return color.New(color.FgGreen).Sprint("✓")
}

func warnMark() string {
	return color.New(color.FgYellow).Sprint("!")
}

func statusText(active bool, label string) string {
	if active {
		return color.New(color.FgGreen).Sprint(label)
	}
	return color.New(color.FgRed).Sprint(label)
}
