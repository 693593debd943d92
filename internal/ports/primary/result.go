// Package primary defines the primary ports (driving side) of printadmin:
// the services the CLI calls and the envelopes they return.
package primary

// Result is the envelope every pipeline operation returns. Failures never
// escape as Go errors; they are reported through Success=false and Error.
type Result[T any] struct {
	Success bool
	Data    *T
	Error   string            // single-line, user-facing
	Errors  map[string]string // per-field validation messages, when known
	Message string            // success message
}

// Ok builds a successful envelope.
func Ok[T any](data *T, message string) *Result[T] {
	return &Result[T]{Success: true, Data: data, Message: message}
}

// Fail builds a failed envelope.
func Fail[T any](msg string) *Result[T] {
	return &Result[T]{Success: false, Error: msg}
}
