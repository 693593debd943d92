package models

// Ptr returns a pointer to v. Payload builders use it to mark a field present.
func Ptr[T any](v T) *T {
	return &v
}
