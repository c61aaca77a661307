package ptr

func Of[T any](v T) *T {
	return &v
}

// Deref returns the zero value for nil pointers.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NonEmpty returns nil for the empty string.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
