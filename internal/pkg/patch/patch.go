package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Optional applies a nullable field update: nil keeps current, a pointer to
// the zero value clears it, anything else replaces it.
func Optional[T comparable](update *T, current *T) *T {
	if update == nil {
		return current
	}
	var zero T
	if *update == zero {
		return nil
	}
	v := *update
	return &v
}
