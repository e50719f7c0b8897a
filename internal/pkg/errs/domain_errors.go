package errs

// Error kinds shared by the use case and handler layers.
var (
	// malformed or missing input; shown inline, never retried
	ErrValidation = New("validation error")
	// overlap detected at write time; the caller must pick new dates
	ErrConflict = New("conflict")
	// unknown room, booking, promo or maintenance window
	ErrNotFound = New("not found")
	// persistence layer unreachable; safe to retry once
	ErrUnavailable = New("service unavailable")

	ErrUnauthorized = New("unauthorized")
	ErrForbidden    = New("forbidden")
)

var kinds = []error{
	ErrValidation,
	ErrConflict,
	ErrNotFound,
	ErrUnavailable,
	ErrUnauthorized,
	ErrForbidden,
}

// KindOf returns the first error kind carried by err, or nil.
func KindOf(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if Is(err, k) {
			return k
		}
	}
	return nil
}
