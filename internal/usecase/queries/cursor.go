package queries

import (
	"encoding/base64"
	"strings"
	"time"

	"guesthouse-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200

	cursorPrefix = "b1."
	cursorLayout = "2006-01-02"
)

// EncodeAfterCursor names a booking by the list's sort key, its check-in
// date, followed by its id.
func EncodeAfterCursor(checkIn time.Time, id uuid.UUID) string {
	raw := cursorPrefix + checkIn.Format(cursorLayout) + "." + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor encoding")
	}
	body, ok := strings.CutPrefix(string(decoded), cursorPrefix)
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("unknown cursor version")
	}
	day, rawID, ok := strings.Cut(body, ".")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("cursor must be <date>.<uuid>")
	}
	checkIn, err := time.Parse(cursorLayout, day)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor date")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor id")
	}
	return checkIn, id, nil
}

func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
