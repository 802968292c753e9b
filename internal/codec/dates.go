package codec

import (
	"strings"
	"time"

	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
)

// DateLayout is dd/mm/yyyy hh:mm AM/PM.
const DateLayout = "02/01/2006 03:04 PM"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a DateLayout timestamp in loc. Any other shape is a
// validation error.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidDate
	}
	return t, nil
}
