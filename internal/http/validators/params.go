package validators

import (
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
)

// ParseID reads a positive integer id from a path or query value.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.ErrInvalidID
	}
	return uint(id), nil
}

// DecodeField decodes the JSON carried in one multipart form value.
func DecodeField(raw string, v any) error {
	if strings.TrimSpace(raw) == "" {
		return apperrors.ErrInvalidPayload
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(raw, v); err != nil {
		return apperrors.ErrInvalidPayload
	}
	return nil
}
