package codec

import (
	"database/sql/driver"
	"strings"

	"github.com/pkg/errors"
)

const pathSeparator = "|"

// JoinStrings encodes values as a pipe-joined string. Values must not
// contain the separator; see CleanName.
func JoinStrings(values []string) string {
	return strings.Join(values, pathSeparator)
}

func SplitStrings(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, pathSeparator)
}

// CleanName replaces the list separator so a user supplied file name can be
// stored in a PathList without shifting positions.
func CleanName(name string) string {
	return strings.ReplaceAll(name, pathSeparator, "_")
}

// PathList holds attachment paths or original file names, positionally paired
// with a sibling PathList on the same row.
type PathList []string

func (l PathList) Value() (driver.Value, error) {
	return JoinStrings(l), nil
}

func (l *PathList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = PathList{}
	case string:
		*l = SplitStrings(v)
	case []byte:
		*l = SplitStrings(string(v))
	default:
		return errors.Errorf("scan path list: unsupported type %T", src)
	}
	return nil
}

func (PathList) GormDataType() string {
	return "string"
}
