package codec

import (
	"database/sql/driver"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const idSeparator = ","

// JoinIDs encodes ids as a comma-joined string. An empty list encodes to "".
func JoinIDs(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, idSeparator)
}

// SplitIDs decodes a comma-joined string. An empty string decodes to an empty list.
func SplitIDs(s string) ([]uint, error) {
	if s == "" {
		return []uint{}, nil
	}

	parts := strings.Split(s, idSeparator)
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "decode id list %q", s)
		}
		ids = append(ids, uint(n))
	}

	return ids, nil
}

// IDList is a set of user ids persisted as a comma-joined column.
type IDList []uint

func (l IDList) Contains(id uint) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Add appends id without checking membership.
func (l IDList) Add(id uint) IDList {
	return append(l, id)
}

// Remove drops every occurrence of id. Removing a non-member is a no-op.
func (l IDList) Remove(id uint) IDList {
	out := make(IDList, 0, len(l))
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Toggle removes id when present and adds it otherwise. It reports whether
// id is a member afterwards.
func (l IDList) Toggle(id uint) (IDList, bool) {
	if l.Contains(id) {
		return l.Remove(id), false
	}
	return l.Add(id), true
}

func (l IDList) String() string {
	return JoinIDs(l)
}

func (l IDList) Value() (driver.Value, error) {
	return JoinIDs(l), nil
}

func (l *IDList) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		raw = ""
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return errors.Errorf("scan id list: unsupported type %T", src)
	}

	ids, err := SplitIDs(raw)
	if err != nil {
		return err
	}
	*l = ids
	return nil
}

func (IDList) GormDataType() string {
	return "string"
}
