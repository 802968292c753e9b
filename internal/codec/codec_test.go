package codec

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "digiwork-hub.com/digiwork-hub/internal/errors"
)

func TestIDListRoundTrip(t *testing.T) {
	cases := [][]uint{
		{},
		{0},
		{7},
		{1, 11, 111},
		{3, 3, 2},
		{4294967295, 1},
	}

	for _, ids := range cases {
		decoded, err := SplitIDs(JoinIDs(ids))
		require.NoError(t, err)
		assert.Equal(t, ids, decoded)
	}
}

func TestSplitIDsCanonical(t *testing.T) {
	for _, s := range []string{"", "1", "2,3", "10,2,33"} {
		ids, err := SplitIDs(s)
		require.NoError(t, err)
		assert.Equal(t, s, JoinIDs(ids))
	}
}

func TestSplitIDsRejectsMalformed(t *testing.T) {
	for _, s := range []string{",", "1,,2", "a", "1,-2", "1,"} {
		_, err := SplitIDs(s)
		assert.Error(t, err, s)
	}

	_, err := SplitIDs("1,x")
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
	assert.Contains(t, err.Error(), `decode id list "1,x"`)
}

func TestListScanRejectsUnsupportedTypes(t *testing.T) {
	var ids IDList
	assert.ErrorContains(t, ids.Scan(42), "scan id list: unsupported type int")
	var paths PathList
	assert.ErrorContains(t, paths.Scan(3.5), "scan path list: unsupported type float64")
}

func TestIDListToggle(t *testing.T) {
	likes := IDList{}

	likes, present := likes.Toggle(5)
	assert.True(t, present)
	assert.Equal(t, IDList{5}, likes)

	likes, present = likes.Toggle(5)
	assert.False(t, present)
	assert.Empty(t, likes)
}

func TestIDListRemoveIsIdempotent(t *testing.T) {
	l := IDList{1, 2}
	assert.Equal(t, IDList{1, 2}, l.Remove(9))
	assert.Equal(t, IDList{2}, l.Remove(1).Remove(1))
}

func TestIDListMembershipIsExact(t *testing.T) {
	l := IDList{11, 21}
	assert.False(t, l.Contains(1))
	assert.True(t, l.Contains(21))
}

func TestIDListScanner(t *testing.T) {
	var l IDList
	require.NoError(t, l.Scan("2,3"))
	assert.Equal(t, IDList{2, 3}, l)

	require.NoError(t, l.Scan([]byte("")))
	assert.Empty(t, l)

	v, err := IDList{4, 5}.Value()
	require.NoError(t, err)
	assert.Equal(t, "4,5", v)
}

func TestPathList(t *testing.T) {
	paths := PathList{"attachments/a.png", "attachments/b.pdf"}
	v, err := paths.Value()
	require.NoError(t, err)
	assert.Equal(t, "attachments/a.png|attachments/b.pdf", v)

	var decoded PathList
	require.NoError(t, decoded.Scan(v))
	assert.Equal(t, paths, decoded)

	assert.Equal(t, "a_b.txt", CleanName("a|b.txt"))
	assert.Empty(t, SplitStrings(""))
}

func TestDates(t *testing.T) {
	loc := time.UTC
	parsed, err := ParseDate("05/03/2030 02:30 PM", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, time.March, 5, 14, 30, 0, 0, loc), parsed)
	assert.Equal(t, "05/03/2030 02:30 PM", FormatDate(parsed))

	for _, bad := range []string{"2030-03-05", "05/03/2030 14:30", "", "31/02/2030 01:00 AM"} {
		_, err := ParseDate(bad, loc)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDate, bad)
	}
}
