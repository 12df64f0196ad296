package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkingHours(t *testing.T) {
	hours, err := ParseWorkingHours("09:00:00", "17:30:00")
	require.NoError(t, err)
	assert.True(t, hours.Valid())

	date := time.Date(2026, 10, 16, 22, 15, 0, 0, time.UTC)
	start, end := hours.On(date)
	assert.Equal(t, time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 10, 16, 17, 30, 0, 0, time.UTC), end)
}

func TestParseWorkingHours_Malformed(t *testing.T) {
	for _, tc := range [][2]string{
		{"9h", "17:00:00"},
		{"09:00:00", "17:00"},
		{"", ""},
	} {
		_, err := ParseWorkingHours(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrParse, tc)
	}
}

func TestWorkingHours_Valid(t *testing.T) {
	inverted, err := ParseWorkingHours("17:00:00", "09:00:00")
	require.NoError(t, err)
	assert.False(t, inverted.Valid())

	empty, err := ParseWorkingHours("09:00:00", "09:00:00")
	require.NoError(t, err)
	assert.False(t, empty.Valid())
}

func TestWorkingHours_OnKeepsLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	hours, err := ParseWorkingHours("08:00:00", "12:00:00")
	require.NoError(t, err)

	start, _ := hours.On(time.Date(2026, 10, 19, 0, 0, 0, 0, loc))
	assert.Equal(t, loc, start.Location())
	assert.Equal(t, 8, start.Hour())
}

func TestDoctor_WorkingHours(t *testing.T) {
	d := Doctor{ID: 1, WorkingHoursStart: "08:00:00", WorkingHoursEnd: "12:00:00"}
	hours, err := d.WorkingHours()
	require.NoError(t, err)
	assert.Equal(t, 8, hours.Start.Hour())
	assert.Equal(t, 12, hours.End.Hour())
}
