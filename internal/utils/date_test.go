package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartNextDay(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	got := StartNextDay(time.Date(2026, 10, 31, 23, 59, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, loc), got)
}

func TestIsWeekend(t *testing.T) {
	// 2026-10-16 пятница
	friday := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsWeekend(friday))
	assert.True(t, IsWeekend(friday.AddDate(0, 0, 1)))
	assert.True(t, IsWeekend(friday.AddDate(0, 0, 2)))
	assert.False(t, IsWeekend(friday.AddDate(0, 0, 3)))
}
