package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2024, 12, 15, 23, 59, 59, 999, time.Local)
	got := BeginningOfDay(in)
	assert.Equal(t, time.Date(2024, 12, 15, 0, 0, 0, 0, time.Local), got)
}

func TestBeginningOfMonth(t *testing.T) {
	in := time.Date(2024, 12, 15, 10, 30, 0, 0, time.Local)
	got := BeginningOfMonth(in)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), got)
}

func TestSameMonth(t *testing.T) {
	d := time.Date(2024, 12, 31, 23, 0, 0, 0, time.Local)
	assert.True(t, SameMonth(d, 2024, time.December))
	assert.False(t, SameMonth(d, 2024, time.November))
	assert.False(t, SameMonth(d, 2023, time.December))
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 12, 15, 23, 0, 0, 0, time.Local)
	end := time.Date(2024, 12, 18, 1, 0, 0, 0, time.Local)
	assert.Equal(t, 3, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
	assert.Equal(t, -3, DaysBetween(end, start))
}
