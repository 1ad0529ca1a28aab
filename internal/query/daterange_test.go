package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2026, time.March, 14, 15, 30, 0, 0, time.Local)

func TestResolveTimeRangeToday(t *testing.T) {
	tr := ResolveTimeRange("today", "", "", anchor)
	require.NotNil(t, tr.From)
	require.NotNil(t, tr.To)
	assert.Equal(t, time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local), *tr.From)
	assert.Equal(t, time.Date(2026, time.March, 14, 23, 59, 59, 999_000_000, time.Local), *tr.To)
}

func TestResolveTimeRangeThisMonth(t *testing.T) {
	tr := ResolveTimeRange("thisMonth", "", "", anchor)
	require.NotNil(t, tr.From)
	require.NotNil(t, tr.To)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), *tr.From)
	assert.Equal(t, time.Date(2026, time.March, 31, 23, 59, 59, 999_000_000, time.Local), *tr.To)
}

func TestResolveTimeRangeThisYear(t *testing.T) {
	tr := ResolveTimeRange("thisYear", "", "", anchor)
	require.NotNil(t, tr.From)
	require.NotNil(t, tr.To)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local), *tr.From)
	assert.Equal(t, time.Date(2026, time.December, 31, 23, 59, 59, 999_000_000, time.Local), *tr.To)
}

func TestResolveTimeRangeExplicitDates(t *testing.T) {
	tr := ResolveTimeRange("", "2026-03-01", "2026-03-10", anchor)
	require.NotNil(t, tr.From)
	require.NotNil(t, tr.To)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), *tr.From)
	// toDate covers its whole day
	assert.Equal(t, time.Date(2026, time.March, 10, 23, 59, 59, 999_000_000, time.Local), *tr.To)
}

func TestResolveTimeRangeIntersection(t *testing.T) {
	// Keyword window [Mar 1, Mar 31] narrowed by explicit bounds
	tr := ResolveTimeRange("thisMonth", "2026-03-10", "2026-03-20", anchor)
	require.NotNil(t, tr.From)
	require.NotNil(t, tr.To)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local), *tr.From)
	assert.Equal(t, time.Date(2026, time.March, 20, 23, 59, 59, 999_000_000, time.Local), *tr.To)
}

func TestResolveTimeRangeExplicitOutsideKeywordWindow(t *testing.T) {
	// A fromDate before the keyword window does not widen it
	tr := ResolveTimeRange("thisMonth", "2026-02-01", "", anchor)
	require.NotNil(t, tr.From)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.Local), *tr.From)
}

func TestResolveTimeRangeJunkDropped(t *testing.T) {
	tr := ResolveTimeRange("lastCentury", "not-a-date", "2026-13-45", anchor)
	assert.True(t, tr.IsZero())
}

func TestResolveTimeRangeHalfOpen(t *testing.T) {
	tr := ResolveTimeRange("", "2026-03-05", "", anchor)
	require.NotNil(t, tr.From)
	assert.Nil(t, tr.To)
}
