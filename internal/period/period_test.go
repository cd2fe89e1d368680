package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmwaniki/pesa/internal/period"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestKeyRoundTrip(t *testing.T) {
	assert.Equal(t, "2024-03", period.Key(date(2024, time.March, 17)))

	parsed, err := period.ParseKey("2024-03")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 1), parsed)

	_, err = period.ParseKey("March 2024")
	assert.Error(t, err)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"SameMonth", date(2024, time.January, 1), date(2024, time.January, 31), 0},
		{"Adjacent", date(2024, time.January, 15), date(2024, time.February, 1), 1},
		{"AcrossYear", date(2023, time.November, 1), date(2024, time.February, 1), 3},
		{"Backwards", date(2024, time.April, 1), date(2024, time.January, 1), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, period.MonthsBetween(tt.a, tt.b))
		})
	}
}

func TestSameMonth(t *testing.T) {
	assert.True(t, period.SameMonth(date(2024, time.March, 1), date(2024, time.March, 31)))
	assert.False(t, period.SameMonth(date(2024, time.March, 1), date(2023, time.March, 1)))
}

func TestClampDay(t *testing.T) {
	ym := date(2024, time.February, 1)

	// Days past 28 are capped so every month has the occurrence.
	assert.Equal(t, date(2024, time.February, 28), period.ClampDay(ym, 31))
	assert.Equal(t, date(2024, time.February, 15), period.ClampDay(ym, 15))
	assert.Equal(t, date(2024, time.February, 1), period.ClampDay(ym, 0))
}

func TestInWindow(t *testing.T) {
	start := date(2024, time.January, 5)

	tests := []struct {
		name string
		ym   time.Time
		end  time.Time
		want bool
	}{
		{"BeforeStart", date(2023, time.December, 1), time.Time{}, false},
		{"StartMonth", date(2024, time.January, 1), time.Time{}, true},
		{"OpenEnded", date(2030, time.June, 1), time.Time{}, true},
		{"BeforeEnd", date(2024, time.March, 1), date(2024, time.April, 30), true},
		{"EndMonth", date(2024, time.April, 1), date(2024, time.April, 30), true},
		{"AfterEnd", date(2024, time.May, 1), date(2024, time.April, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, period.InWindow(tt.ym, start, tt.end))
		})
	}
}
