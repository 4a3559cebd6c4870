package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatten(grid []Week) []int {
	var days []int
	for _, week := range grid {
		for _, day := range week {
			if day != EmptyCell {
				days = append(days, day)
			}
		}
	}
	return days
}

func TestCalendarGrid_CoversEveryDayInOrder(t *testing.T) {
	for year := 1899; year <= 2101; year++ {
		for _, month := range Months {
			grid := CalendarGrid(month, year)
			days := flatten(grid)

			want := DaysInMonth(month.Month(), year)
			require.Len(t, days, want, "%s %d", month, year)
			for i, day := range days {
				require.Equal(t, i+1, day, "%s %d", month, year)
			}
		}
	}
}

func TestCalendarGrid_FirstDayColumn(t *testing.T) {
	for year := 1990; year <= 2040; year++ {
		for _, month := range Months {
			grid := CalendarGrid(month, year)
			require.NotEmpty(t, grid)

			col := FirstColumn(month.Month(), year)
			assert.Equal(t, 1, grid[0][col], "%s %d", month, year)
			for i := 0; i < col; i++ {
				assert.Equal(t, EmptyCell, grid[0][i])
			}

			// no trailing blank week
			assert.NotEqual(t, Week{}, grid[len(grid)-1])
		}
	}
}

func TestCalendarGrid_Examples(t *testing.T) {
	tests := []struct {
		name     string
		month    MonthName
		year     int
		rows     int
		first    Week
		lastDay  int
		lastWeek Week
	}{
		{
			name:     "leap february",
			month:    February,
			year:     2024,
			rows:     5,
			first:    Week{0, 0, 0, 1, 2, 3, 4},
			lastDay:  29,
			lastWeek: Week{26, 27, 28, 29, 0, 0, 0},
		},
		{
			name:     "february starting on sunday",
			month:    February,
			year:     2026,
			rows:     5,
			first:    Week{0, 0, 0, 0, 0, 0, 1},
			lastDay:  28,
			lastWeek: Week{23, 24, 25, 26, 27, 28, 0},
		},
		{
			name:     "february filling four rows",
			month:    February,
			year:     2021,
			rows:     4,
			first:    Week{1, 2, 3, 4, 5, 6, 7},
			lastDay:  28,
			lastWeek: Week{22, 23, 24, 25, 26, 27, 28},
		},
		{
			name:     "six row month",
			month:    March,
			year:     2026,
			rows:     6,
			first:    Week{0, 0, 0, 0, 0, 0, 1},
			lastDay:  31,
			lastWeek: Week{30, 31, 0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := CalendarGrid(tt.month, tt.year)

			require.Len(t, grid, tt.rows)
			assert.Equal(t, tt.first, grid[0])
			assert.Equal(t, tt.lastWeek, grid[len(grid)-1])

			days := flatten(grid)
			assert.Equal(t, tt.lastDay, days[len(days)-1])
		})
	}
}

func TestCalendarGrid_LeapYears(t *testing.T) {
	tests := []struct {
		year int
		leap bool
	}{
		{2024, true},
		{2026, false},
		{2000, true},
		{1900, false},
		{2100, false},
		{2400, true},
	}

	for _, tt := range tests {
		days := flatten(CalendarGrid(February, tt.year))
		assert.Equal(t, tt.leap, contains(days, 29), "year %d", tt.year)
	}
}

func TestCalendarGrid_Deterministic(t *testing.T) {
	assert.Equal(t, CalendarGrid(October, 2026), CalendarGrid(October, 2026))
}

func TestCalendarGrid_UnknownMonthPanics(t *testing.T) {
	assert.Panics(t, func() { CalendarGrid("FEB", 2026) })
	assert.Panics(t, func() { CalendarGrid("", 2026) })
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(time.January, 2026))
	assert.Equal(t, 29, DaysInMonth(time.February, 2024))
	assert.Equal(t, 28, DaysInMonth(time.February, 2026))
	assert.Equal(t, 30, DaysInMonth(time.April, 2026))
	assert.Equal(t, 31, DaysInMonth(time.December, 2026))
}

func TestFirstColumn_SundayIsLast(t *testing.T) {
	// 2026-02-01 is a Sunday, 2026-06-01 a Monday
	assert.Equal(t, 6, FirstColumn(time.February, 2026))
	assert.Equal(t, 0, FirstColumn(time.June, 2026))
	assert.Equal(t, 3, FirstColumn(time.October, 2026))
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want MonthName
	}{
		{"february", February},
		{"February", February},
		{"FEB", February},
		{"feb", February},
		{" may ", May},
		{"SEP", September},
		{"december", December},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMonth(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "fe", "febr", "month", "13"} {
		_, err := ParseMonth(bad)
		assert.ErrorIs(t, err, ErrInvalidMonth, "input %q", bad)
	}
}

func TestMonthName_Helpers(t *testing.T) {
	assert.Equal(t, 0, January.Index())
	assert.Equal(t, 11, December.Index())
	assert.Equal(t, -1, MonthName("JAN").Index())

	assert.Equal(t, time.March, March.Month())
	assert.Equal(t, "March", March.Title())

	for i, month := range Months {
		assert.Equal(t, month, MonthFromTime(time.Month(i+1)))
	}
}

func TestValidateDateAndParseDay(t *testing.T) {
	assert.NoError(t, ValidateDate(February, 2024, 29))
	assert.ErrorIs(t, ValidateDate(February, 2026, 29), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate(April, 2026, 0), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("april", 2026, 31), ErrInvalidDate)
	assert.ErrorIs(t, ValidateDate("APR", 2026, 1), ErrInvalidMonth)

	day, err := ParseDay(October, 2026, "18")
	require.NoError(t, err)
	assert.Equal(t, 18, day)

	_, err = ParseDay(October, 2026, "x")
	assert.ErrorIs(t, err, ErrInvalidDate)
	_, err = ParseDay(October, 2026, "32")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-02-09", DateKey(2026, February, 9))
	assert.Equal(t, "2026-12-31", DateKey(2026, December, 31))
}

func contains(days []int, want int) bool {
	for _, day := range days {
		if day == want {
			return true
		}
	}
	return false
}
