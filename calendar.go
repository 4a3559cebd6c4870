package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidDate  = errors.New("invalid date")
)

type MonthName string

const (
	January   MonthName = "january"
	February  MonthName = "february"
	March     MonthName = "march"
	April     MonthName = "april"
	May       MonthName = "may"
	June      MonthName = "june"
	July      MonthName = "july"
	August    MonthName = "august"
	September MonthName = "september"
	October   MonthName = "october"
	November  MonthName = "november"
	December  MonthName = "december"
)

var Months = []MonthName{
	January, February, March, April, May, June,
	July, August, September, October, November, December,
}

// EmptyCell marks grid cells outside the month.
const EmptyCell = 0

// Week is one row of the calendar, Monday first.
type Week [7]int

// Index returns the zero based position of the month, or -1 if unknown.
func (m MonthName) Index() int {
	for i, name := range Months {
		if m == name {
			return i
		}
	}
	return -1
}

func (m MonthName) Month() time.Month {
	return time.Month(m.Index() + 1)
}

func (m MonthName) Title() string {
	if m.Index() < 0 {
		return string(m)
	}
	return m.Month().String()
}

func MonthFromTime(m time.Month) MonthName {
	return Months[m-1]
}

// ParseMonth accepts full names and three letter abbreviations in any case.
func ParseMonth(s string) (MonthName, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) >= 3 {
		for _, name := range Months {
			if s == string(name) || s == string(name)[:3] {
				return name, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMonth, s)
}

// DaysInMonth uses day 0 of the following month, so leap years come for free.
func DaysInMonth(month time.Month, year int) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstColumn returns the Monday-first column of the 1st of the month.
func FirstColumn(month time.Month, year int) int {
	weekday := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	if weekday == time.Sunday {
		return 6
	}
	return int(weekday) - 1
}

// CalendarGrid lays out a month as full weeks. Passing a month name that is
// not one of Months panics; parse user input with ParseMonth first.
func CalendarGrid(name MonthName, year int) []Week {
	if name.Index() < 0 {
		panic(fmt.Sprintf("calendar: unknown month %q", string(name)))
	}
	month := name.Month()
	days := DaysInMonth(month, year)

	var grid []Week
	var week Week
	col := FirstColumn(month, year)

	for day := 1; day <= days; day++ {
		week[col] = day
		col++
		if col == len(week) {
			grid = append(grid, week)
			week = Week{}
			col = 0
		}
	}
	if col > 0 {
		grid = append(grid, week)
	}

	return grid
}

// ValidateDate checks that day exists in the given month.
func ValidateDate(name MonthName, year, day int) error {
	if name.Index() < 0 {
		return fmt.Errorf("%w: %q", ErrInvalidMonth, string(name))
	}
	if days := DaysInMonth(name.Month(), year); day < 1 || day > days {
		return fmt.Errorf("%w: %s %d has %d days, got %d", ErrInvalidDate, name.Title(), year, days, day)
	}
	return nil
}

// ParseDay parses a day-of-month argument and checks it against the month.
func ParseDay(name MonthName, year int, s string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidDate, s)
	}
	if err := ValidateDate(name, year, day); err != nil {
		return 0, err
	}
	return day, nil
}

// DateKey is the key of a day's task list, e.g. "2026-02-09".
func DateKey(year int, month MonthName, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month.Month()), day)
}

func yearKey(year int) string {
	return strconv.Itoa(year)
}
