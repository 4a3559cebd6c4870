package main

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

var weekdayHeaders = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

func PrintTable(w io.Writer, headers []string, rows [][]string, footers []string) {
	colWidths := make([]int, len(headers))
	for i, header := range headers {
		colWidths[i] = utf8.RuneCountInString(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if n := utf8.RuneCountInString(cell); n > colWidths[i] {
				colWidths[i] = n
			}
		}
	}

	// print header
	for i, header := range headers {
		fmt.Fprintf(w, "%-*s\t", colWidths[i], header)
	}
	fmt.Fprintln(w)

	// print rows
	for _, row := range rows {
		for i, cell := range row {
			fmt.Fprintf(w, "%-*s\t", colWidths[i], cell)
		}
		fmt.Fprintln(w)
	}

	if len(footers) == 0 {
		return
	}

	// print footer
	for i, footer := range footers {
		fmt.Fprintf(w, "%-*s\t", colWidths[i], footer)
	}
	fmt.Fprintln(w)
}

// PrintCalendar draws a month grid. Days with an entry get a marker after
// the number ("*" or the mood emoji), today is wrapped in brackets.
func PrintCalendar(w io.Writer, title string, grid []Week, marks map[int]string, today int) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Join(weekdayHeaders, "    "))

	for _, week := range grid {
		cells := make([]string, len(week))
		for i, day := range week {
			cells[i] = calendarCell(day, marks[day], day == today)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, ""), " "))
	}
}

func calendarCell(day int, mark string, isToday bool) string {
	if day == EmptyCell {
		return strings.Repeat(" ", 6)
	}

	num := fmt.Sprintf("%2d", day)
	if isToday {
		num = fmt.Sprintf("[%d]", day)
	}
	cell := num + mark

	// emoji take two columns
	width := utf8.RuneCountInString(num)
	if mark != "" {
		width += 2
	}
	if width < 6 {
		cell += strings.Repeat(" ", 6-width)
	}
	return cell
}

// dayMark is the calendar marker for an entry.
func dayMark(entry DayEntry) string {
	if !entry.HasData() {
		return ""
	}
	if entry.Mood.Valid() {
		return entry.Mood.Emoji()
	}
	return " *"
}

func FormatCreatedAt(millis int64) string {
	return time.UnixMilli(millis).Format("15:04")
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
