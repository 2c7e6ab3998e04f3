package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/habitmd/internal/calendar"
)

const daysPerWeek = 7

// Labels are the seven weekday column headers, Monday first.
type Labels [daysPerWeek]string

var (
	// DefaultLabels are the English weekday abbreviations.
	DefaultLabels = Labels{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	// JapaneseLabels are the kanji weekday names, padded to line up with
	// the English headers in a plain-text view.
	JapaneseLabels = Labels{"月  ", "火  ", "水  ", "木  ", "金  ", "土  ", "日  "}
)

// LabelsFor returns JapaneseLabels when alt is set, DefaultLabels otherwise.
func LabelsFor(alt bool) Labels {
	if alt {
		return JapaneseLabels
	}
	return DefaultLabels
}

// Weekly is a Monday-start week by weekday grid for a single year.
type Weekly struct {
	year  int
	weeks []calendar.Date
	grid  *Grid
}

// BuildWeekly places every date of year on a grid with one row per week.
//
// Rows start at the Monday on or before January 1 and continue while the
// week's Monday is still in year. A date is placed by its ISO week: dates
// whose ISO year precedes their calendar year land in row 0, all others in
// row week-1, shifted down by one when January 1 is not a Monday. Placements
// past the last row are dropped.
func BuildWeekly(dates []calendar.Date, year int) *Weekly {
	first := calendar.New(year, time.January, 1)
	offset := 0
	if first.Weekday() != 0 {
		offset = 1
	}

	weeks := weekStarts(first, year)
	weekly := &Weekly{
		year:  year,
		weeks: weeks,
		grid:  New(len(weeks), daysPerWeek),
	}

	for _, date := range dates {
		if date.Year != year {
			continue
		}
		isoYear, isoWeek, isoWeekday := date.ISOWeek()
		row := isoWeek - 1 + offset
		if isoYear < date.Year {
			row = 0
		}
		weekly.grid.Mark(row, isoWeekday-1)
	}
	return weekly
}

// WeeklyMarkdown builds the weekly grid and renders it with marker, using
// the Japanese weekday labels when useAltLabels is set.
func WeeklyMarkdown(dates []calendar.Date, year int, marker string, useAltLabels bool) string {
	return BuildWeekly(dates, year).Markdown(marker, LabelsFor(useAltLabels))
}

// weekStarts lists the Monday of every row, from the Monday on or before
// first until the first Monday that falls after year.
func weekStarts(first calendar.Date, year int) []calendar.Date {
	var weeks []calendar.Date
	for current := calendar.MondayOnOrBefore(first); current.Year <= year; current = current.AddDays(daysPerWeek) {
		weeks = append(weeks, current)
	}
	return weeks
}

// Year returns the year the grid was built for.
func (w *Weekly) Year() int { return w.year }

// Weeks returns the Monday that starts each row, in row order.
func (w *Weekly) Weeks() []calendar.Date {
	weeks := make([]calendar.Date, len(w.weeks))
	copy(weeks, w.weeks)
	return weeks
}

// Marked reports whether the cell at row and weekday column (Monday = 0)
// is marked.
func (w *Weekly) Marked(row, weekday int) bool {
	return w.grid.Marked(row, weekday)
}

// WeekdayTotals returns the number of marked cells per weekday, Monday first.
func (w *Weekly) WeekdayTotals() [daysPerWeek]int {
	var totals [daysPerWeek]int
	for col := range daysPerWeek {
		totals[col] = w.grid.ColumnCount(col)
	}
	return totals
}

// Total returns the number of marked cells in the grid.
func (w *Weekly) Total() int {
	return w.grid.Count()
}

// Markdown renders the grid as a markdown table with the given headers.
func (w *Weekly) Markdown(marker string, labels Labels) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "| %d | %s |\n", w.year, strings.Join(labels[:], " | "))
	writeSeparator(&builder, daysPerWeek+1)

	for row, start := range w.weeks {
		fmt.Fprintf(&builder, "| %s |", start.Label())
		w.grid.writeCells(&builder, row, marker)
		builder.WriteString("\n")
	}
	return builder.String()
}
