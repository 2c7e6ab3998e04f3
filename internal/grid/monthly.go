package grid

import (
	"fmt"
	"strings"
	"time"

	"github.com/gorewood/habitmd/internal/calendar"
)

const (
	daysPerMonthRow = 31
	monthsPerYear   = 12
)

// MonthAbbrevs are the monthly grid's column headers, January first.
var MonthAbbrevs = [monthsPerYear]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Monthly is a day-of-month by month grid for a single year.
type Monthly struct {
	year int
	grid *Grid
}

// BuildMonthly places every date of year on a 31x12 grid.
// Rows for days a month does not have simply stay empty.
func BuildMonthly(dates []calendar.Date, year int) *Monthly {
	monthly := &Monthly{
		year: year,
		grid: New(daysPerMonthRow, monthsPerYear),
	}
	for _, date := range dates {
		if date.Year != year {
			continue
		}
		monthly.grid.Mark(date.Day-1, int(date.Month)-1)
	}
	return monthly
}

// MonthlyMarkdown builds the monthly grid and renders it with marker.
func MonthlyMarkdown(dates []calendar.Date, year int, marker string) string {
	return BuildMonthly(dates, year).Markdown(marker)
}

// Year returns the year the grid was built for.
func (m *Monthly) Year() int { return m.year }

// Marked reports whether day (1-31) of month is marked.
func (m *Monthly) Marked(day int, month time.Month) bool {
	return m.grid.Marked(day-1, int(month)-1)
}

// Totals returns the number of marked days per month, January first.
func (m *Monthly) Totals() [monthsPerYear]int {
	var totals [monthsPerYear]int
	for col := range monthsPerYear {
		totals[col] = m.grid.ColumnCount(col)
	}
	return totals
}

// Total returns the number of marked cells across all months.
func (m *Monthly) Total() int {
	return m.grid.Count()
}

// Markdown renders the grid as a markdown table ending in a totals row.
func (m *Monthly) Markdown(marker string) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "| %d | %s |\n", m.year, strings.Join(MonthAbbrevs[:], " | "))
	writeSeparator(&builder, monthsPerYear+1)

	for row := range daysPerMonthRow {
		fmt.Fprintf(&builder, "| %d  |", row+1)
		m.grid.writeCells(&builder, row, marker)
		builder.WriteString("\n")
	}

	m.writeTotals(&builder)
	return builder.String()
}

// writeTotals writes the bolded grand total followed by each month's total.
func (m *Monthly) writeTotals(builder *strings.Builder) {
	fmt.Fprintf(builder, "| **Σ: %d**", m.Total())
	for _, total := range m.Totals() {
		fmt.Fprintf(builder, "| **%d** ", total)
	}
	builder.WriteString("|\n")
}
