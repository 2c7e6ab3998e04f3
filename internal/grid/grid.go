// Package grid lays habit dates out on fixed-size calendar grids and renders
// them as GitHub-flavored markdown tables.
//
// Two layouts are provided:
//
//   - Monthly: 31 day rows by 12 month columns, with a totals row.
//   - Weekly: one row per Monday-start week of the year, 7 weekday columns.
//
// Both builders are pure. Dates outside the requested year are skipped, and a
// built grid never changes size after construction.
package grid

import (
	"strings"

	"github.com/gorewood/habitmd/internal/calendar"
)

// OutsideYear counts the dates the builders skip for year.
func OutsideYear(dates []calendar.Date, year int) int {
	count := 0
	for _, d := range dates {
		if d.Year != year {
			count++
		}
	}
	return count
}

// Grid is a fixed rows-by-columns matrix of empty or marked cells.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// New creates a grid with every cell empty.
func New(rows, cols int) *Grid {
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Mark marks the cell at (row, col). Coordinates outside the grid are
// ignored and reported as false.
func (g *Grid) Mark(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	g.cells[row*g.cols+col] = true
	return true
}

// Marked reports whether the cell at (row, col) is marked.
func (g *Grid) Marked(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row*g.cols+col]
}

// ColumnCount returns the number of marked cells in col.
func (g *Grid) ColumnCount(col int) int {
	count := 0
	for row := range g.rows {
		if g.Marked(row, col) {
			count++
		}
	}
	return count
}

// Count returns the number of marked cells in the whole grid.
func (g *Grid) Count() int {
	count := 0
	for _, marked := range g.cells {
		if marked {
			count++
		}
	}
	return count
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// writeCells appends the cells of one row, each followed by a pipe.
func (g *Grid) writeCells(builder *strings.Builder, row int, marker string) {
	for col := range g.cols {
		builder.WriteString(cell(g.Marked(row, col), marker))
		builder.WriteString("|")
	}
}

// cell returns the padded content of a single table cell.
func cell(marked bool, marker string) string {
	if marked {
		return " " + marker + " "
	}
	return "   "
}

// writeSeparator writes the centered alignment row for n columns.
func writeSeparator(builder *strings.Builder, columns int) {
	builder.WriteString("|")
	builder.WriteString(strings.Repeat(":---:|", columns))
	builder.WriteString("\n")
}
