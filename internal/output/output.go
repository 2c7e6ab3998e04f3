package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer handles formatted output to a writer.
// It supports both JSON and human-readable output modes.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles *Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
}

// NewPrinter creates a new Printer.
// If jsonMode is true, output will be JSON formatted.
// If isTTY is true, colors will be enabled for human output.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	styles := plainStyles()
	if isTTY {
		styles = &Styles{
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true), // Red
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),           // Green
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),           // Yellow
			Bold:    lipgloss.NewStyle().Bold(true),
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")), // Blue
			Muted:   lipgloss.NewStyle().Faint(true),
			Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
			Value:   lipgloss.NewStyle(),
		}
	}

	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: styles,
	}
}

// plainStyles returns styles that render text unchanged.
func plainStyles() *Styles {
	return &Styles{
		Error:   lipgloss.NewStyle(),
		Success: lipgloss.NewStyle(),
		Warning: lipgloss.NewStyle(),
		Bold:    lipgloss.NewStyle(),
		Title:   lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
		Key:     lipgloss.NewStyle(),
		Value:   lipgloss.NewStyle(),
	}
}

// WithStderr sets a separate writer for errors, warnings and hints in human
// mode. In JSON mode, errors still go to the main writer.
// Returns the printer for chaining.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY returns true if the printer output is a TTY.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Success outputs a success result.
// For JSON mode, outputs the data as JSON.
// For human mode, prints the "message" key or every key/value pair.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.writeJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}

	for key, val := range data {
		mustWrite(fmt.Fprintf(p.w, "%s: %v\n", p.styles.Bold.Render(key), val))
	}
	return nil
}

// Error outputs an error.
// For JSON mode, outputs {"error": "...", "code": N} to the main writer.
// For human mode, outputs a styled error message to the error writer.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{
			Code:    ExitUserError,
			Message: err.Error(),
		}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}

	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn outputs a warning message.
// For JSON mode, outputs {"warning": "..."}; otherwise a styled line on the
// error writer.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.writeJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Stderr writes a status hint to the error writer. No-op in JSON mode.
func (p *Printer) Stderr(format string, args ...any) {
	if p.json {
		return
	}
	mustWrite(fmt.Fprintf(p.errW, format, args...))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON encodes any data as indented JSON and writes it.
func (p *Printer) WriteJSON(data any) error {
	return p.writeJSON(data)
}

func (p *Printer) writeJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns JSON-formatted error bytes.
// Format: {"error": "message", "code": N}
func ErrorJSON(message string, code int) []byte {
	data := map[string]any{
		"error": message,
		"code":  code,
	}
	result, _ := json.Marshal(data)
	return result
}

// mustWrite panics if a write operation fails.
// Writes go to stdout, stderr or buffers, which should never fail.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// Table renders a plain aligned table with bold headers.
// Column widths follow the display width of the widest cell.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := calcColumnWidths(headers, rows)
	p.printTableRow(headers, widths, p.styles.Bold)
	for _, row := range rows {
		p.printTableRow(row, widths, p.styles.Value)
	}
}

// calcColumnWidths computes the max display width for each column.
func calcColumnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	return widths
}

// printTableRow renders a single row, ignoring cells beyond the header count.
func (p *Printer) printTableRow(row []string, widths []int, style lipgloss.Style) {
	for i, cell := range row {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			mustWrite(fmt.Fprint(p.w, "  "))
		}
		mustWrite(fmt.Fprint(p.w, style.Render(padRight(cell, widths[i]))))
	}
	mustWrite(fmt.Fprintln(p.w))
}

// Section renders a title with an underline, preceded by a blank line.
func (p *Printer) Section(title string) {
	mustWrite(fmt.Fprintln(p.w))
	mustWrite(fmt.Fprintln(p.w, p.styles.Title.Render(title)))
	underline := strings.Repeat("─", lipgloss.Width(title))
	mustWrite(fmt.Fprintln(p.w, p.styles.Muted.Render(underline)))
}

// KeyValue renders a "Key: Value" line with styles applied.
func (p *Printer) KeyValue(key string, value string) {
	styledKey := p.styles.Key.Render(key + ":")
	styledValue := p.styles.Value.Render(value)
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", styledKey, styledValue))
}

// padRight pads s with spaces up to the target display width.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
