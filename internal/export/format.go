package export

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output format for a rendered habit table.
type Format string

// Supported formats.
const (
	FormatMarkdown Format = "md"
	FormatHTML     Format = "html"
)

// ParseFormat validates a --format value.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(value)) {
	case FormatMarkdown, "markdown":
		return FormatMarkdown, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("--format must be 'md' or 'html', got %q", value)
	}
}

// DetermineFormat returns the format to use based on flags.
// An explicit --format wins; otherwise an .html or .htm output path selects
// HTML, and everything else is markdown.
func DetermineFormat(formatFlag, outFlag string) (Format, error) {
	if formatFlag != "" {
		return ParseFormat(formatFlag)
	}
	switch strings.ToLower(filepath.Ext(outFlag)) {
	case ".html", ".htm":
		return FormatHTML, nil
	default:
		return FormatMarkdown, nil
	}
}

// Render converts a markdown table into the requested format.
func Render(format Format, markdown string) (string, error) {
	if format == FormatHTML {
		return RenderHTML(markdown)
	}
	return markdown, nil
}
