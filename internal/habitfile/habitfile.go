// Package habitfile loads habit completion dates from YAML files.
//
// A habit file is a YAML sequence of dates:
//
//	- 2024-01-01
//	- 2024-01-02
//	- "2024-01-04"
//	- 2024-01-05T07:30:00Z
//
// Unquoted dates and timestamps use YAML's timestamp resolution; quoted
// strings are parsed with the same accepted layouts. Only the calendar date
// of a timestamp is kept. An empty document means no dates.
package habitfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/habitmd/internal/calendar"
)

var (
	// ErrNotFound is returned when the habit file does not exist.
	ErrNotFound = errors.New("habit file not found")

	// ErrUnreadable is returned when the file cannot be opened, read or
	// parsed as YAML.
	ErrUnreadable = errors.New("habit file unreadable")

	// ErrNotAList is returned when the document is not a YAML sequence.
	ErrNotAList = errors.New("habit file must contain a list of dates")

	// ErrMalformedDate is returned for an entry that is not a calendar date.
	ErrMalformedDate = errors.New("malformed date entry")
)

// layouts are tried in order for quoted entries.
var layouts = []string{
	"2006-01-02",
	"2006-1-2",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -07:00",
}

// Load reads the habit file at path.
func Load(path string) ([]calendar.Date, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	dates, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dates, nil
}

// Decode reads a YAML date list from r.
func Decode(r io.Reader) ([]calendar.Date, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}

	switch {
	case root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null":
		return nil, nil
	case root.Kind != yaml.SequenceNode:
		return nil, fmt.Errorf("%w (line %d)", ErrNotAList, root.Line)
	}

	dates := make([]calendar.Date, 0, len(root.Content))
	for _, item := range root.Content {
		d, err := decodeEntry(item)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, nil
}

// decodeEntry converts a single sequence item into a date.
func decodeEntry(node *yaml.Node) (calendar.Date, error) {
	if node.Kind != yaml.ScalarNode {
		return calendar.Date{}, fmt.Errorf("%w: line %d: expected a date, got a %s",
			ErrMalformedDate, node.Line, kindName(node.Kind))
	}

	if node.ShortTag() == "!!timestamp" {
		var ts time.Time
		if err := node.Decode(&ts); err == nil {
			return calendar.FromTime(ts), nil
		}
	}

	d, err := ParseDate(node.Value)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("%w: line %d: %q", ErrMalformedDate, node.Line, node.Value)
	}
	return d, nil
}

// ParseDate parses a date or timestamp string, keeping only its calendar date.
func ParseDate(value string) (calendar.Date, error) {
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return calendar.FromTime(ts), nil
		}
	}
	return calendar.Date{}, fmt.Errorf("%w: %q", ErrMalformedDate, value)
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.AliasNode:
		return "alias"
	default:
		return "value"
	}
}
