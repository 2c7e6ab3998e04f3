package export

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// tableMarkdown converts GitHub-flavored markdown tables. It holds no
// per-call state and is safe for concurrent use.
var tableMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// RenderHTML converts a markdown table into an HTML fragment.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := tableMarkdown.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("rendering html: %w", err)
	}
	return buf.String(), nil
}
