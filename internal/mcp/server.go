// Package mcp provides a Model Context Protocol server for habitmd.
// It exposes grid rendering and grid statistics as MCP tools so an agent can
// produce habit tables without going through files.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer creates an MCP server with all habitmd tools registered.
func NewServer(version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "habitmd",
		Version: version,
	}, nil)
	registerTools(server)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for pure, read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all habitmd tools to the server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_grid",
		Description: "Render habit completion dates as a markdown table for one year: a month-by-day grid with totals, or a week-by-weekday grid with weekly=true.",
		Annotations: readOnlyAnnotations(),
	}, handleRenderGrid)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "grid_stats",
		Description: "Count habit completions for one year per month, or per weekday with weekly=true, plus the grand total and the number of dates outside the year.",
		Annotations: readOnlyAnnotations(),
	}, handleGridStats)
}
