// Package main provides the entry point for the habitmd CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	habitmcp "github.com/gorewood/habitmd/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run habitmd as a Model Context Protocol (MCP) server over stdio.

This exposes table rendering as MCP tools that any MCP-capable agent
environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "habitmd": {
        "command": "habitmd",
        "args": ["serve"]
      }
    }
  }

Available tools: render_grid, grid_stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := habitmcp.NewServer(buildVersion())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
