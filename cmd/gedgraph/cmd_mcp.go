package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gedgraph/gedgraph/internal/graph"
	gedmcp "github.com/gedgraph/gedgraph/internal/mcp"
)

func mcpCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP (Model Context Protocol) server over stdio",
		Long: `Starts an MCP JSON-RPC 2.0 server that reads from stdin and writes to stdout.
All diagnostic logs go to stderr so that stdout remains exclusively MCP protocol traffic.

Tools exposed:
  list_people       — people in display order
  get_person        — one person with full fact detail
  search_people     — substring name search
  is_event_sourced  — provenance check against a source title prefix
  stats             — record counts for the open file

Pass --file to open a GEDCOM file at startup; without it, tool calls return
an error response until a file is available.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			m := graph.NewManager(logger)
			if file != "" {
				if err := m.Open(file); err != nil {
					return fmt.Errorf("mcp: opening %s: %w", file, err)
				}
			}

			srv := gedmcp.NewServer(m, logger)

			// Use a standard log.Logger pointing at stderr for the mcp-go error logger.
			errLogger := log.New(os.Stderr, "mcp: ", log.LstdFlags)

			logger.Info("mcp: gedgraph MCP server starting", "transport", "stdio", "file", file)

			return mcpserver.ServeStdio(
				srv.MCPServer(),
				mcpserver.WithErrorLogger(errLogger),
			)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "GEDCOM file to open at startup")
	return cmd
}
