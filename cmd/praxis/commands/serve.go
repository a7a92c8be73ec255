package commands

import (
	"github.com/spf13/cobra"

	"github.com/praxisdev/praxis/errors"
	"github.com/praxisdev/praxis/logger"
	"github.com/praxisdev/praxis/server"
)

// ServeCmd represents the serve command
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose praxis as MCP tools over stdio",
	Long: `Expose praxis as MCP tools over stdio.

Starts a Model Context Protocol server on stdin/stdout offering the
praxis_init and praxis_detect tools, so an assistant can scaffold projects
itself. Logging goes to stderr to keep the transport clean.

Example MCP client configuration:
  { "command": "praxis", "args": ["serve"] }`,
	RunE: runServeCommand,
}

func runServeCommand(cmd *cobra.Command, args []string) error {
	logger.Infow("starting MCP server", "transport", "stdio")

	s := server.NewMCPServer()
	if err := s.ServeStdio(); err != nil {
		return errors.Wrap(err, "MCP server terminated")
	}
	return nil
}
