// Package server exposes the scaffolding engine over the Model Context
// Protocol. This is the external transport boundary: it parses tool
// arguments, calls the engine, and renders the InitResult as text.
package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/praxisdev/praxis/scaffold"
	"github.com/praxisdev/praxis/scaffold/placeholder"
	"github.com/praxisdev/praxis/scaffold/stack"
	"github.com/praxisdev/praxis/version"
)

// MCPServer exposes praxis operations as MCP tools over stdio.
type MCPServer struct {
	server *server.MCPServer
}

// NewMCPServer creates the praxis MCP server and registers its tools.
func NewMCPServer() *MCPServer {
	s := &MCPServer{}
	s.server = server.NewMCPServer(
		"praxis",
		version.Get().Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// registerTools registers the init and detect tools.
func (s *MCPServer) registerTools() {
	initTool := mcp.NewTool("praxis_init",
		mcp.WithDescription("Scaffold the praxis reasoning protocol into a project"),
		mcp.WithString("project_root",
			mcp.Required(),
			mcp.Description("Absolute or relative path to the project root"),
		),
		mcp.WithString("target",
			mcp.Description("Platform selector: a platform id, a comma-separated list, or \"all\" (default)"),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Report intended writes without mutating the filesystem (default: false)"),
		),
		mcp.WithBoolean("overwrite",
			mcp.Description("Replace existing destination files (default: false)"),
		),
	)
	s.server.AddTool(initTool, s.handleInit)

	detectTool := mcp.NewTool("praxis_detect",
		mcp.WithDescription("Detect the technology stacks of a project"),
		mcp.WithString("project_root",
			mcp.Required(),
			mcp.Description("Absolute or relative path to the project root"),
		),
	)
	s.server.AddTool(detectTool, s.handleDetect)
}

// handleInit handles praxis_init tool calls
func (s *MCPServer) handleInit(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectRoot, err := request.RequireString("project_root")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	target := request.GetString("target", scaffold.TargetAll)

	result, err := scaffold.Init(projectRoot, scaffold.ParseTarget(target), nil, scaffold.Options{
		DryRun:    request.GetBool("dry_run", false),
		Overwrite: request.GetBool("overwrite", false),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("init failed: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Initialized praxis in %s (target: %s, dry run: %t, overwrite: %t)\n\n",
		result.ProjectPath, result.Target, result.DryRun, result.Overwrite)
	b.WriteString(placeholder.RenderTable(result.Stacks))
	b.WriteString("\n")
	b.WriteString(strings.Join(result.Results, "\n"))
	return mcp.NewToolResultText(b.String()), nil
}

// handleDetect handles praxis_detect tool calls
func (s *MCPServer) handleDetect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectRoot, err := request.RequireString("project_root")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	stacks := stack.Detect(projectRoot)
	return mcp.NewToolResultText(placeholder.RenderTable(stacks)), nil
}

// ServeStdio runs the MCP server on stdin/stdout until the client
// disconnects.
func (s *MCPServer) ServeStdio() error {
	return server.ServeStdio(s.server)
}
