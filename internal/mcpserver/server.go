// Package mcpserver exposes the color engine as MCP tools over stdio.
//
// The server speaks the Model Context Protocol on stdin/stdout, so an
// MCP-capable agent can generate palettes, interpolate colors, build
// lightness ramps, analyze palettes and name colors without shelling
// out to the CLI. Tool results are JSON documents wrapped in text
// content. There is no network listener.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"

	"themeweaver/pkg/logging"
)

// Server hosts the engine tools on a stdio MCP server.
type Server struct {
	mcp *server.MCPServer
}

// New creates the stdio server and registers all engine tools.
func New(version string) *Server {
	if version == "" {
		version = "dev"
	}

	mcpServer := server.NewMCPServer(
		"themeweaver",
		version,
		server.WithToolCapabilities(true),
	)

	tools := NewEngineTools()
	mcpServer.AddTools(tools.ServerTools()...)

	return &Server{mcp: mcpServer}
}

// Start serves MCP over stdin/stdout until the client disconnects.
// Logging must be routed to stderr before calling this, stdout belongs
// to the protocol.
func (s *Server) Start() error {
	logging.Info("MCPServer", "Serving engine tools over stdio")
	return server.ServeStdio(s.mcp)
}
