// ABOUTME: MCP server initialization and configuration
// ABOUTME: Exposes stored tracks to AI agents over stdio

package mcp

import (
	"context"
	"fmt"

	"github.com/harper/trackrec/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with a track repository.
type Server struct {
	mcp  *mcp.Server
	repo storage.TrackRepository
}

// NewServer creates an MCP server with all capabilities.
func NewServer(repo storage.TrackRepository) (*Server, error) {
	if repo == nil {
		return nil, fmt.Errorf("track repository is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "trackrec",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcp:  mcpServer,
		repo: repo,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
