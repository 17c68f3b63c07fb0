// ABOUTME: MCP resource definitions
// ABOUTME: Provides read-only views of the track collection for AI agents

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		Name:        "trackrec://tracks",
		Description: "All recorded tracks with their summary metrics",
		URI:         "trackrec://tracks",
		MIMEType:    "application/json",
	}, s.handleTracksResource)
}

func (s *Server) handleTracksResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	tracks, err := s.repo.ListTracks()
	if err != nil {
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}

	summaries := make([]TrackSummaryOutput, len(tracks))
	for i, track := range tracks {
		summaries[i] = summarize(track)
	}

	output := ListTracksOutput{
		Tracks: summaries,
		Count:  len(summaries),
	}

	jsonBytes, _ := json.MarshalIndent(output, "", "  ") //nolint:errchkjson // output is always serializable

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      "trackrec://tracks",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		},
	}, nil
}
