// ABOUTME: MCP tool definitions and handlers
// ABOUTME: Read and export operations over the stored track collection

package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harper/trackrec/internal/export"
	"github.com/harper/trackrec/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	s.registerListTracksTool()
	s.registerGetTrackTool()
	s.registerExportTrackTool()
}

// TrackSummaryOutput describes one stored track without its samples.
type TrackSummaryOutput struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	StartedAt       time.Time  `json:"started_at"`
	EndedAt         *time.Time `json:"ended_at,omitempty"`
	TotalDistanceKm float64    `json:"total_distance_km"`
	AverageSpeedKmh float64    `json:"average_speed_kmh"`
	PointCount      int        `json:"point_count"`
}

// ListTracksOutput defines output for the list_tracks tool.
type ListTracksOutput struct {
	Tracks []TrackSummaryOutput `json:"tracks"`
	Count  int                  `json:"count"`
}

// GetTrackInput defines input for the get_track tool.
type GetTrackInput struct {
	ID string `json:"id"`
}

// GetTrackOutput defines output for the get_track tool.
type GetTrackOutput struct {
	TrackSummaryOutput
	Samples []models.Sample `json:"samples"`
}

// ExportTrackInput defines input for the export_track tool.
type ExportTrackInput struct {
	ID     string `json:"id"`
	Format string `json:"format"`
}

// ExportTrackOutput defines output for the export_track tool.
type ExportTrackOutput struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Content  string `json:"content"`
}

func summarize(track *models.Track) TrackSummaryOutput {
	return TrackSummaryOutput{
		ID:              track.ID.String(),
		Name:            track.Name,
		StartedAt:       track.StartedAt,
		EndedAt:         track.EndedAt,
		TotalDistanceKm: track.TotalDistanceKm,
		AverageSpeedKmh: track.AverageSpeedKmh,
		PointCount:      track.PointCount(),
	}
}

func (s *Server) registerListTracksTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_tracks",
		Description: "List all recorded tracks with their summary metrics, in the order they were recorded.",
		InputSchema: map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		},
	}, s.handleListTracks)
}

func (s *Server) handleListTracks(_ context.Context, req *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, ListTracksOutput, error) {
	tracks, err := s.repo.ListTracks()
	if err != nil {
		return nil, ListTracksOutput{}, fmt.Errorf("failed to list tracks: %w", err)
	}

	out := ListTracksOutput{
		Tracks: make([]TrackSummaryOutput, len(tracks)),
		Count:  len(tracks),
	}
	for i, track := range tracks {
		out.Tracks[i] = summarize(track)
	}
	return nil, out, nil
}

func (s *Server) registerGetTrackTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_track",
		Description: "Get one recorded track by id, including its full sample sequence.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Track UUID as shown by list_tracks",
				},
			},
			"required": []string{"id"},
		},
	}, s.handleGetTrack)
}

func (s *Server) handleGetTrack(_ context.Context, req *mcp.CallToolRequest, input GetTrackInput) (*mcp.CallToolResult, GetTrackOutput, error) {
	track, err := s.loadTrack(input.ID)
	if err != nil {
		return nil, GetTrackOutput{}, err
	}

	return nil, GetTrackOutput{
		TrackSummaryOutput: summarize(track),
		Samples:            track.Samples,
	}, nil
}

func (s *Server) registerExportTrackTool() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "export_track",
		Description: "Export a recorded track as GPX or GeoJSON and return the encoded document.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"id": map[string]interface{}{
					"type":        "string",
					"description": "Track UUID as shown by list_tracks",
				},
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Export format: gpx or geojson",
				},
			},
			"required": []string{"id", "format"},
		},
	}, s.handleExportTrack)
}

func (s *Server) handleExportTrack(_ context.Context, req *mcp.CallToolRequest, input ExportTrackInput) (*mcp.CallToolResult, ExportTrackOutput, error) {
	track, err := s.loadTrack(input.ID)
	if err != nil {
		return nil, ExportTrackOutput{}, err
	}

	now := time.Now().UTC()
	data, err := export.Encode(track, input.Format, now)
	if err != nil {
		return nil, ExportTrackOutput{}, fmt.Errorf("failed to export track: %w", err)
	}
	mimeType, err := export.MIMEType(input.Format)
	if err != nil {
		return nil, ExportTrackOutput{}, err
	}

	return nil, ExportTrackOutput{
		Filename: export.Filename(track.Name, input.Format, now),
		MIMEType: mimeType,
		Content:  string(data),
	}, nil
}

func (s *Server) loadTrack(idStr string) (*models.Track, error) {
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, fmt.Errorf("invalid track id %q: %w", idStr, err)
	}
	track, err := s.repo.GetTrack(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load track: %w", err)
	}
	return track, nil
}
