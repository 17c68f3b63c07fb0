// ABOUTME: GeoJSON track encoder
// ABOUTME: One LineString feature with per-point timestamps in the properties

package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/trackrec/internal/models"
)

// FeatureCollection represents a GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature represents a GeoJSON Feature.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties"`
}

// Geometry represents a GeoJSON Geometry.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates LineCoordinates `json:"coordinates"`
}

// PointCoordinates represents [longitude, latitude]. GeoJSON uses
// longitude-first axis order.
type PointCoordinates [2]float64

// LineCoordinates represents [[lng, lat], ...] for a LineString.
type LineCoordinates []PointCoordinates

// ToLineFeatureCollection converts a track to a FeatureCollection holding
// exactly one LineString feature. Properties carry the track name, the
// export timestamp, the point count, and a parallel array of per-point
// ISO-8601 timestamps.
func ToLineFeatureCollection(track *models.Track, exportedAt time.Time) *FeatureCollection {
	coords := make(LineCoordinates, len(track.Samples))
	times := make([]string, len(track.Samples))
	for i, s := range track.Samples {
		coords[i] = PointCoordinates{s.Longitude, s.Latitude}
		times[i] = s.CapturedAt.UTC().Format(time.RFC3339)
	}

	return &FeatureCollection{
		Type: "FeatureCollection",
		Features: []Feature{
			{
				Type: "Feature",
				Geometry: Geometry{
					Type:        "LineString",
					Coordinates: coords,
				},
				Properties: map[string]interface{}{
					"name":        track.Name,
					"exported_at": exportedAt.UTC().Format(time.RFC3339),
					"point_count": len(track.Samples),
					"times":       times,
				},
			},
		},
	}
}

// EncodeGeoJSON serializes a track to pretty-printed GeoJSON. Indentation is
// a presentation choice to keep exports diff-friendly.
func EncodeGeoJSON(track *models.Track, exportedAt time.Time) ([]byte, error) {
	if len(track.Samples) == 0 {
		return nil, ErrEmptyTrack
	}

	fc := ToLineFeatureCollection(track, exportedAt)
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal geojson: %w", err)
	}
	return data, nil
}
