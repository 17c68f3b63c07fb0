// ABOUTME: GPX 1.1 track encoder
// ABOUTME: One trk with one trkseg, timestamped track points, full coordinate precision

package export

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/harper/trackrec/internal/models"
)

// GPX is the document root for the GPX 1.1 subset this tool emits.
type GPX struct {
	XMLName  xml.Name    `xml:"gpx"`
	Version  string      `xml:"version,attr"`
	Creator  string      `xml:"creator,attr"`
	XMLNS    string      `xml:"xmlns,attr"`
	Metadata GPXMetadata `xml:"metadata"`
	Track    GPXTrack    `xml:"trk"`
}

// GPXMetadata carries the track name and export timestamp.
type GPXMetadata struct {
	Name string `xml:"name"`
	Time string `xml:"time"`
}

// GPXTrack holds a single segment of track points.
type GPXTrack struct {
	Name    string     `xml:"name"`
	Segment GPXSegment `xml:"trkseg"`
}

// GPXSegment is one contiguous run of track points.
type GPXSegment struct {
	Points []GPXPoint `xml:"trkpt"`
}

// GPXPoint is one sample as a GPX track point.
type GPXPoint struct {
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Time string  `xml:"time"`
}

// EncodeGPX serializes a track to a GPX 1.1 document. The export timestamp
// and all sample timestamps are rendered as ISO-8601 UTC.
func EncodeGPX(track *models.Track, exportedAt time.Time) ([]byte, error) {
	if len(track.Samples) == 0 {
		return nil, ErrEmptyTrack
	}

	doc := GPX{
		Version: "1.1",
		Creator: "trackrec",
		XMLNS:   "http://www.topografix.com/GPX/1/1",
		Metadata: GPXMetadata{
			Name: track.Name,
			Time: exportedAt.UTC().Format(time.RFC3339),
		},
		Track: GPXTrack{
			Name: track.Name,
			Segment: GPXSegment{
				Points: make([]GPXPoint, len(track.Samples)),
			},
		},
	}

	for i, s := range track.Samples {
		doc.Track.Segment.Points[i] = GPXPoint{
			Lat:  s.Latitude,
			Lon:  s.Longitude,
			Time: s.CapturedAt.UTC().Format(time.RFC3339),
		}
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal gpx: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}
