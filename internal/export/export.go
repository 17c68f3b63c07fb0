// ABOUTME: Shared export definitions for track encoders
// ABOUTME: Formats, MIME types, filenames, and the empty-track error

package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harper/trackrec/internal/models"
)

// Format names accepted by the encoders.
const (
	FormatGPX     = "gpx"
	FormatGeoJSON = "geojson"
	FormatFIT     = "fit"
)

// MIME types for the encoded payloads.
const (
	MIMEGPX     = "application/gpx+xml"
	MIMEGeoJSON = "application/geo+json"
	MIMEFIT     = "application/vnd.ant.fit"
)

// ErrEmptyTrack is returned when a track with zero samples is exported.
var ErrEmptyTrack = errors.New("track has no samples")

// ErrUnknownFormat is returned for an unrecognized format name.
var ErrUnknownFormat = errors.New("unknown export format")

// Encode serializes a track's samples in the named format.
func Encode(track *models.Track, format string, exportedAt time.Time) ([]byte, error) {
	switch format {
	case FormatGPX:
		return EncodeGPX(track, exportedAt)
	case FormatGeoJSON:
		return EncodeGeoJSON(track, exportedAt)
	case FormatFIT:
		return EncodeFIT(track, exportedAt)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// MIMEType returns the MIME type for a format name, or an error for an
// unrecognized one.
func MIMEType(format string) (string, error) {
	switch format {
	case FormatGPX:
		return MIMEGPX, nil
	case FormatGeoJSON:
		return MIMEGeoJSON, nil
	case FormatFIT:
		return MIMEFIT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Filename builds the export filename <prefix>-<YYYY-MM-DD>.<ext>.
// Whitespace in the prefix is folded to single dashes.
func Filename(prefix, format string, exportedAt time.Time) string {
	prefix = strings.Join(strings.Fields(prefix), "-")
	if prefix == "" {
		prefix = "track"
	}
	return fmt.Sprintf("%s-%s.%s", prefix, exportedAt.UTC().Format("2006-01-02"), format)
}
