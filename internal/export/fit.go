// ABOUTME: FIT activity encoder
// ABOUTME: FileId, per-sample Record messages, and a Session summary

package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/harper/trackrec/internal/geo"
	"github.com/harper/trackrec/internal/models"
	"github.com/muktihari/fit/encoder"
	"github.com/muktihari/fit/profile/mesgdef"
	"github.com/muktihari/fit/profile/typedef"
	"github.com/muktihari/fit/proto"
)

// Constant for converting degrees to semicircles (FIT standard).
const degreesToSemicircles = 2147483648.0 / 180.0

// EncodeFIT serializes a track to a FIT activity file.
func EncodeFIT(track *models.Track, exportedAt time.Time) ([]byte, error) {
	if len(track.Samples) == 0 {
		return nil, ErrEmptyTrack
	}

	fit := proto.FIT{}

	fileIdMesg := mesgdef.FileId{
		Type:         typedef.FileActivity,
		Manufacturer: typedef.ManufacturerDevelopment,
		Product:      0,
		SerialNumber: 1,
		TimeCreated:  track.StartedAt,
	}
	fit.Messages = append(fit.Messages, fileIdMesg.ToMesg(nil))

	var cumulativeKm float64
	for i, s := range track.Samples {
		if i > 0 {
			prev := track.Samples[i-1]
			cumulativeKm += geo.DistanceKm(prev.Latitude, prev.Longitude, s.Latitude, s.Longitude)
		}

		record := &mesgdef.Record{
			Timestamp:    s.CapturedAt,
			PositionLat:  int32(s.Latitude * degreesToSemicircles),
			PositionLong: int32(s.Longitude * degreesToSemicircles),
			// Distance scale is cm.
			Distance: uint32(cumulativeKm * 100000),
		}
		if s.SpeedMps != nil {
			// EnhancedSpeed scale is mm/s.
			record.EnhancedSpeed = uint32(*s.SpeedMps * 1000)
		}
		fit.Messages = append(fit.Messages, record.ToMesg(nil))
	}

	ended := exportedAt
	if track.EndedAt != nil {
		ended = *track.EndedAt
	}
	elapsed := ended.Sub(track.StartedAt)

	sessionMesg := mesgdef.Session{
		Timestamp:        ended,
		StartTime:        track.StartedAt,
		TotalElapsedTime: uint32(elapsed.Milliseconds()),
		TotalTimerTime:   uint32(elapsed.Milliseconds()),
		TotalDistance:    uint32(track.TotalDistanceKm * 100000),
		Sport:            typedef.SportGeneric,
		Event:            typedef.EventSession,
		EventType:        typedef.EventTypeStop,
		Trigger:          typedef.SessionTriggerActivityEnd,
	}
	fit.Messages = append(fit.Messages, sessionMesg.ToMesg(nil))

	var buf bytes.Buffer
	enc := encoder.New(&buf)
	if err := enc.Encode(&fit); err != nil {
		return nil, fmt.Errorf("encode fit: %w", err)
	}
	return buf.Bytes(), nil
}
