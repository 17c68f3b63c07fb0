// ABOUTME: JSON-lines sample stream decoder
// ABOUTME: Parses raw platform fixes into samples, dropping malformed records

package main

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/harper/trackrec/internal/models"
)

// rawSample mirrors the wire shape of one platform fix. Coordinates are
// pointers so a missing field can be told apart from a legitimate zero.
type rawSample struct {
	Latitude     *float64 `json:"lat"`
	Longitude    *float64 `json:"lng"`
	CapturedAt   string   `json:"captured_at"`
	CapturedAtMs *int64   `json:"captured_at_ms"`
	AccuracyM    *float64 `json:"accuracy_m"`
	SpeedMps     *float64 `json:"speed_mps"`
}

// decodeSamples reads newline-delimited JSON fixes from r and calls emit for
// each well-formed one. Malformed lines (bad JSON, missing coordinates, no
// usable timestamp) are dropped silently. Returns the delivered and dropped
// counts.
func decodeSamples(r io.Reader, emit func(models.Sample)) (delivered, dropped int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var raw rawSample
		if err := json.Unmarshal([]byte(line), &raw); err != nil {
			dropped++
			continue
		}

		sample, ok := raw.toSample()
		if !ok {
			dropped++
			continue
		}

		emit(sample)
		delivered++
	}

	return delivered, dropped, scanner.Err()
}

func (r rawSample) toSample() (models.Sample, bool) {
	if r.Latitude == nil || r.Longitude == nil {
		return models.Sample{}, false
	}

	var capturedAt time.Time
	switch {
	case r.CapturedAt != "":
		t, err := time.Parse(time.RFC3339, r.CapturedAt)
		if err != nil {
			return models.Sample{}, false
		}
		capturedAt = t
	case r.CapturedAtMs != nil:
		capturedAt = time.UnixMilli(*r.CapturedAtMs).UTC()
	default:
		return models.Sample{}, false
	}

	sample := models.NewSample(*r.Latitude, *r.Longitude, capturedAt)
	sample.AccuracyM = r.AccuracyM
	sample.SpeedMps = r.SpeedMps
	return sample, true
}
