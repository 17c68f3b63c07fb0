// ABOUTME: Recording state machine owning the active track lifecycle
// ABOUTME: Gates sample admission and commits finished tracks to the store

package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/harper/trackrec/internal/filter"
	"github.com/harper/trackrec/internal/metrics"
	"github.com/harper/trackrec/internal/models"
	"github.com/harper/trackrec/internal/storage"
)

// State is the recording lifecycle state.
type State int

const (
	Idle State = iota
	Recording
	Paused
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrInvalidTransition is returned when a lifecycle method is called from an
// incompatible state. The recorder's state is unchanged.
var ErrInvalidTransition = errors.New("invalid transition")

// TransitionError reports which operation was attempted from which state.
type TransitionError struct {
	Op   string
	From State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: invalid transition from %s", e.Op, e.From)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Recorder owns one recording session at a time: the active track, the
// admission filter, and the last known device position. It is the single
// writer of the active track; committed tracks are immutable.
//
// The recorder processes one sample to completion before the next; it is not
// safe for concurrent use and does not need to be (the sample source
// delivers events one at a time).
type Recorder struct {
	repo   storage.TrackRepository
	filter filter.Config
	now    func() time.Time

	state        State
	active       *models.Track
	lastAdmitted *models.Sample
	lastKnown    *models.Sample
	snapshot     metrics.Snapshot
	detach       CancelFunc
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock overrides the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// WithFilter overrides the default admission thresholds.
func WithFilter(cfg filter.Config) Option {
	return func(r *Recorder) { r.filter = cfg }
}

// NewRecorder creates a recorder in the Idle state.
func NewRecorder(repo storage.TrackRepository, opts ...Option) *Recorder {
	r := &Recorder{
		repo:   repo,
		filter: filter.DefaultConfig(),
		now:    time.Now,
		state:  Idle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current lifecycle state.
func (r *Recorder) State() State {
	return r.state
}

// Active returns the active track, or nil outside a session. The track is
// owned by the recorder until Stop commits it; callers must not mutate it.
func (r *Recorder) Active() *models.Track {
	return r.active
}

// LastKnown returns the most recent raw sample seen in any state, or nil.
// This reflects device position even when not recording.
func (r *Recorder) LastKnown() *models.Sample {
	return r.lastKnown
}

// Metrics returns the derived metrics from the most recent admitted tick.
func (r *Recorder) Metrics() metrics.Snapshot {
	return r.snapshot
}

// CurrentSpeedKmh returns the displayed current speed.
func (r *Recorder) CurrentSpeedKmh() float64 {
	return r.snapshot.CurrentSpeedKmh
}

// Start begins a new session with an empty active track. Valid from Idle or
// Stopped.
func (r *Recorder) Start(name string) error {
	if r.state != Idle && r.state != Stopped {
		return &TransitionError{Op: "start", From: r.state}
	}
	if err := models.ValidateName(name); err != nil {
		return fmt.Errorf("track name: %w", err)
	}

	r.active = models.NewTrack(name, r.now())
	r.lastAdmitted = nil
	r.snapshot = metrics.Snapshot{}
	r.state = Recording
	return nil
}

// Pause suspends admission without closing the track. Valid from Recording.
func (r *Recorder) Pause() error {
	if r.state != Recording {
		return &TransitionError{Op: "pause", From: r.state}
	}
	r.state = Paused
	return nil
}

// Resume continues a paused session. Valid from Paused.
func (r *Recorder) Resume() error {
	if r.state != Paused {
		return &TransitionError{Op: "resume", From: r.state}
	}
	r.state = Recording
	return nil
}

// Stop ends the session. Valid from Recording or Paused. The active track is
// frozen with EndedAt set and, if it holds at least one sample, committed to
// the store. The frozen track is returned in all cases.
//
// On a store failure the recorder still transitions to Stopped and the
// frozen track is returned alongside the error, so the caller can retry the
// save directly without losing the session's data.
func (r *Recorder) Stop() (*models.Track, error) {
	if r.state != Recording && r.state != Paused {
		return nil, &TransitionError{Op: "stop", From: r.state}
	}

	track := r.active
	ended := r.now()
	track.EndedAt = &ended

	final := metrics.Compute(track.Samples, track.StartedAt, ended)
	track.TotalDistanceKm = final.TotalDistanceKm
	track.AverageSpeedKmh = final.AverageSpeedKmh

	r.active = nil
	r.lastAdmitted = nil
	r.state = Stopped
	r.unsubscribe()

	if len(track.Samples) == 0 {
		// Nothing to persist; not an error.
		return track, nil
	}

	if err := r.repo.SaveTrack(track); err != nil {
		return track, fmt.Errorf("commit track: %w", err)
	}
	return track, nil
}

// OnSample processes one raw sample. Valid in every state: the last known
// position (and, when the platform reports a speed, the displayed current
// speed) always update. The sample is appended to the active track only when
// it passes the admission filter while Recording. Returns whether the sample
// was admitted.
//
// Samples missing well-formed coordinates are dropped silently; upstream
// platform sources occasionally emit partial fixes.
func (r *Recorder) OnSample(s models.Sample) bool {
	if models.ValidateCoordinates(s.Latitude, s.Longitude) != nil {
		return false
	}

	known := s
	r.lastKnown = &known
	if s.SpeedMps != nil {
		r.snapshot.CurrentSpeedKmh = *s.SpeedMps * 3.6
	}

	if r.state != Recording {
		return false
	}

	// Admitted samples must stay chronological within the track.
	if r.lastAdmitted != nil && s.CapturedAt.Before(r.lastAdmitted.CapturedAt) {
		return false
	}
	if !r.filter.Admit(r.lastAdmitted, s) {
		return false
	}

	r.active.Samples = append(r.active.Samples, s)
	r.lastAdmitted = &r.active.Samples[len(r.active.Samples)-1]

	r.snapshot = metrics.Compute(r.active.Samples, r.active.StartedAt, r.now())
	r.active.TotalDistanceKm = r.snapshot.TotalDistanceKm
	r.active.AverageSpeedKmh = r.snapshot.AverageSpeedKmh
	return true
}

// Attach subscribes the recorder to a sample source. The subscription is
// cancelled automatically on Stop; the returned cancel is idempotent and may
// be called earlier for teardown.
func (r *Recorder) Attach(src *Source) CancelFunc {
	cancel := src.Subscribe(func(s models.Sample) { r.OnSample(s) })
	r.detach = cancel
	return cancel
}

func (r *Recorder) unsubscribe() {
	if r.detach != nil {
		r.detach()
		r.detach = nil
	}
}
