// ABOUTME: Push-based sample source with cancellable subscriptions
// ABOUTME: Stands in for the platform geolocation callback

package session

import (
	"sync"

	"github.com/harper/trackrec/internal/models"
)

// Handler receives one raw sample per delivery.
type Handler func(models.Sample)

// CancelFunc removes a subscription. Safe to call more than once.
type CancelFunc func()

// Source fans raw samples out to subscribed handlers. Handlers run
// synchronously in Publish order, one sample to completion at a time.
type Source struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]Handler
}

// NewSource creates an empty sample source.
func NewSource() *Source {
	return &Source{handlers: make(map[int]Handler)}
}

// Subscribe registers a handler and returns its cancel token.
func (s *Source) Subscribe(h Handler) CancelFunc {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.handlers[id] = h
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.handlers, id)
		s.mu.Unlock()
	}
}

// Publish delivers a sample to every current subscriber.
func (s *Source) Publish(sample models.Sample) {
	s.mu.Lock()
	hs := make([]Handler, 0, len(s.handlers))
	for _, h := range s.handlers {
		hs = append(hs, h)
	}
	s.mu.Unlock()

	for _, h := range hs {
		h(sample)
	}
}
