package testutil

import (
	"sync"

	"github.com/trigenthq/trigent/trigent-backend/internal/websocket"
)

// MockPublisher records published events for assertions
type MockPublisher struct {
	mu     sync.Mutex
	events []PublishedEvent
}

// PublishedEvent pairs an event with the user it was sent to
type PublishedEvent struct {
	UserID string
	Event  websocket.Event
}

// NewMockPublisher creates an empty mock publisher
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (p *MockPublisher) Publish(userID string, event websocket.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, PublishedEvent{UserID: userID, Event: event})
}

// Events returns a snapshot of everything published so far
func (p *MockPublisher) Events() []PublishedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]PublishedEvent, len(p.events))
	copy(out, p.events)
	return out
}
