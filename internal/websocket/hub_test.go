package websocket

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient collects sent payloads for assertions
type fakeClient struct {
	id     string
	userID string
	mu     sync.Mutex
	sent   [][]byte
	wg     *sync.WaitGroup
}

func (f *fakeClient) ID() string     { return f.id }
func (f *fakeClient) UserID() string { return f.userID }
func (f *fakeClient) Close() error   { return nil }

func (f *fakeClient) Send(data []byte) error {
	f.mu.Lock()
	f.sent = append(f.sent, data)
	f.mu.Unlock()
	if f.wg != nil {
		f.wg.Done()
	}
	return nil
}

func (f *fakeClient) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func TestHub_RegisterUnregister(t *testing.T) {
	hub := NewHub()
	client := &fakeClient{id: "c1", userID: "u1"}

	hub.Register(client)
	assert.Equal(t, 1, hub.ClientCount("u1"))

	hub.Unregister(client)
	assert.Equal(t, 0, hub.ClientCount("u1"))
	assert.Equal(t, 0, hub.TotalClientCount())
}

func TestHub_BroadcastScopedToUser(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	wg.Add(1)
	mine := &fakeClient{id: "c1", userID: "u1", wg: &wg}
	other := &fakeClient{id: "c2", userID: "u2"}
	hub.Register(mine)
	hub.Register(other)

	hub.Broadcast("u1", AutomationCreated(map[string]string{"id": "a1"}))
	wg.Wait()

	assert.Equal(t, 1, mine.sentCount(), "u1 should receive the event")
	assert.Equal(t, 0, other.sentCount(), "u2 should not receive u1's event")
}

func TestHub_BroadcastToUnknownUserIsNoOp(t *testing.T) {
	hub := NewHub()
	hub.Broadcast("nobody", ReportCreated(nil))
}

func TestEvent_TypeComposition(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{AutomationCreated(nil), "automation.created"},
		{AutomationUpdated(nil), "automation.updated"},
		{AutomationDeleted(nil), "automation.deleted"},
		{ReportCreated(nil), "report.created"},
		{SocialPostCreated(nil), "social_post.created"},
		{SWOTGenerated(nil), "swot.generated"},
		{CompetitorsAnalyzed(nil), "competitor_analysis.analyzed"},
		{GrowthPlanGenerated(nil), "growth_plan.generated"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.event.Type)
	}
}

func TestEvent_ToJSON(t *testing.T) {
	event := SWOTGenerated(map[string]string{"id": "swot-1"})
	data, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "swot.generated", decoded["type"])
	assert.Equal(t, "swot", decoded["entity"])
}
