package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to the entity
type EventType string

const (
	EventTypeCreated   EventType = "created"
	EventTypeUpdated   EventType = "updated"
	EventTypeDeleted   EventType = "deleted"
	EventTypeGenerated EventType = "generated"
	EventTypeAnalyzed  EventType = "analyzed"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeAutomation         EntityType = "automation"
	EntityTypeReport             EntityType = "report"
	EntityTypeSocialPost         EntityType = "social_post"
	EntityTypeSWOT               EntityType = "swot"
	EntityTypeCompetitorAnalysis EntityType = "competitor_analysis"
	EntityTypeGrowthPlan         EntityType = "growth_plan"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`      // Combined type e.g. "automation.created"
	Entity    EntityType  `json:"entity"`    // Entity type e.g. "automation"
	Payload   interface{} `json:"payload"`   // Full entity data
	Timestamp time.Time   `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// AutomationCreated creates an automation.created event
func AutomationCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeAutomation, payload)
}

// AutomationUpdated creates an automation.updated event
func AutomationUpdated(payload interface{}) Event {
	return NewEvent(EventTypeUpdated, EntityTypeAutomation, payload)
}

// AutomationDeleted creates an automation.deleted event
func AutomationDeleted(payload interface{}) Event {
	return NewEvent(EventTypeDeleted, EntityTypeAutomation, payload)
}

// ReportCreated creates a report.created event
func ReportCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeReport, payload)
}

// SocialPostCreated creates a social_post.created event
func SocialPostCreated(payload interface{}) Event {
	return NewEvent(EventTypeCreated, EntityTypeSocialPost, payload)
}

// SWOTGenerated creates a swot.generated event
func SWOTGenerated(payload interface{}) Event {
	return NewEvent(EventTypeGenerated, EntityTypeSWOT, payload)
}

// CompetitorsAnalyzed creates a competitor_analysis.analyzed event
func CompetitorsAnalyzed(payload interface{}) Event {
	return NewEvent(EventTypeAnalyzed, EntityTypeCompetitorAnalysis, payload)
}

// GrowthPlanGenerated creates a growth_plan.generated event
func GrowthPlanGenerated(payload interface{}) Event {
	return NewEvent(EventTypeGenerated, EntityTypeGrowthPlan, payload)
}
