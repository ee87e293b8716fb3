package domain

import (
	"errors"
	"time"
)

// EventStatus represents the publication state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventPublished EventStatus = "PUBLISHED"
	EventCancelled EventStatus = "CANCELLED"
)

// Valid reports whether s is a known event status.
func (s EventStatus) Valid() bool {
	switch s {
	case EventDraft, EventPublished, EventCancelled:
		return true
	}
	return false
}

var ErrEventNotFound = errors.New("event not found")

// Event is the core aggregate of the system: something a user organizes
// at a given place and time.
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
	Time        string      `json:"time"`
	Location    string      `json:"location"`
	OwnerID     string      `json:"owner_id"`
	Status      EventStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// CanBeManagedBy reports whether the given identity may mutate the event.
// Owners manage their own events; elevated roles manage any event.
func (e *Event) CanBeManagedBy(userID string, role Role) bool {
	return e.OwnerID == userID || role.IsElevated()
}
