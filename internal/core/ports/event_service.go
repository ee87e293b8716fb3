package ports

import (
	"context"
	"time"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/pkg/pagination"
)

// CreateEventInput is the DTO passed from the transport layer to EventService.
type CreateEventInput struct {
	Title       string
	Description string
	Date        time.Time
	Time        string
	Location    string
	Status      domain.EventStatus
}

// EventService exposes event CRUD with the owner-or-admin mutation rule.
type EventService interface {
	Create(ctx context.Context, ownerID string, input CreateEventInput) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter, opts pagination.Options) ([]domain.Event, int64, error)
	Get(ctx context.Context, id string) (*domain.Event, error)
	ListByOwner(ctx context.Context, ownerID string, opts pagination.Options) ([]domain.Event, int64, error)
	Update(ctx context.Context, userID string, role domain.Role, eventID string, update EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, userID string, role domain.Role, eventID string) error
}
