package ports

import (
	"context"
	"time"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/pkg/pagination"
)

// EventFilter restricts event listings. Query is a case-insensitive
// substring search over title and location.
type EventFilter struct {
	Query  string
	Status domain.EventStatus
}

// EventUpdate carries a partial update; nil fields are left untouched.
type EventUpdate struct {
	Title       *string
	Description *string
	Date        *time.Time
	Time        *string
	Location    *string
	Status      *domain.EventStatus
}

// EventRepository defines persistence for the events collection.
type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, filter EventFilter, pg pagination.Pagination) ([]domain.Event, int64, error)
	ListByOwner(ctx context.Context, ownerID string, pg pagination.Pagination) ([]domain.Event, int64, error)
	Update(ctx context.Context, id string, update EventUpdate) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}
