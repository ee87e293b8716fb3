package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
	"github.com/eventhub/event-management-api/pkg/pagination"
)

// EventCache abstracts the read cache for single-event lookups (Redis).
// Cache failures are never fatal: the store remains the source of truth.
type EventCache interface {
	Get(ctx context.Context, id string) (*domain.Event, error)
	Set(ctx context.Context, event *domain.Event) error
	Invalidate(ctx context.Context, id string) error
}

type eventService struct {
	events ports.EventRepository
	cache  EventCache
	log    zerolog.Logger
}

// NewEventService returns an EventService implementation. cache may be nil
// when no read cache is configured.
func NewEventService(events ports.EventRepository, cache EventCache, log zerolog.Logger) ports.EventService {
	return &eventService{events: events, cache: cache, log: log}
}

// Create persists a new event owned by ownerID. Status defaults to draft.
func (s *eventService) Create(ctx context.Context, ownerID string, input ports.CreateEventInput) (*domain.Event, error) {
	status := input.Status
	if status == "" {
		status = domain.EventDraft
	}
	if !status.Valid() {
		return nil, fmt.Errorf("create event: unknown status %q: %w", input.Status, domain.ErrForbidden)
	}

	now := time.Now().UTC()
	event := &domain.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		OwnerID:     ownerID,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("event_id", created.ID).Str("owner_id", ownerID).Msg("event created")
	return created, nil
}

// List returns a page of events matching the filter. An empty result set is
// reported as not found.
func (s *eventService) List(ctx context.Context, filter ports.EventFilter, opts pagination.Options) ([]domain.Event, int64, error) {
	events, total, err := s.events.List(ctx, filter, pagination.Normalize(opts))
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, domain.ErrEventNotFound
	}
	return events, total, nil
}

// Get returns a single event, served from the cache when possible.
func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("event_id", id).Msg("event cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, event); err != nil {
			s.log.Warn().Err(err).Str("event_id", id).Msg("event cache write failed")
		}
	}
	return event, nil
}

// ListByOwner returns the caller's own events, paginated.
func (s *eventService) ListByOwner(ctx context.Context, ownerID string, opts pagination.Options) ([]domain.Event, int64, error) {
	return s.events.ListByOwner(ctx, ownerID, pagination.Normalize(opts))
}

// Update applies a partial update. Only the owner or an elevated role may
// mutate an event.
func (s *eventService) Update(ctx context.Context, userID string, role domain.Role, eventID string, update ports.EventUpdate) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.CanBeManagedBy(userID, role) {
		return nil, domain.ErrForbidden
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, fmt.Errorf("update event: unknown status %q: %w", *update.Status, domain.ErrForbidden)
	}

	updated, err := s.events.Update(ctx, eventID, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, eventID)
	s.log.Info().Str("event_id", eventID).Str("user_id", userID).Msg("event updated")
	return updated, nil
}

// Delete removes an event under the same owner-or-admin rule as Update.
func (s *eventService) Delete(ctx context.Context, userID string, role domain.Role, eventID string) error {
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if !event.CanBeManagedBy(userID, role) {
		return domain.ErrForbidden
	}

	if err := s.events.Delete(ctx, eventID); err != nil {
		return err
	}

	s.invalidate(ctx, eventID)
	s.log.Info().Str("event_id", eventID).Str("user_id", userID).Msg("event deleted")
	return nil
}

func (s *eventService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("event_id", id).Msg("event cache invalidation failed")
	}
}
