package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-management-api/internal/api/middleware"
	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
	"github.com/eventhub/event-management-api/pkg/pagination"
)

type stubEventService struct {
	createFn      func(ctx context.Context, ownerID string, input ports.CreateEventInput) (*domain.Event, error)
	listFn        func(ctx context.Context, filter ports.EventFilter, opts pagination.Options) ([]domain.Event, int64, error)
	getFn         func(ctx context.Context, id string) (*domain.Event, error)
	listByOwnerFn func(ctx context.Context, ownerID string, opts pagination.Options) ([]domain.Event, int64, error)
	updateFn      func(ctx context.Context, userID string, role domain.Role, eventID string, update ports.EventUpdate) (*domain.Event, error)
	deleteFn      func(ctx context.Context, userID string, role domain.Role, eventID string) error
}

func (s *stubEventService) Create(ctx context.Context, ownerID string, input ports.CreateEventInput) (*domain.Event, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubEventService) List(ctx context.Context, filter ports.EventFilter, opts pagination.Options) ([]domain.Event, int64, error) {
	return s.listFn(ctx, filter, opts)
}

func (s *stubEventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.getFn(ctx, id)
}

func (s *stubEventService) ListByOwner(ctx context.Context, ownerID string, opts pagination.Options) ([]domain.Event, int64, error) {
	return s.listByOwnerFn(ctx, ownerID, opts)
}

func (s *stubEventService) Update(ctx context.Context, userID string, role domain.Role, eventID string, update ports.EventUpdate) (*domain.Event, error) {
	return s.updateFn(ctx, userID, role, eventID, update)
}

func (s *stubEventService) Delete(ctx context.Context, userID string, role domain.Role, eventID string) error {
	return s.deleteFn(ctx, userID, role, eventID)
}

func TestEventHandler_Create_Success(t *testing.T) {
	stub := &stubEventService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateEventInput) (*domain.Event, error) {
			if ownerID != "u1" {
				t.Fatalf("unexpected owner: %s", ownerID)
			}
			if input.Title != "GopherCon" || input.Location != "Berlin" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Event{ID: "e1", Title: input.Title, OwnerID: ownerID, Status: domain.EventDraft}, nil
		},
	}
	h := NewEventHandler(stub)

	body := `{"title":"GopherCon","description":"Annual Go conference","date":"2026-10-01T09:00:00Z","time":"09:00","location":"Berlin"}`
	c, rec := newAuthContext(t, http.MethodPost, "/events", body)
	c.Set("auth.identity", middleware.Identity{UserID: "u1", Role: domain.RoleUser})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Event created successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestEventHandler_Create_RequiresIdentity(t *testing.T) {
	stub := &stubEventService{
		createFn: func(ctx context.Context, ownerID string, input ports.CreateEventInput) (*domain.Event, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewEventHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/events", `{"title":"x"}`)
	err := h.Create(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestEventHandler_List_PaginationMeta(t *testing.T) {
	stub := &stubEventService{
		listFn: func(ctx context.Context, filter ports.EventFilter, opts pagination.Options) ([]domain.Event, int64, error) {
			if filter.Query != "conf" || filter.Status != domain.EventPublished {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			if opts.Page != 2 || opts.Limit != 5 {
				t.Fatalf("unexpected options: %+v", opts)
			}
			return []domain.Event{{ID: "e1"}, {ID: "e2"}}, 12, nil
		},
	}
	h := NewEventHandler(stub)

	c, rec := newAuthContext(t, http.MethodGet, "/events?query=conf&status=PUBLISHED&page=2&limit=5", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	meta := resp["meta"].(map[string]any)
	if meta["total"] != float64(12) || meta["page"] != float64(2) || meta["limit"] != float64(5) {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestEventHandler_List_MetaMatchesServedPage(t *testing.T) {
	stub := &stubEventService{
		listFn: func(ctx context.Context, filter ports.EventFilter, opts pagination.Options) ([]domain.Event, int64, error) {
			return []domain.Event{{ID: "e1"}}, 1, nil
		},
	}
	h := NewEventHandler(stub)

	// An oversized limit is capped by the repositories; the meta block must
	// report the capped value, not echo the raw query parameter.
	c, rec := newAuthContext(t, http.MethodGet, "/events?page=0&limit=5000", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	meta := resp["meta"].(map[string]any)
	if meta["page"] != float64(1) || meta["limit"] != float64(100) {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestEventHandler_List_Empty(t *testing.T) {
	stub := &stubEventService{
		listFn: func(ctx context.Context, filter ports.EventFilter, opts pagination.Options) ([]domain.Event, int64, error) {
			return nil, 0, domain.ErrEventNotFound
		},
	}
	h := NewEventHandler(stub)

	c, _ := newAuthContext(t, http.MethodGet, "/events", "")
	err := h.List(c)
	if !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}

func TestEventHandler_Update_ForwardsIdentity(t *testing.T) {
	stub := &stubEventService{
		updateFn: func(ctx context.Context, userID string, role domain.Role, eventID string, update ports.EventUpdate) (*domain.Event, error) {
			if userID != "u2" || role != domain.RoleAdmin || eventID != "e1" {
				t.Fatalf("unexpected args: %s %s %s", userID, role, eventID)
			}
			if update.Title == nil || *update.Title != "Renamed" {
				t.Fatalf("unexpected update: %+v", update)
			}
			return &domain.Event{ID: eventID, Title: *update.Title}, nil
		},
	}
	h := NewEventHandler(stub)

	c, rec := newAuthContext(t, http.MethodPatch, "/events/e1", `{"title":"Renamed"}`)
	c.SetParamNames("id")
	c.SetParamValues("e1")
	c.Set("auth.identity", middleware.Identity{UserID: "u2", Role: domain.RoleAdmin})

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEventHandler_Delete_Forbidden(t *testing.T) {
	stub := &stubEventService{
		deleteFn: func(ctx context.Context, userID string, role domain.Role, eventID string) error {
			return domain.ErrForbidden
		},
	}
	h := NewEventHandler(stub)

	c, _ := newAuthContext(t, http.MethodDelete, "/events/e1", "")
	c.SetParamNames("id")
	c.SetParamValues("e1")
	c.Set("auth.identity", middleware.Identity{UserID: "u3", Role: domain.RoleUser})

	err := h.Delete(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
