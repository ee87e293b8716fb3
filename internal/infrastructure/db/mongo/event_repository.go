package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
	"github.com/eventhub/event-management-api/pkg/pagination"
)

const eventsCollection = "events"

type EventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{coll: db.Collection(eventsCollection)}
}

type mongoEvent struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Date        time.Time          `bson:"date"`
	Time        string             `bson:"time"`
	Location    string             `bson:"location"`
	OwnerID     string             `bson:"owner_id"`
	Status      string             `bson:"status"`
	CreatedAt   int64              `bson:"created_at"`
	UpdatedAt   int64              `bson:"updated_at"`
}

func (me *mongoEvent) toDomain() *domain.Event {
	return &domain.Event{
		ID:          me.ID.Hex(),
		Title:       me.Title,
		Description: me.Description,
		Date:        me.Date,
		Time:        me.Time,
		Location:    me.Location,
		OwnerID:     me.OwnerID,
		Status:      domain.EventStatus(me.Status),
		CreatedAt:   unixToTime(me.CreatedAt),
		UpdatedAt:   unixToTime(me.UpdatedAt),
	}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	doc := mongoEvent{
		Title:       event.Title,
		Description: event.Description,
		Date:        event.Date,
		Time:        event.Time,
		Location:    event.Location,
		OwnerID:     event.OwnerID,
		Status:      string(event.Status),
		CreatedAt:   event.CreatedAt.Unix(),
		UpdatedAt:   event.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	created := *event
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	var me mongoEvent
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}
	return me.toDomain(), nil
}

func (r *EventRepository) List(ctx context.Context, filter ports.EventFilter, pg pagination.Pagination) ([]domain.Event, int64, error) {
	query := bson.M{}
	if filter.Query != "" {
		query["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": filter.Query, "$options": "i"}},
			bson.M{"location": bson.M{"$regex": filter.Query, "$options": "i"}},
		}
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	return r.page(ctx, query, pg)
}

func (r *EventRepository) ListByOwner(ctx context.Context, ownerID string, pg pagination.Pagination) ([]domain.Event, int64, error) {
	return r.page(ctx, bson.M{"owner_id": ownerID}, pg)
}

func (r *EventRepository) page(ctx context.Context, query bson.M, pg pagination.Pagination) ([]domain.Event, int64, error) {
	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count events: %w", err)
	}

	opts := options.Find().
		SetSkip(int64(pg.Skip)).
		SetLimit(int64(pg.Limit)).
		SetSort(bson.D{{Key: pg.SortBy, Value: pg.SortOrder}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}
	defer cursor.Close(ctx)

	events := make([]domain.Event, 0, pg.Limit)
	for cursor.Next(ctx) {
		var me mongoEvent
		if err := cursor.Decode(&me); err != nil {
			return nil, 0, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, *me.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("list events: %w", err)
	}

	return events, total, nil
}

func (r *EventRepository) Update(ctx context.Context, id string, update ports.EventUpdate) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEventNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC().Unix()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Date != nil {
		set["date"] = *update.Date
	}
	if update.Time != nil {
		set["time"] = *update.Time
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var me mongoEvent
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&me)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return me.toDomain(), nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEventNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
