package service

import (
	"context"
	"time"

	"github.com/Rad0130/event-planner-server/internal/audit"
	"github.com/Rad0130/event-planner-server/internal/events/repository"
	"github.com/Rad0130/event-planner-server/pkg/config"
	apperrors "github.com/Rad0130/event-planner-server/pkg/errors"
	"github.com/Rad0130/event-planner-server/pkg/identity"
	"github.com/Rad0130/event-planner-server/pkg/model"
)

const entityName = "event"

type EventService interface {
	GetAll(ctx context.Context) ([]model.Document, error)
	GetByID(ctx context.Context, id string) (model.Document, error)
	Create(ctx context.Context, payload model.Document) (*model.CreateResult, error)
	Update(ctx context.Context, id string, payload model.Document) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type eventService struct {
	repo  repository.EventRepository
	ids   *identity.Validator
	audit audit.Recorder
	cfg   *config.Config
}

func NewEventService(repo repository.EventRepository, ids *identity.Validator, recorder audit.Recorder, cfg *config.Config) EventService {
	return &eventService{
		repo:  repo,
		ids:   ids,
		audit: recorder,
		cfg:   cfg,
	}
}

func (s *eventService) GetAll(ctx context.Context) ([]model.Document, error) {
	events, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list events", "error", err)
		return nil, apperrors.Internal("Failed to retrieve events", err)
	}
	return events, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (model.Document, error) {
	oid, err := s.ids.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid event ID format")
	}

	event, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		s.cfg.Log.Error("Failed to retrieve event", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve event", err)
	}
	return event, nil
}

// Create stores the payload as given and stamps the lifecycle fields on top,
// so caller-supplied createdAt/updatedAt values never survive creation.
func (s *eventService) Create(ctx context.Context, payload model.Document) (*model.CreateResult, error) {
	doc := stamped(payload)

	oid, err := s.repo.Insert(ctx, doc)
	if err != nil {
		s.cfg.Log.Error("Failed to create event", "error", err)
		return nil, apperrors.Internal("Failed to create event", err)
	}

	s.audit.Record(ctx, entityName, audit.ActionCreated, oid.Hex())
	s.cfg.Log.Info("Event created successfully", "id", oid.Hex())
	return &model.CreateResult{InsertedID: oid.Hex()}, nil
}

// Update is a full merge: every field present in the payload is set, plus
// updatedAt. A zero-match result is reported back, not treated as a failure.
func (s *eventService) Update(ctx context.Context, id string, payload model.Document) (*model.UpdateResult, error) {
	oid, err := s.ids.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid event ID format")
	}

	fields := make(model.Document, len(payload)+1)
	for k, v := range payload {
		fields[k] = v
	}
	fields[model.FieldUpdatedAt] = now()

	result, err := s.repo.Set(ctx, oid, fields)
	if err != nil {
		s.cfg.Log.Error("Failed to update event", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update event", err)
	}

	if result.MatchedCount > 0 {
		s.audit.Record(ctx, entityName, audit.ActionUpdated, id)
	}
	s.cfg.Log.Info("Event update applied", "id", id, "matched", result.MatchedCount, "modified", result.ModifiedCount)
	return &model.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *eventService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := s.ids.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid event ID format")
	}

	result, err := s.repo.Delete(ctx, oid)
	if err != nil {
		s.cfg.Log.Error("Failed to delete event", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to delete event", err)
	}

	if result.DeletedCount > 0 {
		s.audit.Record(ctx, entityName, audit.ActionDeleted, id)
	}
	s.cfg.Log.Info("Event delete applied", "id", id, "deleted", result.DeletedCount)
	return &model.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// stamped copies the payload and overwrites createdAt/updatedAt with the
// current time.
func stamped(payload model.Document) model.Document {
	doc := make(model.Document, len(payload)+2)
	for k, v := range payload {
		doc[k] = v
	}
	ts := now()
	doc[model.FieldCreatedAt] = ts
	doc[model.FieldUpdatedAt] = ts
	return doc
}
