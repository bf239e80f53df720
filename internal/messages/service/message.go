package service

import (
	"context"
	"time"

	"github.com/Rad0130/event-planner-server/internal/audit"
	"github.com/Rad0130/event-planner-server/internal/messages/repository"
	"github.com/Rad0130/event-planner-server/pkg/config"
	apperrors "github.com/Rad0130/event-planner-server/pkg/errors"
	"github.com/Rad0130/event-planner-server/pkg/identity"
	"github.com/Rad0130/event-planner-server/pkg/model"
)

const entityName = "message"

type MessageService interface {
	GetAll(ctx context.Context) ([]model.Document, error)
	Create(ctx context.Context, payload model.Document) (*model.CreateResult, error)
	UpdateStatus(ctx context.Context, id string, updates *model.MessageUpdate) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type messageService struct {
	repo  repository.MessageRepository
	ids   *identity.Validator
	audit audit.Recorder
	cfg   *config.Config
}

func NewMessageService(repo repository.MessageRepository, ids *identity.Validator, recorder audit.Recorder, cfg *config.Config) MessageService {
	return &messageService{
		repo:  repo,
		ids:   ids,
		audit: recorder,
		cfg:   cfg,
	}
}

func (s *messageService) GetAll(ctx context.Context) ([]model.Document, error) {
	messages, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list messages", "error", err)
		return nil, apperrors.Internal("Failed to retrieve messages", err)
	}
	return messages, nil
}

// Create stamps new messages as unread after merging the payload.
func (s *messageService) Create(ctx context.Context, payload model.Document) (*model.CreateResult, error) {
	doc := make(model.Document, len(payload)+3)
	for k, v := range payload {
		doc[k] = v
	}
	ts := now()
	doc[model.FieldStatus] = model.MessageUnread
	doc[model.FieldCreatedAt] = ts
	doc[model.FieldUpdatedAt] = ts

	oid, err := s.repo.Insert(ctx, doc)
	if err != nil {
		s.cfg.Log.Error("Failed to create message", "error", err)
		return nil, apperrors.Internal("Failed to create message", err)
	}

	s.audit.Record(ctx, entityName, audit.ActionCreated, oid.Hex())
	s.cfg.Log.Info("Message created successfully", "id", oid.Hex())
	return &model.CreateResult{InsertedID: oid.Hex()}, nil
}

// UpdateStatus writes exactly status, adminReply and updatedAt.
func (s *messageService) UpdateStatus(ctx context.Context, id string, updates *model.MessageUpdate) (*model.UpdateResult, error) {
	oid, err := s.ids.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid message ID format")
	}

	fields := model.Document{
		model.FieldStatus:     updates.Status,
		model.FieldAdminReply: updates.AdminReply,
		model.FieldUpdatedAt:  now(),
	}

	result, err := s.repo.Set(ctx, oid, fields)
	if err != nil {
		s.cfg.Log.Error("Failed to update message", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update message", err)
	}

	if result.MatchedCount > 0 {
		s.audit.Record(ctx, entityName, audit.ActionUpdated, id)
	}
	s.cfg.Log.Info("Message update applied", "id", id, "status", updates.Status, "matched", result.MatchedCount)
	return &model.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *messageService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := s.ids.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid message ID format")
	}

	result, err := s.repo.Delete(ctx, oid)
	if err != nil {
		s.cfg.Log.Error("Failed to delete message", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to delete message", err)
	}

	if result.DeletedCount > 0 {
		s.audit.Record(ctx, entityName, audit.ActionDeleted, id)
	}
	s.cfg.Log.Info("Message delete applied", "id", id, "deleted", result.DeletedCount)
	return &model.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
