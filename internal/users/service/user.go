package service

import (
	"context"
	"time"

	"github.com/Rad0130/event-planner-server/internal/audit"
	"github.com/Rad0130/event-planner-server/internal/users/repository"
	"github.com/Rad0130/event-planner-server/pkg/config"
	apperrors "github.com/Rad0130/event-planner-server/pkg/errors"
	"github.com/Rad0130/event-planner-server/pkg/model"
)

const entityName = "user"

type UserService interface {
	GetAll(ctx context.Context) ([]model.Document, error)
	GetByEmail(ctx context.Context, email string) (model.Document, error)
	Create(ctx context.Context, payload model.Document) (*model.CreateResult, error)
}

type userService struct {
	repo  repository.UserRepository
	audit audit.Recorder
	cfg   *config.Config
}

func NewUserService(repo repository.UserRepository, recorder audit.Recorder, cfg *config.Config) UserService {
	return &userService{
		repo:  repo,
		audit: recorder,
		cfg:   cfg,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]model.Document, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list users", "error", err)
		return nil, apperrors.Internal("Failed to retrieve users", err)
	}
	return users, nil
}

// GetByEmail has no identifier-format constraint: the email is matched as
// given, and no match yields nil data, not an error.
func (s *userService) GetByEmail(ctx context.Context, email string) (model.Document, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("Email cannot be empty")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to retrieve user", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve user", err)
	}
	return user, nil
}

// Create stamps new users with the default role after merging the payload.
func (s *userService) Create(ctx context.Context, payload model.Document) (*model.CreateResult, error) {
	doc := make(model.Document, len(payload)+3)
	for k, v := range payload {
		doc[k] = v
	}
	ts := now()
	doc[model.FieldRole] = model.RoleUser
	doc[model.FieldCreatedAt] = ts
	doc[model.FieldUpdatedAt] = ts

	oid, err := s.repo.Insert(ctx, doc)
	if err != nil {
		s.cfg.Log.Error("Failed to create user", "error", err)
		return nil, apperrors.Internal("Failed to create user", err)
	}

	s.audit.Record(ctx, entityName, audit.ActionCreated, oid.Hex())
	s.cfg.Log.Info("User created successfully", "id", oid.Hex())
	return &model.CreateResult{InsertedID: oid.Hex()}, nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
