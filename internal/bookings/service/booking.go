package service

import (
	"context"
	"time"

	"github.com/Rad0130/event-planner-server/internal/audit"
	"github.com/Rad0130/event-planner-server/internal/bookings/repository"
	"github.com/Rad0130/event-planner-server/pkg/config"
	apperrors "github.com/Rad0130/event-planner-server/pkg/errors"
	"github.com/Rad0130/event-planner-server/pkg/identity"
	"github.com/Rad0130/event-planner-server/pkg/model"
)

const entityName = "booking"

type BookingService interface {
	GetAll(ctx context.Context) ([]model.Document, error)
	GetByUserEmail(ctx context.Context, email string) ([]model.Document, error)
	Create(ctx context.Context, payload model.Document) (*model.CreateResult, error)
	UpdateStatus(ctx context.Context, id string, updates *model.BookingUpdate) (*model.UpdateResult, error)
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

type bookingService struct {
	repo  repository.BookingRepository
	ids   *identity.Validator
	audit audit.Recorder
	cfg   *config.Config
}

func NewBookingService(repo repository.BookingRepository, ids *identity.Validator, recorder audit.Recorder, cfg *config.Config) BookingService {
	return &bookingService{
		repo:  repo,
		ids:   ids,
		audit: recorder,
		cfg:   cfg,
	}
}

func (s *bookingService) GetAll(ctx context.Context) ([]model.Document, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) GetByUserEmail(ctx context.Context, email string) ([]model.Document, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("User email cannot be empty")
	}

	bookings, err := s.repo.FindByUserEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by user", "user_email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

// Create always starts a booking as pending: the status is stamped after the
// payload is merged, so a caller-supplied status is overwritten.
func (s *bookingService) Create(ctx context.Context, payload model.Document) (*model.CreateResult, error) {
	doc := make(model.Document, len(payload)+3)
	for k, v := range payload {
		doc[k] = v
	}
	ts := now()
	doc[model.FieldStatus] = model.BookingPending
	doc[model.FieldCreatedAt] = ts
	doc[model.FieldUpdatedAt] = ts

	oid, err := s.repo.Insert(ctx, doc)
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.audit.Record(ctx, entityName, audit.ActionCreated, oid.Hex())
	s.cfg.Log.Info("Booking created successfully", "id", oid.Hex())
	return &model.CreateResult{InsertedID: oid.Hex()}, nil
}

// UpdateStatus is the narrow update: exactly status, adminNotes and updatedAt
// are written, whatever else the caller sent. adminNotes defaults to the
// empty string when absent from the request.
func (s *bookingService) UpdateStatus(ctx context.Context, id string, updates *model.BookingUpdate) (*model.UpdateResult, error) {
	oid, err := s.ids.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid booking ID format")
	}

	fields := model.Document{
		model.FieldStatus:     updates.Status,
		model.FieldAdminNotes: updates.AdminNotes,
		model.FieldUpdatedAt:  now(),
	}

	result, err := s.repo.Set(ctx, oid, fields)
	if err != nil {
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update booking", err)
	}

	if result.MatchedCount > 0 {
		s.audit.Record(ctx, entityName, audit.ActionUpdated, id)
	}
	s.cfg.Log.Info("Booking update applied", "id", id, "status", updates.Status, "matched", result.MatchedCount)
	return &model.UpdateResult{
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := s.ids.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("Invalid booking ID format")
	}

	result, err := s.repo.Delete(ctx, oid)
	if err != nil {
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to delete booking", err)
	}

	if result.DeletedCount > 0 {
		s.audit.Record(ctx, entityName, audit.ActionDeleted, id)
	}
	s.cfg.Log.Info("Booking delete applied", "id", id, "deleted", result.DeletedCount)
	return &model.DeleteResult{DeletedCount: result.DeletedCount}, nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
