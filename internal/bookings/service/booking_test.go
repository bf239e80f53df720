package service

import (
	"context"
	"io"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Rad0130/event-planner-server/internal/audit"
	"github.com/Rad0130/event-planner-server/pkg/config"
	apperrors "github.com/Rad0130/event-planner-server/pkg/errors"
	"github.com/Rad0130/event-planner-server/pkg/identity"
	"github.com/Rad0130/event-planner-server/pkg/logger"
	"github.com/Rad0130/event-planner-server/pkg/model"
)

type bookingRepositoryMock struct {
	findAllFunc         func(ctx context.Context) ([]model.Document, error)
	findByUserEmailFunc func(ctx context.Context, email string) ([]model.Document, error)
	insertFunc          func(ctx context.Context, doc model.Document) (primitive.ObjectID, error)
	setFunc             func(ctx context.Context, id primitive.ObjectID, fields model.Document) (*mongo.UpdateResult, error)
	deleteFunc          func(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

func (m *bookingRepositoryMock) FindAll(ctx context.Context) ([]model.Document, error) {
	return m.findAllFunc(ctx)
}

func (m *bookingRepositoryMock) FindByUserEmail(ctx context.Context, email string) ([]model.Document, error) {
	return m.findByUserEmailFunc(ctx, email)
}

func (m *bookingRepositoryMock) Insert(ctx context.Context, doc model.Document) (primitive.ObjectID, error) {
	return m.insertFunc(ctx, doc)
}

func (m *bookingRepositoryMock) Set(ctx context.Context, id primitive.ObjectID, fields model.Document) (*mongo.UpdateResult, error) {
	return m.setFunc(ctx, id, fields)
}

func (m *bookingRepositoryMock) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	return m.deleteFunc(ctx, id)
}

type auditRecorderMock struct {
	records []string
}

func (m *auditRecorderMock) Record(_ context.Context, entity, action, _ string) {
	m.records = append(m.records, entity+"."+action)
}

func (m *auditRecorderMock) Close() error { return nil }

func newTestService(repo *bookingRepositoryMock, recorder audit.Recorder) BookingService {
	cfg := &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
	return NewBookingService(repo, identity.NewValidator(), recorder, cfg)
}

func TestBookingService_Create_ForcesPendingStatus(t *testing.T) {
	var stored model.Document
	repo := &bookingRepositoryMock{
		insertFunc: func(_ context.Context, doc model.Document) (primitive.ObjectID, error) {
			stored = doc
			return primitive.NewObjectID(), nil
		},
	}
	svc := newTestService(repo, &auditRecorderMock{})

	_, err := svc.Create(context.Background(), model.Document{
		"eventId":   "abc",
		"userEmail": "guest@example.com",
		"status":    model.BookingConfirmed,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if stored[model.FieldStatus] != model.BookingPending {
		t.Errorf("stored status = %v, want %q", stored[model.FieldStatus], model.BookingPending)
	}
	if stored["userEmail"] != "guest@example.com" {
		t.Errorf("stored userEmail = %v, payload field lost", stored["userEmail"])
	}
	if _, ok := stored[model.FieldCreatedAt].(time.Time); !ok {
		t.Error("createdAt not stamped on create")
	}
}

func TestBookingService_GetByUserEmail(t *testing.T) {
	docs := []model.Document{{"eventId": "abc"}}
	var gotEmail string
	repo := &bookingRepositoryMock{
		findByUserEmailFunc: func(_ context.Context, email string) ([]model.Document, error) {
			gotEmail = email
			return docs, nil
		},
	}
	svc := newTestService(repo, &auditRecorderMock{})

	result, err := svc.GetByUserEmail(context.Background(), "guest@example.com")
	if err != nil {
		t.Fatalf("GetByUserEmail() error = %v", err)
	}
	if gotEmail != "guest@example.com" {
		t.Errorf("repository queried with %q", gotEmail)
	}
	if len(result) != 1 {
		t.Errorf("len(result) = %d, want 1", len(result))
	}
}

func TestBookingService_GetByUserEmail_EmptyEmail(t *testing.T) {
	repo := &bookingRepositoryMock{
		findByUserEmailFunc: func(context.Context, string) ([]model.Document, error) {
			t.Fatal("store must not be reached for an empty email")
			return nil, nil
		},
	}
	svc := newTestService(repo, &auditRecorderMock{})

	_, err := svc.GetByUserEmail(context.Background(), "")
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("code = %q, want %q", appErr.Code, apperrors.CodeInvalidInput)
	}
}

func TestBookingService_UpdateStatus_WritesNarrowFieldSet(t *testing.T) {
	var fields model.Document
	repo := &bookingRepositoryMock{
		setFunc: func(_ context.Context, _ primitive.ObjectID, f model.Document) (*mongo.UpdateResult, error) {
			fields = f
			return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	recorder := &auditRecorderMock{}
	svc := newTestService(repo, recorder)

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), &model.BookingUpdate{
		Status: model.BookingConfirmed,
	})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	if fields[model.FieldStatus] != model.BookingConfirmed {
		t.Errorf("status = %v, want %q", fields[model.FieldStatus], model.BookingConfirmed)
	}
	// adminNotes is always written, defaulting to empty.
	if fields[model.FieldAdminNotes] != "" {
		t.Errorf("adminNotes = %v, want empty string", fields[model.FieldAdminNotes])
	}
	if _, ok := fields[model.FieldUpdatedAt].(time.Time); !ok {
		t.Error("updatedAt not stamped")
	}
	if len(fields) != 3 {
		t.Errorf("len(fields) = %d, want exactly status, adminNotes and updatedAt", len(fields))
	}

	if len(recorder.records) != 1 || recorder.records[0] != "booking."+audit.ActionUpdated {
		t.Errorf("audit records = %v", recorder.records)
	}
}

func TestBookingService_UpdateStatus_MalformedID(t *testing.T) {
	repo := &bookingRepositoryMock{
		setFunc: func(context.Context, primitive.ObjectID, model.Document) (*mongo.UpdateResult, error) {
			t.Fatal("store must not be reached for a malformed id")
			return nil, nil
		},
	}
	svc := newTestService(repo, &auditRecorderMock{})

	_, err := svc.UpdateStatus(context.Background(), "12345", &model.BookingUpdate{Status: model.BookingCancelled})
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInvalidInput {
		t.Errorf("code = %q, want %q", appErr.Code, apperrors.CodeInvalidInput)
	}
}

func TestBookingService_Delete_ReportsCount(t *testing.T) {
	repo := &bookingRepositoryMock{
		deleteFunc: func(context.Context, primitive.ObjectID) (*mongo.DeleteResult, error) {
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		},
	}
	recorder := &auditRecorderMock{}
	svc := newTestService(repo, recorder)

	result, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if result.DeletedCount != 1 {
		t.Errorf("DeletedCount = %d, want 1", result.DeletedCount)
	}
	if len(recorder.records) != 1 || recorder.records[0] != "booking."+audit.ActionDeleted {
		t.Errorf("audit records = %v", recorder.records)
	}
}
