package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Rad0130/event-planner-server/internal/audit"
	"github.com/Rad0130/event-planner-server/pkg/config"
	apperrors "github.com/Rad0130/event-planner-server/pkg/errors"
	"github.com/Rad0130/event-planner-server/pkg/logger"
	"github.com/Rad0130/event-planner-server/pkg/model"
)

type userRepositoryMock struct {
	findAllFunc     func(ctx context.Context) ([]model.Document, error)
	findByEmailFunc func(ctx context.Context, email string) (model.Document, error)
	insertFunc      func(ctx context.Context, doc model.Document) (primitive.ObjectID, error)
}

func (m *userRepositoryMock) FindAll(ctx context.Context) ([]model.Document, error) {
	return m.findAllFunc(ctx)
}

func (m *userRepositoryMock) FindByEmail(ctx context.Context, email string) (model.Document, error) {
	return m.findByEmailFunc(ctx, email)
}

func (m *userRepositoryMock) Insert(ctx context.Context, doc model.Document) (primitive.ObjectID, error) {
	return m.insertFunc(ctx, doc)
}

type auditRecorderMock struct {
	records []string
}

func (m *auditRecorderMock) Record(_ context.Context, entity, action, _ string) {
	m.records = append(m.records, entity+"."+action)
}

func (m *auditRecorderMock) Close() error { return nil }

func newTestService(repo *userRepositoryMock, recorder audit.Recorder) UserService {
	cfg := &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
	return NewUserService(repo, recorder, cfg)
}

func TestUserService_Create_ForcesDefaultRole(t *testing.T) {
	var stored model.Document
	repo := &userRepositoryMock{
		insertFunc: func(_ context.Context, doc model.Document) (primitive.ObjectID, error) {
			stored = doc
			return primitive.NewObjectID(), nil
		},
	}
	recorder := &auditRecorderMock{}
	svc := newTestService(repo, recorder)

	_, err := svc.Create(context.Background(), model.Document{
		"name":  "Sam",
		"email": "sam@example.com",
		"role":  model.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if stored[model.FieldRole] != model.RoleUser {
		t.Errorf("stored role = %v, want %q", stored[model.FieldRole], model.RoleUser)
	}
	if stored["email"] != "sam@example.com" {
		t.Errorf("stored email = %v, payload field lost", stored["email"])
	}
	if len(recorder.records) != 1 || recorder.records[0] != "user."+audit.ActionCreated {
		t.Errorf("audit records = %v", recorder.records)
	}
}

func TestUserService_GetByEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		repoDoc model.Document
		wantNil bool
		wantErr string
	}{
		{
			name:    "known user",
			email:   "sam@example.com",
			repoDoc: model.Document{"email": "sam@example.com"},
		},
		{
			name:    "unknown user yields nil data",
			email:   "nobody@example.com",
			wantNil: true,
		},
		{
			name:    "empty email rejected",
			email:   "",
			wantErr: apperrors.CodeInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &userRepositoryMock{
				findByEmailFunc: func(_ context.Context, email string) (model.Document, error) {
					if tt.email == "" {
						t.Fatal("store must not be reached for an empty email")
					}
					return tt.repoDoc, nil
				},
			}
			svc := newTestService(repo, &auditRecorderMock{})

			doc, err := svc.GetByEmail(context.Background(), tt.email)
			if tt.wantErr != "" {
				appErr := apperrors.AsAppError(err)
				if appErr.Code != tt.wantErr {
					t.Errorf("code = %q, want %q", appErr.Code, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetByEmail() error = %v", err)
			}
			if tt.wantNil && doc != nil {
				t.Errorf("GetByEmail() = %v, want nil", doc)
			}
			if !tt.wantNil && doc == nil {
				t.Error("GetByEmail() = nil, want document")
			}
		})
	}
}

func TestUserService_GetAll_StoreFailure(t *testing.T) {
	repo := &userRepositoryMock{
		findAllFunc: func(context.Context) ([]model.Document, error) {
			return nil, errors.New("server selection timeout")
		},
	}
	svc := newTestService(repo, &auditRecorderMock{})

	_, err := svc.GetAll(context.Background())
	appErr := apperrors.AsAppError(err)
	if appErr.Code != apperrors.CodeInternal {
		t.Errorf("code = %q, want %q", appErr.Code, apperrors.CodeInternal)
	}
	if appErr.StatusCode() != 500 {
		t.Errorf("status = %d, want 500", appErr.StatusCode())
	}
}
