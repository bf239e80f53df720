package identity

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParse(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		id        string
		wantError bool
	}{
		{
			name:      "valid object id",
			id:        "507f1f77bcf86cd799439011",
			wantError: false,
		},
		{
			name:      "empty",
			id:        "",
			wantError: true,
		},
		{
			name:      "too short",
			id:        "507f1f77bcf86cd7994390",
			wantError: true,
		},
		{
			name:      "too long",
			id:        "507f1f77bcf86cd79943901122",
			wantError: true,
		},
		{
			name:      "non-hex characters",
			id:        "507f1f77bcf86cd79943901z",
			wantError: true,
		},
		{
			name:      "arbitrary string",
			id:        "not-an-id",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oid, err := v.Parse(tt.id)

			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error for id %q, got none", tt.id)
				}
				if !IsMalformed(err) {
					t.Errorf("expected ErrMalformedID, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error for id %q: %v", tt.id, err)
			}
			if oid == primitive.NilObjectID {
				t.Errorf("expected a parsed ObjectID, got nil ObjectID")
			}
		})
	}
}
