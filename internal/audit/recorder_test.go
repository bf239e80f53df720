package audit

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestNoopRecorder(t *testing.T) {
	r := NewNoopRecorder()
	r.Record(context.Background(), "event", ActionCreated, "507f1f77bcf86cd799439011")
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestEntryJSONShape(t *testing.T) {
	entry := Entry{
		Entity:     "booking",
		Action:     ActionUpdated,
		ResourceID: "507f1f77bcf86cd799439011",
		OccurredAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"entity", "action", "resourceId", "occurredAt"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("marshaled entry missing %q", key)
		}
	}
	if fields["action"] != ActionUpdated {
		t.Errorf("action = %v, want %q", fields["action"], ActionUpdated)
	}
}
