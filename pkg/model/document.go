package model

// Document is an open, caller-supplied mapping of named fields. The facade
// stores whatever the caller sends; only the lifecycle fields below are
// guaranteed to exist on every stored document.
type Document map[string]any

// Lifecycle and convention fields shared across collections.
const (
	FieldID         = "_id"
	FieldCreatedAt  = "createdAt"
	FieldUpdatedAt  = "updatedAt"
	FieldStatus     = "status"
	FieldRole       = "role"
	FieldEmail      = "email"
	FieldUserEmail  = "userEmail"
	FieldAdminNotes = "adminNotes"
	FieldAdminReply = "adminReply"
)

// CreateResult is the acknowledgement for an insert: the store-assigned
// identity of the new document.
type CreateResult struct {
	InsertedID string `json:"insertedId"`
}

// UpdateResult reports how many documents an update matched and modified.
// Zero matches is a normal outcome, not a failure.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many documents a delete removed (0 or 1).
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
