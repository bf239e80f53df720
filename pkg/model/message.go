package model

// Conventional message status values. New messages start as unread.
const (
	MessageUnread  = "unread"
	MessageRead    = "read"
	MessageReplied = "replied"
)

// MessageUpdate is the narrow update shape for messages.
type MessageUpdate struct {
	Status     string `json:"status"`
	AdminReply string `json:"adminReply"`
}
