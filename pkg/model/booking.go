package model

// Conventional booking status values. New bookings start as pending.
// The domain is a convention only: any string a caller supplies is stored
// as given, nothing rejects values outside this set.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// BookingUpdate is the narrow update shape for bookings: only these fields
// are ever written, whatever else the caller's payload contains.
type BookingUpdate struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}
