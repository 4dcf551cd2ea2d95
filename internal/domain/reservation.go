package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusBooked    ReservationStatus = "BOOKED"
	ReservationStatusCheckedIn ReservationStatus = "CHECKED_IN"
	ReservationStatusCompleted ReservationStatus = "COMPLETED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// IsActive reports whether a reservation in this status counts toward
// room occupancy and overlap conflicts.
func (s ReservationStatus) IsActive() bool {
	return s == ReservationStatusBooked || s == ReservationStatusCheckedIn
}

// Reservation holds a stay for a room over the half-open date range
// [CheckIn, CheckOut).
type Reservation struct {
	ID               int64
	CustomerID       int64
	RoomID           int64
	ConfirmationCode string
	CheckIn          time.Time
	CheckOut         time.Time
	Guests           int
	Status           ReservationStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
