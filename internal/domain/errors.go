package domain

import "errors"

// Validation failures.
var (
	ErrDatesRequired           = errors.New("check-in and check-out dates are required")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")
	ErrCheckInInPast           = errors.New("check-in cannot be in the past")
	ErrRoomNumberRequired      = errors.New("room number is required")
	ErrRoomNumberTaken         = errors.New("room number is already in use")
	ErrInvalidRoomType         = errors.New("unknown room type")
	ErrInvalidPrice            = errors.New("price must not be negative")
	ErrNameRequired            = errors.New("full name is required")
	ErrInvalidAmount           = errors.New("amount must be positive")
	ErrInvalidPaymentMethod    = errors.New("unknown payment method")
)

// Not-found conditions.
var (
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrPaymentNotFound     = errors.New("payment not found")
)

// Conflicts.
var (
	ErrRoomUnavailable = errors.New("room is already booked for these dates")
	ErrRoomLocked      = errors.New("room is being booked by another request")
	ErrRoomOccupied    = errors.New("room has active reservations")
)

// ErrInvalidTransition is returned when check-in or check-out is requested
// from a state the lifecycle does not allow it from.
var ErrInvalidTransition = errors.New("reservation is not in a valid state for this operation")
