package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps domain errors onto HTTP statuses: validation failures
// are 400, unknown ids 404, booking conflicts and bad lifecycle states
// 409, anything else a 500 from the storage layer.
func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrCustomerNotFound),
		errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrRoomLocked),
		errors.Is(err, domain.ErrRoomOccupied),
		errors.Is(err, domain.ErrRoomNumberTaken),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrDatesRequired),
		errors.Is(err, domain.ErrCheckOutNotAfterCheckIn),
		errors.Is(err, domain.ErrCheckInInPast),
		errors.Is(err, domain.ErrRoomNumberRequired),
		errors.Is(err, domain.ErrInvalidRoomType),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrNameRequired),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPaymentMethod):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
