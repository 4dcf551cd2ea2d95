package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/reservation"
	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	service reservation.ReservationUseCase
}

type reservationRequest struct {
	CustomerID int64  `json:"customer_id"`
	RoomID     int64  `json:"room_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Guests     int    `json:"guests"`
}

type reservationResponse struct {
	ID               int64  `json:"id"`
	ConfirmationCode string `json:"confirmation_code"`
	CustomerID       int64  `json:"customer_id"`
	RoomID           int64  `json:"room_id"`
	CheckIn          string `json:"check_in"`
	CheckOut         string `json:"check_out"`
	Guests           int    `json:"guests"`
	Status           string `json:"status"`
}

func NewReservationHandler(service reservation.ReservationUseCase) *ReservationHandler {
	return &ReservationHandler{service: service}
}

func (h *ReservationHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.cancel)
	router.POST("/:id/checkin", h.checkIn)
	router.POST("/:id/checkout", h.checkOut)
}

func (h *ReservationHandler) create(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toReservationResponse(created))
}

func (h *ReservationHandler) list(c *gin.Context) {
	if customerParam := c.Query("customer_id"); customerParam != "" {
		customerID, err := strconv.ParseInt(customerParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id"})
			return
		}
		reservations, err := h.service.ListByCustomer(c.Request.Context(), customerID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toReservationResponses(reservations))
		return
	}

	if roomParam := c.Query("room_id"); roomParam != "" {
		roomID, err := strconv.ParseInt(roomParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid room_id"})
			return
		}
		reservations, err := h.service.ListByRoom(c.Request.Context(), roomID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toReservationResponses(reservations))
		return
	}

	reservations, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponses(reservations))
}

func (h *ReservationHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(found))
}

func (h *ReservationHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(updated))
}

func (h *ReservationHandler) cancel(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	cancelled, err := h.service.Cancel(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(cancelled))
}

func (h *ReservationHandler) checkIn(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	checkedIn, err := h.service.CheckIn(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(checkedIn))
}

func (h *ReservationHandler) checkOut(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	checkedOut, err := h.service.CheckOut(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReservationResponse(checkedOut))
}

func (h *ReservationHandler) bindInput(c *gin.Context) (reservation.ReservationInput, bool) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return reservation.ReservationInput{}, false
	}

	input := reservation.ReservationInput{
		CustomerID: req.CustomerID,
		RoomID:     req.RoomID,
		Guests:     req.Guests,
	}
	if req.CheckIn != "" {
		checkIn, err := time.Parse(domain.DateLayout, req.CheckIn)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in date"})
			return reservation.ReservationInput{}, false
		}
		input.CheckIn = checkIn
	}
	if req.CheckOut != "" {
		checkOut, err := time.Parse(domain.DateLayout, req.CheckOut)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out date"})
			return reservation.ReservationInput{}, false
		}
		input.CheckOut = checkOut
	}
	return input, true
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func toReservationResponse(r *domain.Reservation) reservationResponse {
	return reservationResponse{
		ID:               r.ID,
		ConfirmationCode: r.ConfirmationCode,
		CustomerID:       r.CustomerID,
		RoomID:           r.RoomID,
		CheckIn:          r.CheckIn.Format(domain.DateLayout),
		CheckOut:         r.CheckOut.Format(domain.DateLayout),
		Guests:           r.Guests,
		Status:           string(r.Status),
	}
}

func toReservationResponses(reservations []domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(reservations))
	for i := range reservations {
		out = append(out, toReservationResponse(&reservations[i]))
	}
	return out
}
