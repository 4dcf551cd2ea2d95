package api

import (
	"net/http"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/reservation"
	"github.com/Domenick1991/hotelbooking/internal/service/rooms"
	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	service      rooms.RoomUseCase
	reservations reservation.ReservationUseCase
}

type roomRequest struct {
	Number     string `json:"number"`
	Type       string `json:"type"`
	PriceCents int64  `json:"price_cents"`
}

type roomResponse struct {
	ID         int64  `json:"id"`
	Number     string `json:"number"`
	Type       string `json:"type"`
	PriceCents int64  `json:"price_cents"`
	Status     string `json:"status"`
}

func NewRoomHandler(service rooms.RoomUseCase, reservations reservation.ReservationUseCase) *RoomHandler {
	return &RoomHandler{service: service, reservations: reservations}
}

func (h *RoomHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/available", h.available)
	router.GET("/:id", h.get)
	router.POST("/", h.create)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
	router.POST("/:id/maintenance", h.setMaintenance)
	router.DELETE("/:id/maintenance", h.clearMaintenance)
}

func (h *RoomHandler) list(c *gin.Context) {
	all, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(all))
}

// available lists rooms bookable for the requested half-open date range.
func (h *RoomHandler) available(c *gin.Context) {
	checkIn, err := time.Parse(domain.DateLayout, c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_in date"})
		return
	}
	checkOut, err := time.Parse(domain.DateLayout, c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid check_out date"})
		return
	}

	available, err := h.reservations.AvailableRooms(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponses(available))
}

func (h *RoomHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(room))
}

func (h *RoomHandler) create(c *gin.Context) {
	input, ok := bindRoomInput(c)
	if !ok {
		return
	}
	created, err := h.service.Add(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toRoomResponse(created))
}

func (h *RoomHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	input, ok := bindRoomInput(c)
	if !ok {
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(updated))
}

func (h *RoomHandler) remove(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RoomHandler) setMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := h.service.SetMaintenance(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(room))
}

func (h *RoomHandler) clearMaintenance(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	room, err := h.service.ClearMaintenance(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toRoomResponse(room))
}

func bindRoomInput(c *gin.Context) (rooms.RoomInput, bool) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return rooms.RoomInput{}, false
	}
	return rooms.RoomInput{
		Number:     req.Number,
		Type:       domain.RoomType(req.Type),
		PriceCents: req.PriceCents,
	}, true
}

func toRoomResponse(room *domain.Room) roomResponse {
	return roomResponse{
		ID:         room.ID,
		Number:     room.Number,
		Type:       string(room.Type),
		PriceCents: room.PriceCents,
		Status:     string(room.Status),
	}
}

func toRoomResponses(all []domain.Room) []roomResponse {
	out := make([]roomResponse, 0, len(all))
	for i := range all {
		out = append(out, toRoomResponse(&all[i]))
	}
	return out
}
