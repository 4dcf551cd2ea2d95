package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/service/payments"
	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service payments.PaymentUseCase
}

type paymentUpdateRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
}

type paymentResponse struct {
	ID            int64  `json:"id"`
	ReservationID int64  `json:"reservation_id"`
	AmountCents   int64  `json:"amount_cents"`
	Method        string `json:"method"`
	PaidAt        string `json:"paid_at"`
}

func NewPaymentHandler(service payments.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{service: service}
}

func (h *PaymentHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.POST("/", h.record)
	router.PUT("/:id", h.update)
	router.DELETE("/:id", h.remove)
}

func (h *PaymentHandler) list(c *gin.Context) {
	if reservationParam := c.Query("reservation_id"); reservationParam != "" {
		reservationID, err := strconv.ParseInt(reservationParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation_id"})
			return
		}
		found, err := h.service.ListByReservation(c.Request.Context(), reservationID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, toPaymentResponses(found))
		return
	}

	all, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaymentResponses(all))
}

func (h *PaymentHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	payment, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaymentResponse(payment))
}

func (h *PaymentHandler) record(c *gin.Context) {
	var input payments.PaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	recorded, err := h.service.Record(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPaymentResponse(recorded))
}

func (h *PaymentHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req paymentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.service.Update(c.Request.Context(), id, req.AmountCents, domain.PaymentMethod(req.Method))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaymentResponse(updated))
}

func (h *PaymentHandler) remove(c *gin.Context) {
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

func toPaymentResponse(payment *domain.Payment) paymentResponse {
	return paymentResponse{
		ID:            payment.ID,
		ReservationID: payment.ReservationID,
		AmountCents:   payment.AmountCents,
		Method:        string(payment.Method),
		PaidAt:        payment.PaidAt.Format(time.RFC3339),
	}
}

func toPaymentResponses(all []domain.Payment) []paymentResponse {
	out := make([]paymentResponse, 0, len(all))
	for i := range all {
		out = append(out, toPaymentResponse(&all[i]))
	}
	return out
}
