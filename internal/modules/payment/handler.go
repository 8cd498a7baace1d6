package payment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"housequay/internal/middleware"
	"housequay/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts authenticated payment endpoints.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/checkout", h.CreateCheckout)
	rg.GET("/bookings/:id/payments", h.ListForBooking)
}

// RegisterCallbackRoutes mounts the processor-facing callback. The
// processor does not hold a user token, so this lives outside JWT auth.
func (h *Handler) RegisterCallbackRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/callback", h.ProviderCallback)
}

func (h *Handler) CreateCheckout(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	out, err := h.service.CreateCheckout(c.Request.Context(), actor, req.BookingID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"checkout": out})
}

func (h *Handler) ProviderCallback(c *gin.Context) {
	var result ProviderResult
	if err := c.ShouldBindJSON(&result); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid callback body")
		return
	}

	if err := h.service.HandleProviderResult(c.Request.Context(), result); err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"acknowledged": true})
}

func (h *Handler) ListForBooking(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	sessions, err := h.service.ListForBooking(c.Request.Context(), actor, id)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payments": sessions})
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payment request")
	case ErrNotPayable:
		response.Error(c, http.StatusBadRequest, "NOT_PAYABLE", "Booking is not in a payable state")
	case ErrAlreadyPaid:
		response.Error(c, http.StatusBadRequest, "ALREADY_PAID", "Booking is already paid")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot act on this booking")
	case ErrBookingGone, ErrNotFound, ErrUnknownSession:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
