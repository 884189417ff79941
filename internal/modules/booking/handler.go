package booking

import (
	"context"
	"net/http"
	"strconv"

	"eventstay/internal/domain"
	"eventstay/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type bookingService interface {
	GetBooking(ctx context.Context, userID int64) (*domain.Booking, error)
	CreateBooking(ctx context.Context, userID, roomID int64) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, userID, roomID, bookingID int64) (*domain.Booking, error)
}

type Handler struct {
	service bookingService
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects rg to run after the auth middleware, which puts
// the caller's id under "user_id".
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/booking", h.GetBooking)
	rg.POST("/booking", h.CreateBooking)
	rg.PUT("/booking/:bookingId", h.UpdateBooking)
}

func (h *Handler) GetBooking(c *gin.Context) {
	b, err := h.service.GetBooking(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toBookingView(b))
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req BookingRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "roomId must be a positive integer")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), c.GetInt64("user_id"), req.RoomID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, BookingIDResponse{BookingID: b.ID})
}

func (h *Handler) UpdateBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	var req BookingRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "roomId must be a positive integer")
		return
	}

	b, err := h.service.UpdateBooking(c.Request.Context(), c.GetInt64("user_id"), req.RoomID, bookingID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, BookingIDResponse{BookingID: b.ID})
}

func writeError(c *gin.Context, err error) {
	switch KindOf(err) {
	case KindNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case KindForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}
