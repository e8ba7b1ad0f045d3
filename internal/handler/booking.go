package handler

import (
	"net/http"

	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/stpnv0/LazyReserve/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// CreateBooking is public: visitors book through the shared link.
func (h *Handler) CreateBooking(c *ginext.Context) {
	sessionID, ok := pathID(c, "sessionId", "session")
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), sessionID, domain.CreateBookingInput{
		VisitorName:  req.VisitorName,
		VisitorEmail: req.VisitorEmail,
		VisitorPhone: req.VisitorPhone,
		Notes:        req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPublicBookingResponse(booking))
}

func (h *Handler) ListSessionBookings(c *ginext.Context) {
	sessionID, ok := pathID(c, "sessionId", "session")
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListBySession(c.Request.Context(), sessionID, currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByOwner(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id, currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, currentUser(c), req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id, ok := pathID(c, "id", "booking")
	if !ok {
		return
	}

	if err := h.bookingService.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func toBookingResponses(bookings []*domain.BookingDetails) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}
