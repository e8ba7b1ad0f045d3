package handler

import (
	"net/http"

	"github.com/stpnv0/LazyReserve/internal/domain"
	"github.com/stpnv0/LazyReserve/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateSession(c *ginext.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := parseTime("start_time", req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	end, err := parseTime("end_time", req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	session, err := h.sessionService.Create(c.Request.Context(), currentUser(c), domain.CreateSessionInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		StartTime:   start,
		EndTime:     end,
		MaxBookings: req.MaxBookings,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSessionResponse(session))
}

func (h *Handler) ListSessions(c *ginext.Context) {
	sessions, err := h.sessionService.ListByOwner(c.Request.Context(), currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		resp = append(resp, dto.ToSessionResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetSession(c *ginext.Context) {
	id, ok := pathID(c, "id", "session")
	if !ok {
		return
	}

	session, err := h.sessionService.Get(c.Request.Context(), id, currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *Handler) UpdateSession(c *ginext.Context) {
	id, ok := pathID(c, "id", "session")
	if !ok {
		return
	}

	var req dto.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateSessionInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		MaxBookings: req.MaxBookings,
	}
	if req.StartTime != nil {
		start, err := parseTime("start_time", *req.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		input.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := parseTime("end_time", *req.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}
		input.EndTime = &end
	}

	session, err := h.sessionService.Update(c.Request.Context(), id, currentUser(c), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *Handler) DeleteSession(c *ginext.Context) {
	id, ok := pathID(c, "id", "session")
	if !ok {
		return
	}

	if err := h.sessionService.Delete(c.Request.Context(), id, currentUser(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ToggleSession(c *ginext.Context) {
	id, ok := pathID(c, "id", "session")
	if !ok {
		return
	}

	session, err := h.sessionService.ToggleActive(c.Request.Context(), id, currentUser(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

func (h *Handler) GetPublicSession(c *ginext.Context) {
	id, ok := pathID(c, "id", "session")
	if !ok {
		return
	}

	session, err := h.sessionService.GetPublic(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPublicSessionResponse(session))
}
