package handler

import (
	"betmachine/internal/core/ports"
	"betmachine/pkg/response"

	"github.com/gin-gonic/gin"
)

// EventHandler serves the cached event board.
type EventHandler struct {
	eventSvc ports.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventSvc ports.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

// Events handles GET /api/events. The optional sport query filters by
// category; a stale snapshot refreshes synchronously first.
func (h *EventHandler) Events(c *gin.Context) {
	events, updated, err := h.eventSvc.Events(c.Request.Context(), c.Query("sport"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"events":  events,
		"updated": updated.Unix(),
		"total":   len(events),
	})
}

// RefreshEvents handles GET /api/events/refresh: a forced synchronous
// refresh regardless of snapshot age.
func (h *EventHandler) RefreshEvents(c *gin.Context) {
	if err := h.eventSvc.Refresh(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}

	events, updated, err := h.eventSvc.Events(c.Request.Context(), c.Query("sport"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{
		"events":  events,
		"updated": updated.Unix(),
		"total":   len(events),
	})
}
