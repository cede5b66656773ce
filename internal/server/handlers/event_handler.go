package handlers

import (
	"net/http"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/service"
	"invest-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService *service.EventService
}

func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param request body models.CreateEventRequest true "Event Request"
// @Success 201 {object} models.Event
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	creatorID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), creatorID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// @Summary List events
// @Tags events
// @Produce json
// @Param community query int false "Community ID"
// @Success 200 {array} models.Event
// @Failure 500 {object} map[string]string
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	communityID, ok := communityScope(c)
	if !ok {
		return
	}

	events, err := h.eventService.List(c.Request.Context(), communityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// @Summary RSVP to an event
// @Description Record or replace the caller's reply (going / not-going)
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param request body models.RsvpRequest true "RSVP Request"
// @Success 200 {object} models.Event
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /events/{id}/rsvp [post]
func (h *EventHandler) Rsvp(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.RsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.eventService.Rsvp(c.Request.Context(), id, userID, req.Reply)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}
