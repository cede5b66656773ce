package handlers

import (
	"net/http"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/service"
	"invest-service/internal/voting"
	"invest-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type AssistanceHandler struct {
	votableHandler
	assistanceService *service.AssistanceService
}

func NewAssistanceHandler(assistanceService *service.AssistanceService, votingService *service.VotingService) *AssistanceHandler {
	return &AssistanceHandler{
		votableHandler:    votableHandler{kind: voting.KindAssistance, votingService: votingService},
		assistanceService: assistanceService,
	}
}

// @Summary Submit an assistance request
// @Tags assistance
// @Accept json
// @Produce json
// @Param request body models.CreateAssistanceRequest true "Assistance Request"
// @Success 201 {object} models.AssistanceRequest
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /assistance [post]
func (h *AssistanceHandler) CreateRequest(c *gin.Context) {
	authorID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.CreateAssistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.assistanceService.Create(c.Request.Context(), authorID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// @Summary List assistance requests
// @Tags assistance
// @Produce json
// @Param community query int false "Community ID"
// @Success 200 {array} models.AssistanceRequest
// @Failure 500 {object} map[string]string
// @Router /assistance [get]
func (h *AssistanceHandler) ListRequests(c *gin.Context) {
	communityID, ok := communityScope(c)
	if !ok {
		return
	}

	requests, err := h.assistanceService.List(c.Request.Context(), communityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}
