package handlers

import (
	"net/http"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/service"
	"invest-service/internal/voting"
	"invest-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// SuggestionHandler serves investment suggestions. Unlike proposals and
// assistance there is no /votes projection: clients derive suggestion
// tallies from the raw list.
type SuggestionHandler struct {
	votableHandler
	suggestionService *service.SuggestionService
}

func NewSuggestionHandler(suggestionService *service.SuggestionService, votingService *service.VotingService) *SuggestionHandler {
	return &SuggestionHandler{
		votableHandler:    votableHandler{kind: voting.KindSuggestion, votingService: votingService},
		suggestionService: suggestionService,
	}
}

// @Summary Submit an investment suggestion
// @Tags suggestions
// @Accept json
// @Produce json
// @Param request body models.CreateSuggestionRequest true "Suggestion Request"
// @Success 201 {object} models.Suggestion
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /suggestions [post]
func (h *SuggestionHandler) CreateSuggestion(c *gin.Context) {
	authorID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestion, err := h.suggestionService.Create(c.Request.Context(), authorID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, suggestion)
}

// @Summary List investment suggestions
// @Tags suggestions
// @Produce json
// @Param community query int false "Community ID"
// @Success 200 {array} models.Suggestion
// @Failure 500 {object} map[string]string
// @Router /suggestions [get]
func (h *SuggestionHandler) ListSuggestions(c *gin.Context) {
	communityID, ok := communityScope(c)
	if !ok {
		return
	}

	suggestions, err := h.suggestionService.List(c.Request.Context(), communityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, suggestions)
}
