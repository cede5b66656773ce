package handlers

import (
	"net/http"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/service"
	"invest-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	communityService *service.CommunityService
}

func NewCommunityHandler(communityService *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communityService: communityService}
}

// @Summary Create a community
// @Tags communities
// @Accept json
// @Produce json
// @Param request body models.CreateCommunityRequest true "Community Request"
// @Success 201 {object} models.Community
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /communities [post]
func (h *CommunityHandler) CreateCommunity(c *gin.Context) {
	creatorID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	community, err := h.communityService.Create(c.Request.Context(), creatorID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, community)
}

// @Summary List communities
// @Tags communities
// @Produce json
// @Success 200 {array} models.Community
// @Failure 500 {object} map[string]string
// @Router /communities [get]
func (h *CommunityHandler) ListCommunities(c *gin.Context) {
	communities, err := h.communityService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, communities)
}
