package handlers

import (
	"net/http"
	"strconv"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/middleware"
	"invest-service/internal/server/service"
	"invest-service/internal/voting"
	"invest-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// votableHandler carries the vote endpoints shared by all three entity
// kinds; the per-kind handlers embed it with their kind filled in.
type votableHandler struct {
	kind          voting.Kind
	votingService *service.VotingService
}

// @Summary Cast a vote
// @Description Record or replace the caller's vote on an entity. userId may be a member id or an email; when omitted the authenticated member votes.
// @Tags voting
// @Accept json
// @Produce json
// @Param id path int true "Entity ID"
// @Param request body models.CastVoteRequest true "Vote Request"
// @Success 200 {object} object "updated entity with embedded votes"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/{id}/vote [post]
// @Router /suggestions/{id}/vote [post]
// @Router /assistance/{id}/vote [post]
func (h *votableHandler) CastVote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voterRef := req.UserID
	if voterRef == "" {
		if user, err := middleware.GetUserFromContext(c.Request.Context()); err == nil {
			voterRef = strconv.FormatUint(uint64(user.ID), 10)
		}
	}

	entity, err := h.votingService.CastVote(c.Request.Context(), h.kind, id, voterRef, req.Vote)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}

// @Summary List entities with vote tallies
// @Description Entities open for voting, with per-choice counts recomputed from the vote lists
// @Tags voting
// @Produce json
// @Param community query int false "Community ID"
// @Success 200 {array} object
// @Failure 500 {object} map[string]string
// @Router /proposals/votes [get]
// @Router /assistance/votes [get]
func (h *votableHandler) Votes(c *gin.Context) {
	communityID, ok := communityScope(c)
	if !ok {
		return
	}

	rows, err := h.votingService.VotingData(c.Request.Context(), h.kind, communityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// @Summary Update entity status
// @Description Admin transition between pending, voting, approved and rejected
// @Tags voting
// @Accept json
// @Produce json
// @Param id path int true "Entity ID"
// @Param request body models.UpdateStatusRequest true "Status Request"
// @Success 200 {object} object
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /proposals/{id}/status [put]
// @Router /suggestions/{id}/status [put]
// @Router /assistance/{id}/status [put]
func (h *votableHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entity, err := h.votingService.UpdateStatus(c.Request.Context(), h.kind, id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, entity)
}
