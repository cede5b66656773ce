package handlers

import (
	"net/http"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/service"
	"invest-service/internal/voting"
	"invest-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type ProposalHandler struct {
	votableHandler
	proposalService *service.ProposalService
}

func NewProposalHandler(proposalService *service.ProposalService, votingService *service.VotingService) *ProposalHandler {
	return &ProposalHandler{
		votableHandler:  votableHandler{kind: voting.KindProposal, votingService: votingService},
		proposalService: proposalService,
	}
}

// @Summary Submit a proposal
// @Description Create a proposal in pending status
// @Tags proposals
// @Accept json
// @Produce json
// @Param request body models.CreateProposalRequest true "Proposal Request"
// @Success 201 {object} models.Proposal
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Security BearerAuth
// @Router /proposals [post]
func (h *ProposalHandler) CreateProposal(c *gin.Context) {
	authorID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req models.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposal, err := h.proposalService.Create(c.Request.Context(), authorID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, proposal)
}

// @Summary List proposals
// @Description All proposals with embedded votes, optionally scoped to a community
// @Tags proposals
// @Produce json
// @Param community query int false "Community ID"
// @Success 200 {array} models.Proposal
// @Failure 500 {object} map[string]string
// @Router /proposals [get]
func (h *ProposalHandler) ListProposals(c *gin.Context) {
	communityID, ok := communityScope(c)
	if !ok {
		return
	}

	proposals, err := h.proposalService.List(c.Request.Context(), communityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, proposals)
}
