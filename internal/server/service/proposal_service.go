package service

import (
	"context"
	"fmt"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/repository"
)

type ProposalService struct {
	repo repository.ProposalRepository
}

func NewProposalService(repo repository.ProposalRepository) *ProposalService {
	return &ProposalService{repo: repo}
}

// Create submits a new proposal; it starts in pending until an admin
// opens it for voting.
func (s *ProposalService) Create(ctx context.Context, authorID uint, req models.CreateProposalRequest) (*models.Proposal, error) {
	proposal := &models.Proposal{
		CommunityID: req.CommunityID,
		CreatedByID: authorID,
		Title:       req.Title,
		Description: req.Description,
		Status:      models.StatusPending,
	}

	if err := s.repo.Create(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	return proposal, nil
}

func (s *ProposalService) List(ctx context.Context, communityID uint) ([]models.Proposal, error) {
	return s.repo.List(ctx, communityID)
}
