package service

import (
	"context"
	"fmt"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/repository"
)

type AssistanceService struct {
	repo repository.AssistanceRepository
}

func NewAssistanceService(repo repository.AssistanceRepository) *AssistanceService {
	return &AssistanceService{repo: repo}
}

func (s *AssistanceService) Create(ctx context.Context, authorID uint, req models.CreateAssistanceRequest) (*models.AssistanceRequest, error) {
	request := &models.AssistanceRequest{
		CommunityID: req.CommunityID,
		CreatedByID: authorID,
		Title:       req.Title,
		Reason:      req.Reason,
		Status:      models.StatusPending,
	}

	if err := s.repo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create assistance request: %w", err)
	}

	return request, nil
}

func (s *AssistanceService) List(ctx context.Context, communityID uint) ([]models.AssistanceRequest, error) {
	return s.repo.List(ctx, communityID)
}
