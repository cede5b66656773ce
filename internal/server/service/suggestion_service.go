package service

import (
	"context"
	"fmt"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/repository"
)

type SuggestionService struct {
	repo repository.SuggestionRepository
}

func NewSuggestionService(repo repository.SuggestionRepository) *SuggestionService {
	return &SuggestionService{repo: repo}
}

func (s *SuggestionService) Create(ctx context.Context, authorID uint, req models.CreateSuggestionRequest) (*models.Suggestion, error) {
	suggestion := &models.Suggestion{
		CommunityID: req.CommunityID,
		CreatedByID: authorID,
		Title:       req.Title,
		Description: req.Description,
		Reason:      req.Reason,
		Status:      models.StatusPending,
	}

	if err := s.repo.Create(ctx, suggestion); err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}

	return suggestion, nil
}

func (s *SuggestionService) List(ctx context.Context, communityID uint) ([]models.Suggestion, error) {
	return s.repo.List(ctx, communityID)
}
