package service

import (
	"context"
	"fmt"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/repository"
)

type CommunityService struct {
	repo repository.CommunityRepository
}

func NewCommunityService(repo repository.CommunityRepository) *CommunityService {
	return &CommunityService{repo: repo}
}

func (s *CommunityService) Create(ctx context.Context, creatorID uint, req models.CreateCommunityRequest) (*models.Community, error) {
	community := &models.Community{
		Name:        req.Name,
		Description: req.Description,
		CreatedByID: creatorID,
	}

	if err := s.repo.Create(ctx, community); err != nil {
		return nil, fmt.Errorf("failed to create community: %w", err)
	}

	return community, nil
}

func (s *CommunityService) List(ctx context.Context) ([]models.Community, error) {
	return s.repo.FindAll(ctx)
}
