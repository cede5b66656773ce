package repository

import (
	"context"

	"invest-service/internal/ports/models"

	"gorm.io/gorm"
)

type CommunityRepository interface {
	Create(ctx context.Context, community *models.Community) error
	FindAll(ctx context.Context) ([]models.Community, error)
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(ctx context.Context, community *models.Community) error {
	return r.db.WithContext(ctx).Create(community).Error
}

func (r *communityRepository) FindAll(ctx context.Context) ([]models.Community, error) {
	var communities []models.Community
	if err := r.db.WithContext(ctx).Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}
