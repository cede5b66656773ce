package repository

import (
	"context"
	"errors"

	"invest-service/internal/ports/models"
	"invest-service/internal/voting"

	"gorm.io/gorm"
)

// VotableRepository is the kind-agnostic surface the voting service works
// against. Each entity kind supplies its own implementation on top of it.
type VotableRepository interface {
	FindByID(ctx context.Context, id uint) (models.Votable, error)
	ListByCommunity(ctx context.Context, communityID uint) ([]models.Votable, error)
	UpdateStatus(ctx context.Context, id uint, status models.Status) error
}

// withVotes preloads the author and the vote list in insertion order, so
// callers always see votes in the order they were committed.
func withVotes(db *gorm.DB) *gorm.DB {
	return db.
		Preload("CreatedBy").
		Preload("Votes", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("votes.id ASC")
		})
}

func scopeCommunity(db *gorm.DB, communityID uint) *gorm.DB {
	if communityID != 0 {
		return db.Where("community_id = ?", communityID)
	}
	return db
}

type ProposalRepository interface {
	VotableRepository
	Create(ctx context.Context, proposal *models.Proposal) error
	List(ctx context.Context, communityID uint) ([]models.Proposal, error)
}

type proposalRepository struct {
	db *gorm.DB
}

func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) Create(ctx context.Context, proposal *models.Proposal) error {
	return r.db.WithContext(ctx).Create(proposal).Error
}

func (r *proposalRepository) FindByID(ctx context.Context, id uint) (models.Votable, error) {
	var proposal models.Proposal
	if err := withVotes(r.db.WithContext(ctx)).First(&proposal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, voting.ErrNotFound
		}
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) List(ctx context.Context, communityID uint) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := scopeCommunity(withVotes(r.db.WithContext(ctx)), communityID).
		Order("proposals.id ASC").
		Find(&proposals).Error
	if err != nil {
		return nil, err
	}
	return proposals, nil
}

func (r *proposalRepository) ListByCommunity(ctx context.Context, communityID uint) ([]models.Votable, error) {
	proposals, err := r.List(ctx, communityID)
	if err != nil {
		return nil, err
	}
	votables := make([]models.Votable, len(proposals))
	for i := range proposals {
		votables[i] = &proposals[i]
	}
	return votables, nil
}

func (r *proposalRepository) UpdateStatus(ctx context.Context, id uint, status models.Status) error {
	return updateStatus(ctx, r.db, &models.Proposal{}, id, status)
}

type SuggestionRepository interface {
	VotableRepository
	Create(ctx context.Context, suggestion *models.Suggestion) error
	List(ctx context.Context, communityID uint) ([]models.Suggestion, error)
}

type suggestionRepository struct {
	db *gorm.DB
}

func NewSuggestionRepository(db *gorm.DB) SuggestionRepository {
	return &suggestionRepository{db: db}
}

func (r *suggestionRepository) Create(ctx context.Context, suggestion *models.Suggestion) error {
	return r.db.WithContext(ctx).Create(suggestion).Error
}

func (r *suggestionRepository) FindByID(ctx context.Context, id uint) (models.Votable, error) {
	var suggestion models.Suggestion
	if err := withVotes(r.db.WithContext(ctx)).First(&suggestion, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, voting.ErrNotFound
		}
		return nil, err
	}
	return &suggestion, nil
}

func (r *suggestionRepository) List(ctx context.Context, communityID uint) ([]models.Suggestion, error) {
	var suggestions []models.Suggestion
	err := scopeCommunity(withVotes(r.db.WithContext(ctx)), communityID).
		Order("suggestions.id ASC").
		Find(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *suggestionRepository) ListByCommunity(ctx context.Context, communityID uint) ([]models.Votable, error) {
	suggestions, err := r.List(ctx, communityID)
	if err != nil {
		return nil, err
	}
	votables := make([]models.Votable, len(suggestions))
	for i := range suggestions {
		votables[i] = &suggestions[i]
	}
	return votables, nil
}

func (r *suggestionRepository) UpdateStatus(ctx context.Context, id uint, status models.Status) error {
	return updateStatus(ctx, r.db, &models.Suggestion{}, id, status)
}

type AssistanceRepository interface {
	VotableRepository
	Create(ctx context.Context, request *models.AssistanceRequest) error
	List(ctx context.Context, communityID uint) ([]models.AssistanceRequest, error)
}

type assistanceRepository struct {
	db *gorm.DB
}

func NewAssistanceRepository(db *gorm.DB) AssistanceRepository {
	return &assistanceRepository{db: db}
}

func (r *assistanceRepository) Create(ctx context.Context, request *models.AssistanceRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *assistanceRepository) FindByID(ctx context.Context, id uint) (models.Votable, error) {
	var request models.AssistanceRequest
	if err := withVotes(r.db.WithContext(ctx)).First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, voting.ErrNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *assistanceRepository) List(ctx context.Context, communityID uint) ([]models.AssistanceRequest, error) {
	var requests []models.AssistanceRequest
	err := scopeCommunity(withVotes(r.db.WithContext(ctx)), communityID).
		Order("assistance_requests.id ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *assistanceRepository) ListByCommunity(ctx context.Context, communityID uint) ([]models.Votable, error) {
	requests, err := r.List(ctx, communityID)
	if err != nil {
		return nil, err
	}
	votables := make([]models.Votable, len(requests))
	for i := range requests {
		votables[i] = &requests[i]
	}
	return votables, nil
}

func (r *assistanceRepository) UpdateStatus(ctx context.Context, id uint, status models.Status) error {
	return updateStatus(ctx, r.db, &models.AssistanceRequest{}, id, status)
}

func updateStatus(ctx context.Context, db *gorm.DB, model interface{}, id uint, status models.Status) error {
	result := db.WithContext(ctx).Model(model).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return voting.ErrNotFound
	}
	return nil
}
