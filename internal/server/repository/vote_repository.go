package repository

import (
	"context"

	"invest-service/internal/ports/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository interface {
	Upsert(ctx context.Context, vote *models.Vote) error
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Upsert inserts the vote or, when the voter already has a row for this
// entity, replaces their choice in place. The conflict target is the
// unique (votable_type, votable_id, voter_id) key, so two concurrent
// casts by the same voter collapse into one row at the database instead
// of racing through a read-modify-write in application memory.
func (r *voteRepository) Upsert(ctx context.Context, vote *models.Vote) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "votable_type"},
			{Name: "votable_id"},
			{Name: "voter_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"choice", "cast_at", "updated_at"}),
	}).Create(vote).Error
}
