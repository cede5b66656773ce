package repository

import (
	"context"
	"errors"

	"invest-service/internal/ports/models"
	"invest-service/internal/voting"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id uint) (*models.Event, error)
	List(ctx context.Context, communityID uint) ([]models.Event, error)
	UpsertRsvp(ctx context.Context, rsvp *models.Rsvp) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).
		Preload("Rsvps", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("rsvps.id ASC")
		}).
		First(&event, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, voting.ErrNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, communityID uint) ([]models.Event, error) {
	var events []models.Event
	err := scopeCommunity(r.db.WithContext(ctx), communityID).
		Preload("Rsvps", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("rsvps.id ASC")
		}).
		Order("events.starts_at ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// UpsertRsvp keeps one reply per (event, member), same idiom as the vote
// upsert.
func (r *eventRepository) UpsertRsvp(ctx context.Context, rsvp *models.Rsvp) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "event_id"},
			{Name: "user_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"reply", "replied_at", "updated_at"}),
	}).Create(rsvp).Error
}
