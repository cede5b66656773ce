package service

import (
	"context"
	"fmt"
	"time"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/repository"
	"invest-service/internal/voting"
)

type EventService struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) *EventService {
	return &EventService{repo: repo}
}

func (s *EventService) Create(ctx context.Context, creatorID uint, req models.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		CommunityID: req.CommunityID,
		CreatedByID: creatorID,
		Title:       req.Title,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		Location:    req.Location,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return event, nil
}

func (s *EventService) List(ctx context.Context, communityID uint) ([]models.Event, error) {
	return s.repo.List(ctx, communityID)
}

// Rsvp records a member's reply to an event, replacing any earlier reply
// by the same member.
func (s *EventService) Rsvp(ctx context.Context, eventID, userID uint, reply string) (*models.Event, error) {
	if reply != models.RsvpGoing && reply != models.RsvpNotGoing {
		return nil, fmt.Errorf("%w: %q", voting.ErrInvalidChoice, reply)
	}

	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		return nil, err
	}

	rsvp := &models.Rsvp{
		EventID:   eventID,
		UserID:    userID,
		Reply:     reply,
		RepliedAt: time.Now().UTC(),
	}
	if err := s.repo.UpsertRsvp(ctx, rsvp); err != nil {
		return nil, fmt.Errorf("failed to save rsvp: %w", err)
	}

	return s.repo.FindByID(ctx, eventID)
}
