package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/repository"
	"invest-service/internal/voting"
)

// VotingService is the shared vote-casting and tally core behind all
// three votable entity kinds.
type VotingService struct {
	users     repository.UserRepository
	votes     repository.VoteRepository
	entities  map[voting.Kind]repository.VotableRepository
	publisher *VotePublisher
}

func NewVotingService(
	users repository.UserRepository,
	votes repository.VoteRepository,
	proposals repository.VotableRepository,
	suggestions repository.VotableRepository,
	assistance repository.VotableRepository,
	publisher *VotePublisher,
) *VotingService {
	return &VotingService{
		users: users,
		votes: votes,
		entities: map[voting.Kind]repository.VotableRepository{
			voting.KindProposal:   proposals,
			voting.KindSuggestion: suggestions,
			voting.KindAssistance: assistance,
		},
		publisher: publisher,
	}
}

// CastVote records voterRef's choice on one entity, replacing any earlier
// vote by the same member. It returns the reloaded entity with its vote
// list and author resolved for display.
func (s *VotingService) CastVote(ctx context.Context, kind voting.Kind, entityID uint, voterRef, choice string) (models.Votable, error) {
	repo, ok := s.entities[kind]
	if !ok {
		return nil, voting.ErrUnknownKind
	}

	if !voting.ValidChoice(kind, choice) {
		return nil, fmt.Errorf("%w: %q is not one of %v", voting.ErrInvalidChoice, choice, voting.Choices(kind))
	}

	voter, err := s.resolveVoter(ctx, voterRef)
	if err != nil {
		return nil, err
	}

	entity, err := repo.FindByID(ctx, entityID)
	if err != nil {
		return nil, err
	}

	if !voting.Votable(entity.VotableStatus()) {
		return nil, fmt.Errorf("%w: status is %s", voting.ErrNotVotable, entity.VotableStatus())
	}

	vote := &models.Vote{
		VotableType: string(kind),
		VotableID:   entityID,
		VoterID:     voter.ID,
		Choice:      choice,
		CastAt:      time.Now().UTC(),
	}
	if err := s.votes.Upsert(ctx, vote); err != nil {
		return nil, fmt.Errorf("failed to save vote: %w", err)
	}

	updated, err := repo.FindByID(ctx, entityID)
	if err != nil {
		return nil, err
	}

	go s.publisher.PublishVoteCast(models.VoteCastEvent{
		Kind:      string(kind),
		EntityID:  entityID,
		Community: updated.VotableCommunity(),
		VoterID:   voter.ID,
		Choice:    choice,
		CastAt:    vote.CastAt,
	})

	return updated, nil
}

// resolveVoter normalizes a caller-supplied member reference; clients
// historically sent either a numeric id or an email, so both are
// accepted here and nothing but the canonical id reaches the store.
func (s *VotingService) resolveVoter(ctx context.Context, ref string) (*models.User, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, voting.ErrUnknownVoter
	}

	if strings.Contains(ref, "@") {
		user, err := s.users.FindByEmail(ctx, ref)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, voting.ErrUnknownVoter
			}
			return nil, err
		}
		return user, nil
	}

	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", voting.ErrUnknownVoter, ref)
	}
	user, err := s.users.FindByID(ctx, uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, voting.ErrUnknownVoter
		}
		return nil, err
	}
	return user, nil
}

// VotingData is the read-side projection for dashboards: one row per
// entity currently open for voting, tallies recomputed from the vote
// list on every call.
func (s *VotingService) VotingData(ctx context.Context, kind voting.Kind, communityID uint) ([]map[string]interface{}, error) {
	repo, ok := s.entities[kind]
	if !ok {
		return nil, voting.ErrUnknownKind
	}

	entities, err := repo.ListByCommunity(ctx, communityID)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]interface{}, 0, len(entities))
	for _, entity := range entities {
		if !voting.Votable(entity.VotableStatus()) {
			continue
		}
		tally := voting.TallyVotes(kind, entity.VoteList())
		row := map[string]interface{}{
			"id":          entity.VotableID(),
			"title":       entity.VotableTitle(),
			"status":      entity.VotableStatus(),
			"community":   entity.VotableCommunity(),
			"totalVoters": tally.TotalVoters,
		}
		for _, choice := range voting.Choices(kind) {
			row[voting.ChoiceKey(choice)] = tally.Counts[choice]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// List returns raw entities with their embedded vote lists.
func (s *VotingService) List(ctx context.Context, kind voting.Kind, communityID uint) ([]models.Votable, error) {
	repo, ok := s.entities[kind]
	if !ok {
		return nil, voting.ErrUnknownKind
	}
	return repo.ListByCommunity(ctx, communityID)
}

// UpdateStatus applies an admin transition on one entity, rejecting
// moves the lifecycle does not allow.
func (s *VotingService) UpdateStatus(ctx context.Context, kind voting.Kind, entityID uint, status models.Status) (models.Votable, error) {
	repo, ok := s.entities[kind]
	if !ok {
		return nil, voting.ErrUnknownKind
	}

	switch status {
	case models.StatusPending, models.StatusVoting, models.StatusApproved, models.StatusRejected:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", voting.ErrInvalidTransition, status)
	}

	entity, err := repo.FindByID(ctx, entityID)
	if err != nil {
		return nil, err
	}

	if !voting.CanTransition(entity.VotableStatus(), status) {
		return nil, fmt.Errorf("%w: %s -> %s", voting.ErrInvalidTransition, entity.VotableStatus(), status)
	}

	if err := repo.UpdateStatus(ctx, entityID, status); err != nil {
		return nil, err
	}

	return repo.FindByID(ctx, entityID)
}
