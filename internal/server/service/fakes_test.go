package service

import (
	"context"
	"sort"

	"invest-service/internal/ports/models"
	"invest-service/internal/server/repository"
	"invest-service/internal/voting"

	"gorm.io/gorm"
)

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

// In-memory fakes standing in for the gorm repositories.

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = uint(len(r.users) + 1)
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) UpdateUser(_ context.Context, _ *models.User) error {
	return nil
}

// fakeVoteStore mirrors the unique-key upsert: one row per
// (votable_type, votable_id, voter_id), replaced in place on conflict.
type fakeVoteStore struct {
	votes []*models.Vote
}

func (r *fakeVoteStore) Upsert(_ context.Context, vote *models.Vote) error {
	for _, v := range r.votes {
		if v.VotableType == vote.VotableType && v.VotableID == vote.VotableID && v.VoterID == vote.VoterID {
			v.Choice = vote.Choice
			v.CastAt = vote.CastAt
			return nil
		}
	}
	stored := *vote
	stored.ID = uint(len(r.votes) + 1)
	r.votes = append(r.votes, &stored)
	return nil
}

func (r *fakeVoteStore) list(kind string, entityID uint) []models.Vote {
	var out []models.Vote
	for _, v := range r.votes {
		if v.VotableType == kind && v.VotableID == entityID {
			out = append(out, *v)
		}
	}
	return out
}

type fakeEntity struct {
	id        uint
	kind      string
	title     string
	status    models.Status
	community uint
	votes     []models.Vote
}

func (e *fakeEntity) VotableID() uint            { return e.id }
func (e *fakeEntity) VotableKind() string        { return e.kind }
func (e *fakeEntity) VotableTitle() string       { return e.title }
func (e *fakeEntity) VotableStatus() models.Status { return e.status }
func (e *fakeEntity) VotableCommunity() uint     { return e.community }
func (e *fakeEntity) VoteList() []models.Vote    { return e.votes }

type fakeItem struct {
	id        uint
	title     string
	status    models.Status
	community uint
}

type fakeEntityRepo struct {
	kind  voting.Kind
	votes *fakeVoteStore
	items map[uint]*fakeItem
}

func newFakeEntityRepo(kind voting.Kind, votes *fakeVoteStore) *fakeEntityRepo {
	return &fakeEntityRepo{
		kind:  kind,
		votes: votes,
		items: make(map[uint]*fakeItem),
	}
}

func (r *fakeEntityRepo) add(item *fakeItem) {
	r.items[item.id] = item
}

func (r *fakeEntityRepo) FindByID(_ context.Context, id uint) (models.Votable, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, voting.ErrNotFound
	}
	return &fakeEntity{
		id:        item.id,
		kind:      string(r.kind),
		title:     item.title,
		status:    item.status,
		community: item.community,
		votes:     r.votes.list(string(r.kind), item.id),
	}, nil
}

func (r *fakeEntityRepo) ListByCommunity(ctx context.Context, communityID uint) ([]models.Votable, error) {
	ids := make([]uint, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []models.Votable
	for _, id := range ids {
		if communityID != 0 && r.items[id].community != communityID {
			continue
		}
		entity, _ := r.FindByID(ctx, id)
		out = append(out, entity)
	}
	return out, nil
}

func (r *fakeEntityRepo) UpdateStatus(_ context.Context, id uint, status models.Status) error {
	item, ok := r.items[id]
	if !ok {
		return voting.ErrNotFound
	}
	item.status = status
	return nil
}
