package service

import (
	"context"
	"errors"
	"testing"

	"invest-service/internal/ports/models"
	"invest-service/internal/voting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type votingFixture struct {
	svc         *VotingService
	users       *fakeUserRepo
	votes       *fakeVoteStore
	proposals   *fakeEntityRepo
	suggestions *fakeEntityRepo
	assistance  *fakeEntityRepo
}

func newVotingFixture() *votingFixture {
	users := &fakeUserRepo{users: []*models.User{
		{Model: gormModel(1), Username: "ada", Email: "ada@example.com"},
		{Model: gormModel(2), Username: "bob", Email: "bob@example.com"},
		{Model: gormModel(3), Username: "cleo", Email: "cleo@example.com"},
	}}
	votes := &fakeVoteStore{}
	proposals := newFakeEntityRepo(voting.KindProposal, votes)
	suggestions := newFakeEntityRepo(voting.KindSuggestion, votes)
	assistance := newFakeEntityRepo(voting.KindAssistance, votes)

	publisher := NewVotePublisher(nil, "vote-events", zap.NewNop())
	svc := NewVotingService(users, votes, proposals, suggestions, assistance, publisher)

	return &votingFixture{
		svc:         svc,
		users:       users,
		votes:       votes,
		proposals:   proposals,
		suggestions: suggestions,
		assistance:  assistance,
	}
}

func voteBy(votes []models.Vote, voterID uint) *models.Vote {
	for i := range votes {
		if votes[i].VoterID == voterID {
			return &votes[i]
		}
	}
	return nil
}

func TestCastVote_FreshProposalScenario(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 10, title: "buy solar panels", status: models.StatusVoting, community: 1})
	ctx := context.Background()

	entity, err := f.svc.CastVote(ctx, voting.KindProposal, 10, "1", voting.ChoiceYes)
	require.NoError(t, err)
	tally := voting.TallyVotes(voting.KindProposal, entity.VoteList())
	assert.Equal(t, 1, tally.Counts[voting.ChoiceYes])
	assert.Equal(t, 0, tally.Counts[voting.ChoiceNo])
	assert.Equal(t, 1, tally.TotalVoters)

	entity, err = f.svc.CastVote(ctx, voting.KindProposal, 10, "2", voting.ChoiceNo)
	require.NoError(t, err)
	tally = voting.TallyVotes(voting.KindProposal, entity.VoteList())
	assert.Equal(t, 1, tally.Counts[voting.ChoiceYes])
	assert.Equal(t, 1, tally.Counts[voting.ChoiceNo])
	assert.Equal(t, 2, tally.TotalVoters)

	// voter 1 changes their mind
	entity, err = f.svc.CastVote(ctx, voting.KindProposal, 10, "1", voting.ChoiceNo)
	require.NoError(t, err)
	tally = voting.TallyVotes(voting.KindProposal, entity.VoteList())
	assert.Equal(t, 0, tally.Counts[voting.ChoiceYes])
	assert.Equal(t, 2, tally.Counts[voting.ChoiceNo])
	assert.Equal(t, 2, tally.TotalVoters)
}

func TestCastVote_AtMostOneVotePerVoter(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 10, status: models.StatusVoting, community: 1})
	ctx := context.Background()

	for _, choice := range []string{voting.ChoiceYes, voting.ChoiceNo, voting.ChoiceYes, voting.ChoiceYes} {
		_, err := f.svc.CastVote(ctx, voting.KindProposal, 10, "1", choice)
		require.NoError(t, err)
	}

	entity, err := f.svc.CastVote(ctx, voting.KindProposal, 10, "1", voting.ChoiceNo)
	require.NoError(t, err)

	count := 0
	for _, v := range entity.VoteList() {
		if v.VoterID == 1 {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCastVote_LastWriteWins(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 10, status: models.StatusVoting, community: 1})
	ctx := context.Background()

	entity, err := f.svc.CastVote(ctx, voting.KindProposal, 10, "1", voting.ChoiceYes)
	require.NoError(t, err)
	first := voteBy(entity.VoteList(), 1)
	require.NotNil(t, first)

	entity, err = f.svc.CastVote(ctx, voting.KindProposal, 10, "1", voting.ChoiceNo)
	require.NoError(t, err)
	second := voteBy(entity.VoteList(), 1)
	require.NotNil(t, second)

	assert.Equal(t, voting.ChoiceNo, second.Choice)
	assert.False(t, second.CastAt.Before(first.CastAt))
}

func TestCastVote_InvalidChoiceRejected(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 10, status: models.StatusVoting, community: 1})

	_, err := f.svc.CastVote(context.Background(), voting.KindProposal, 10, "1", "maybe")

	assert.True(t, errors.Is(err, voting.ErrInvalidChoice))
	assert.Empty(t, f.votes.votes)
}

func TestCastVote_CrossKindChoiceRejected(t *testing.T) {
	f := newVotingFixture()
	f.assistance.add(&fakeItem{id: 5, status: models.StatusVoting, community: 1})

	_, err := f.svc.CastVote(context.Background(), voting.KindAssistance, 5, "1", voting.ChoiceYes)

	assert.True(t, errors.Is(err, voting.ErrInvalidChoice))
	assert.Empty(t, f.votes.votes)
}

func TestCastVote_EntityNotFound(t *testing.T) {
	f := newVotingFixture()

	_, err := f.svc.CastVote(context.Background(), voting.KindProposal, 99, "1", voting.ChoiceYes)

	assert.True(t, errors.Is(err, voting.ErrNotFound))
	assert.Empty(t, f.votes.votes)
}

func TestCastVote_StatusGuard(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 1, status: models.StatusPending, community: 1})
	f.proposals.add(&fakeItem{id: 2, status: models.StatusRejected, community: 1})
	f.proposals.add(&fakeItem{id: 3, status: models.StatusApproved, community: 1})
	ctx := context.Background()

	_, err := f.svc.CastVote(ctx, voting.KindProposal, 1, "1", voting.ChoiceYes)
	assert.True(t, errors.Is(err, voting.ErrNotVotable))

	_, err = f.svc.CastVote(ctx, voting.KindProposal, 2, "1", voting.ChoiceYes)
	assert.True(t, errors.Is(err, voting.ErrNotVotable))

	// approved items are still open for voting
	_, err = f.svc.CastVote(ctx, voting.KindProposal, 3, "1", voting.ChoiceYes)
	assert.NoError(t, err)
}

func TestCastVote_VoterNormalizedByEmail(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 10, status: models.StatusVoting, community: 1})
	ctx := context.Background()

	// same member, referenced by email and then by id
	_, err := f.svc.CastVote(ctx, voting.KindProposal, 10, "ada@example.com", voting.ChoiceYes)
	require.NoError(t, err)
	entity, err := f.svc.CastVote(ctx, voting.KindProposal, 10, "1", voting.ChoiceNo)
	require.NoError(t, err)

	require.Len(t, entity.VoteList(), 1)
	assert.Equal(t, uint(1), entity.VoteList()[0].VoterID)
	assert.Equal(t, voting.ChoiceNo, entity.VoteList()[0].Choice)
}

func TestCastVote_UnknownVoter(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 10, status: models.StatusVoting, community: 1})
	ctx := context.Background()

	_, err := f.svc.CastVote(ctx, voting.KindProposal, 10, "nobody@example.com", voting.ChoiceYes)
	assert.True(t, errors.Is(err, voting.ErrUnknownVoter))

	_, err = f.svc.CastVote(ctx, voting.KindProposal, 10, "", voting.ChoiceYes)
	assert.True(t, errors.Is(err, voting.ErrUnknownVoter))

	assert.Empty(t, f.votes.votes)
}

func TestCastVote_AssistanceScenario(t *testing.T) {
	f := newVotingFixture()
	f.assistance.add(&fakeItem{id: 7, title: "roof repair", status: models.StatusVoting, community: 1})
	ctx := context.Background()

	_, err := f.svc.CastVote(ctx, voting.KindAssistance, 7, "1", voting.ChoiceAssist)
	require.NoError(t, err)
	_, err = f.svc.CastVote(ctx, voting.KindAssistance, 7, "2", voting.ChoiceNotAssist)
	require.NoError(t, err)
	entity, err := f.svc.CastVote(ctx, voting.KindAssistance, 7, "3", voting.ChoiceAssist)
	require.NoError(t, err)

	tally := voting.TallyVotes(voting.KindAssistance, entity.VoteList())
	assert.Equal(t, 2, tally.Counts[voting.ChoiceAssist])
	assert.Equal(t, 1, tally.Counts[voting.ChoiceNotAssist])
	assert.Equal(t, 3, tally.TotalVoters)
}

func TestVotingData_EligibilityFilter(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 1, title: "a", status: models.StatusPending, community: 1})
	f.proposals.add(&fakeItem{id: 2, title: "b", status: models.StatusVoting, community: 1})
	f.proposals.add(&fakeItem{id: 3, title: "c", status: models.StatusApproved, community: 1})
	f.proposals.add(&fakeItem{id: 4, title: "d", status: models.StatusRejected, community: 1})

	rows, err := f.svc.VotingData(context.Background(), voting.KindProposal, 1)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, uint(2), rows[0]["id"])
	assert.Equal(t, uint(3), rows[1]["id"])
}

func TestVotingData_ProjectionShape(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 2, title: "b", status: models.StatusVoting, community: 1})
	ctx := context.Background()

	_, err := f.svc.CastVote(ctx, voting.KindProposal, 2, "1", voting.ChoiceYes)
	require.NoError(t, err)
	_, err = f.svc.CastVote(ctx, voting.KindProposal, 2, "2", voting.ChoiceNo)
	require.NoError(t, err)
	_, err = f.svc.CastVote(ctx, voting.KindProposal, 2, "3", voting.ChoiceYes)
	require.NoError(t, err)

	rows, err := f.svc.VotingData(ctx, voting.KindProposal, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "b", row["title"])
	assert.Equal(t, models.StatusVoting, row["status"])
	assert.Equal(t, uint(1), row["community"])
	assert.Equal(t, 2, row["yesVotes"])
	assert.Equal(t, 1, row["noVotes"])
	assert.Equal(t, 3, row["totalVoters"])
}

func TestVotingData_CommunityScope(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 1, status: models.StatusVoting, community: 1})
	f.proposals.add(&fakeItem{id: 2, status: models.StatusVoting, community: 2})

	rows, err := f.svc.VotingData(context.Background(), voting.KindProposal, 2)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, uint(2), rows[0]["id"])
}

func TestUpdateStatus_Transitions(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 1, status: models.StatusPending, community: 1})
	ctx := context.Background()

	entity, err := f.svc.UpdateStatus(ctx, voting.KindProposal, 1, models.StatusVoting)
	require.NoError(t, err)
	assert.Equal(t, models.StatusVoting, entity.VotableStatus())

	entity, err = f.svc.UpdateStatus(ctx, voting.KindProposal, 1, models.StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, entity.VotableStatus())

	// approved is terminal
	_, err = f.svc.UpdateStatus(ctx, voting.KindProposal, 1, models.StatusVoting)
	assert.True(t, errors.Is(err, voting.ErrInvalidTransition))
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	f := newVotingFixture()
	f.proposals.add(&fakeItem{id: 1, status: models.StatusPending, community: 1})

	_, err := f.svc.UpdateStatus(context.Background(), voting.KindProposal, 1, models.Status("archived"))
	assert.True(t, errors.Is(err, voting.ErrInvalidTransition))
}

func TestUpdateStatus_NotFound(t *testing.T) {
	f := newVotingFixture()

	_, err := f.svc.UpdateStatus(context.Background(), voting.KindProposal, 42, models.StatusVoting)
	assert.True(t, errors.Is(err, voting.ErrNotFound))
}
