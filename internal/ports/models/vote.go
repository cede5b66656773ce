package models

import (
	"time"

	"gorm.io/gorm"
)

type Status string

func (s Status) String() string {
	return string(s)
}

const (
	StatusPending  Status = "pending"
	StatusVoting   Status = "voting"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Vote is one member's current choice on a votable entity. Re-casting
// replaces the row for that voter, it never appends a second one.
type Vote struct {
	gorm.Model
	VotableType string    `gorm:"column:votable_type;size:32;not null;uniqueIndex:idx_votes_votable_voter" json:"-"`
	VotableID   uint      `gorm:"column:votable_id;not null;uniqueIndex:idx_votes_votable_voter" json:"-"`
	VoterID     uint      `gorm:"column:voter_id;not null;uniqueIndex:idx_votes_votable_voter" json:"voter_id"`
	Choice      string    `gorm:"column:choice;size:32;not null" json:"choice"`
	CastAt      time.Time `gorm:"column:cast_at;not null" json:"cast_at"`
}

// TableName specifies the table name for Vote
func (Vote) TableName() string {
	return "votes"
}

// Votable is implemented by the three entity kinds that accumulate votes.
type Votable interface {
	VotableID() uint
	VotableKind() string
	VotableTitle() string
	VotableStatus() Status
	VotableCommunity() uint
	VoteList() []Vote
}

// CastVoteRequest defines the input for casting a vote. UserID may be a
// numeric member id or an email; it is normalized to a member id before
// the vote is stored. When empty the authenticated user casts the vote.
type CastVoteRequest struct {
	Vote   string `json:"vote" binding:"required"`
	UserID string `json:"userId"`
}

// UpdateStatusRequest defines the input for an admin status change
type UpdateStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// VoteCastEvent is the audit record published to Kafka after a successful cast
type VoteCastEvent struct {
	Kind      string    `json:"kind"`
	EntityID  uint      `json:"entity_id"`
	Community uint      `json:"community"`
	VoterID   uint      `json:"voter_id"`
	Choice    string    `json:"choice"`
	CastAt    time.Time `json:"cast_at"`
}
