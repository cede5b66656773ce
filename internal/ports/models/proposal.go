package models

import (
	"gorm.io/gorm"
)

// Proposal is a community decision members vote yes/no on
type Proposal struct {
	gorm.Model
	CommunityID uint   `gorm:"column:community_id;not null;index" json:"community_id"`
	CreatedByID uint   `gorm:"column:created_by_id;not null;index" json:"created_by_id"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Title       string `gorm:"column:title;size:255;not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Status      Status `gorm:"column:status;size:32;not null;default:'pending'" json:"status"`
	Votes       []Vote `gorm:"polymorphic:Votable;polymorphicValue:proposal" json:"votes"`
}

// TableName specifies the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}

func (p *Proposal) VotableID() uint        { return p.ID }
func (p *Proposal) VotableKind() string    { return "proposal" }
func (p *Proposal) VotableTitle() string   { return p.Title }
func (p *Proposal) VotableStatus() Status  { return p.Status }
func (p *Proposal) VotableCommunity() uint { return p.CommunityID }
func (p *Proposal) VoteList() []Vote       { return p.Votes }

// CreateProposalRequest defines the input for submitting a proposal
type CreateProposalRequest struct {
	CommunityID uint   `json:"community_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}
