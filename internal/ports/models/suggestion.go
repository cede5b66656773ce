package models

import (
	"gorm.io/gorm"
)

// Suggestion is an investment idea a member puts to the community
type Suggestion struct {
	gorm.Model
	CommunityID uint   `gorm:"column:community_id;not null;index" json:"community_id"`
	CreatedByID uint   `gorm:"column:created_by_id;not null;index" json:"created_by_id"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Title       string `gorm:"column:title;size:255;not null" json:"title"`
	Description string `gorm:"column:description;type:text" json:"description"`
	Reason      string `gorm:"column:reason;type:text" json:"reason"`
	Status      Status `gorm:"column:status;size:32;not null;default:'pending'" json:"status"`
	Votes       []Vote `gorm:"polymorphic:Votable;polymorphicValue:suggestion" json:"votes"`
}

// TableName specifies the table name for Suggestion
func (Suggestion) TableName() string {
	return "suggestions"
}

func (s *Suggestion) VotableID() uint        { return s.ID }
func (s *Suggestion) VotableKind() string    { return "suggestion" }
func (s *Suggestion) VotableTitle() string   { return s.Title }
func (s *Suggestion) VotableStatus() Status  { return s.Status }
func (s *Suggestion) VotableCommunity() uint { return s.CommunityID }
func (s *Suggestion) VoteList() []Vote       { return s.Votes }

// CreateSuggestionRequest defines the input for submitting an investment suggestion
type CreateSuggestionRequest struct {
	CommunityID uint   `json:"community_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Reason      string `json:"reason"`
}
