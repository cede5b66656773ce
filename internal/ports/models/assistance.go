package models

import (
	"gorm.io/gorm"
)

// AssistanceRequest is a member's call for help the community votes assist/not-assist on
type AssistanceRequest struct {
	gorm.Model
	CommunityID uint   `gorm:"column:community_id;not null;index" json:"community_id"`
	CreatedByID uint   `gorm:"column:created_by_id;not null;index" json:"created_by_id"`
	CreatedBy   *User  `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	Title       string `gorm:"column:title;size:255;not null" json:"title"`
	Reason      string `gorm:"column:reason;type:text" json:"reason"`
	Status      Status `gorm:"column:status;size:32;not null;default:'pending'" json:"status"`
	Votes       []Vote `gorm:"polymorphic:Votable;polymorphicValue:assistance" json:"votes"`
}

// TableName specifies the table name for AssistanceRequest
func (AssistanceRequest) TableName() string {
	return "assistance_requests"
}

func (a *AssistanceRequest) VotableID() uint        { return a.ID }
func (a *AssistanceRequest) VotableKind() string    { return "assistance" }
func (a *AssistanceRequest) VotableTitle() string   { return a.Title }
func (a *AssistanceRequest) VotableStatus() Status  { return a.Status }
func (a *AssistanceRequest) VotableCommunity() uint { return a.CommunityID }
func (a *AssistanceRequest) VoteList() []Vote       { return a.Votes }

// CreateAssistanceRequest defines the input for submitting an assistance request
type CreateAssistanceRequest struct {
	CommunityID uint   `json:"community_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
}
