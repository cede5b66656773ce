package models

import (
	"gorm.io/gorm"
)

// Community is the tenant every proposal, suggestion, request and event belongs to
type Community struct {
	gorm.Model
	Name        string `gorm:"column:name;size:255;not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	CreatedByID uint   `gorm:"column:created_by_id;not null;index" json:"created_by_id"`
}

// TableName specifies the table name for Community
func (Community) TableName() string {
	return "communities"
}

// CreateCommunityRequest defines the input for creating a community
type CreateCommunityRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
