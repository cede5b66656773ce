package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RsvpGoing    = "going"
	RsvpNotGoing = "not-going"
)

// Event is a community gathering members RSVP to
type Event struct {
	gorm.Model
	CommunityID uint      `gorm:"column:community_id;not null;index" json:"community_id"`
	CreatedByID uint      `gorm:"column:created_by_id;not null;index" json:"created_by_id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	StartsAt    time.Time `gorm:"column:starts_at;not null" json:"starts_at"`
	Location    string    `gorm:"column:location;size:255" json:"location"`
	Rsvps       []Rsvp    `gorm:"foreignKey:EventID" json:"rsvps"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}

// Rsvp is a member's reply to an event, one row per (event, member)
type Rsvp struct {
	gorm.Model
	EventID   uint      `gorm:"column:event_id;not null;uniqueIndex:idx_rsvps_event_user" json:"-"`
	UserID    uint      `gorm:"column:user_id;not null;uniqueIndex:idx_rsvps_event_user" json:"user_id"`
	Reply     string    `gorm:"column:reply;size:32;not null" json:"reply"`
	RepliedAt time.Time `gorm:"column:replied_at;not null" json:"replied_at"`
}

// TableName specifies the table name for Rsvp
func (Rsvp) TableName() string {
	return "rsvps"
}

// CreateEventRequest defines the input for creating an event
type CreateEventRequest struct {
	CommunityID uint      `json:"community_id" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	Location    string    `json:"location"`
}

// RsvpRequest defines the input for replying to an event
type RsvpRequest struct {
	Reply string `json:"reply" binding:"required"`
}
