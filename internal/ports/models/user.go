package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a community member account
type User struct {
	gorm.Model
	Username  string    `gorm:"column:username;size:255;not null" json:"username"`
	Email     string    `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:password;size:255;not null" json:"-"`
	IsAdmin   bool      `gorm:"column:is_admin;default:false" json:"is_admin"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	LastLogin time.Time `gorm:"column:last_login" json:"last_login"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// RegisterRequest defines the input for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the input for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Token string `json:"token"`
}
