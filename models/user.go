package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleChef  UserRole = "chef"
	RoleAdmin UserRole = "admin"
)

// UserStatus flags an account; fraud accounts cannot list meals or place orders
type UserStatus string

const (
	StatusActive UserStatus = "active"
	StatusFraud  UserStatus = "fraud"
)

type User struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	Email     string     `json:"email" gorm:"uniqueIndex;not null"`
	Photo     string     `json:"photo"`
	Role      UserRole   `json:"role" gorm:"not null;default:'user'"`
	Status    UserStatus `json:"status" gorm:"not null;default:'active'"`
	ChefID    string     `json:"chef_id"` // assigned once, on approval of a chef request
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
