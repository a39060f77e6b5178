package models

import "time"

// RequestType is the role a user is asking to be upgraded to
type RequestType string

const (
	RequestChef  RequestType = "chef"
	RequestAdmin RequestType = "admin"
)

// RequestStatus tracks the lifecycle of a role-upgrade request
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// RoleRequest is a user's ask to become a chef or admin.
// At most one pending request may exist per (email, request type) pair.
type RoleRequest struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	UserID        uint          `json:"user_id"`
	Name          string        `json:"name"`
	Email         string        `json:"email" gorm:"not null;index"`
	RequestType   RequestType   `json:"request_type" gorm:"not null"`
	RequestStatus RequestStatus `json:"request_status" gorm:"not null;default:'pending'"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
