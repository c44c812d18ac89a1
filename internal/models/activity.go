package models

import (
	"time"
)

// InternalActivity is a non-project time category (e.g. vacation) that
// employees can log hours against. Managed by timesheet admins.
type InternalActivity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActivityUpdate carries a partial update for an internal activity.
// Nil fields are left untouched.
type ActivityUpdate struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"is_active"`
}
