// Package model contains the core domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account. A user belongs to at most one
// organisation at a time; OrganisationID is nil until membership is set.
type User struct {
	ID             uuid.UUID  `json:"userId" db:"user_id"`
	FirstName      string     `json:"firstName" db:"first_name"`
	LastName       string     `json:"lastName" db:"last_name"`
	Email          string     `json:"email" db:"email"`
	PasswordHash   string     `json:"-" db:"password_hash"`
	Phone          string     `json:"phone" db:"phone"`
	OrganisationID *uuid.UUID `json:"organisationId,omitempty" db:"organisation_id"`
	CreatedAt      time.Time  `json:"-" db:"created_at"`
	UpdatedAt      time.Time  `json:"-" db:"updated_at"`
}

// FullName returns the user's full display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
