package model

import (
	"time"

	"github.com/google/uuid"
)

// Organisation represents a group of users. Membership is derived from
// users.organisation_id, not stored on the organisation itself.
type Organisation struct {
	ID          uuid.UUID `json:"orgId" db:"org_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}

// DefaultOrganisationName returns the name given to the organisation created
// automatically when a user registers.
func DefaultOrganisationName(firstName string) string {
	return firstName + "'s organisation"
}

// DefaultOrganisationDescription returns the description applied when an
// organisation is created without one.
func DefaultOrganisationDescription(name string) string {
	return name + "'s organisation description"
}
