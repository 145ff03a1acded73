package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/orgdesk/backend/internal/model"
	"github.com/orgdesk/backend/internal/repository"
)

// AccountService authorizes reads against the authenticated identity and
// handles organisation membership changes.
type AccountService struct {
	users repository.UserRepository
	orgs  repository.OrganisationRepository
}

// NewAccountService creates a new AccountService.
func NewAccountService(users repository.UserRepository, orgs repository.OrganisationRepository) *AccountService {
	return &AccountService{users: users, orgs: orgs}
}

// GetUser returns the target user's record. Any target other than the
// requester itself is ErrForbidden, whether or not the target exists.
// repository.ErrNotFound is only reachable when the requester's own record
// was deleted after its token was issued.
func (s *AccountService) GetUser(ctx context.Context, requesterID, targetID uuid.UUID) (*model.User, error) {
	if requesterID != targetID {
		return nil, ErrForbidden
	}
	return s.users.GetByID(ctx, targetID)
}

// ListOrganisations returns the organisations the requester belongs to. No
// membership yields an empty slice, not an error.
func (s *AccountService) ListOrganisations(ctx context.Context, requesterID uuid.UUID) ([]*model.Organisation, error) {
	return s.orgs.ListForUser(ctx, requesterID)
}

// GetOrganisation fetches an organisation the requester is a member of.
// A missing organisation and one the requester cannot see produce the same
// repository.ErrNotFound, so the response confirms nothing about records
// outside the requester's reach.
func (s *AccountService) GetOrganisation(ctx context.Context, requesterID, orgID uuid.UUID) (*model.Organisation, error) {
	org, err := s.orgs.GetByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	requester, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if requester.OrganisationID == nil || *requester.OrganisationID != org.ID {
		return nil, repository.ErrNotFound
	}
	return org, nil
}

// CreateOrganisation creates an organisation and makes the requester a
// member of it.
func (s *AccountService) CreateOrganisation(ctx context.Context, requesterID uuid.UUID, name, description string) (*model.Organisation, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrMissingName
	}

	org := &model.Organisation{Name: name, Description: description}
	if err := s.orgs.Create(ctx, org); err != nil {
		return nil, err
	}
	if err := s.users.SetOrganisation(ctx, requesterID, org.ID); err != nil {
		return nil, err
	}
	return org, nil
}

// AddUserToOrganisation reassigns a user's membership to the organisation.
// Either id being absent is repository.ErrNotFound. Idempotent.
func (s *AccountService) AddUserToOrganisation(ctx context.Context, orgID, userID uuid.UUID) error {
	if _, err := s.orgs.GetByID(ctx, orgID); err != nil {
		return err
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.users.SetOrganisation(ctx, userID, orgID)
}
