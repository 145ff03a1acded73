package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orgdesk/backend/internal/model"
	"github.com/orgdesk/backend/internal/repository"
)

// memStore is an in-memory stand-in for the Postgres repositories, honoring
// the same sentinel-error and uniqueness semantics.
type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
	orgs  map[uuid.UUID]*model.Organisation
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uuid.UUID]*model.User),
		orgs:  make(map[uuid.UUID]*model.Organisation),
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) CreateWithOrganisation(_ context.Context, user *model.User) (*model.Organisation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == user.Email {
			return nil, repository.ErrConflict
		}
	}

	now := time.Now().UTC()
	org := &model.Organisation{
		ID:        uuid.New(),
		Name:      model.DefaultOrganisationName(user.FirstName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	org.Description = model.DefaultOrganisationDescription(org.Name)
	r.s.orgs[org.ID] = org

	user.ID = uuid.New()
	user.OrganisationID = &org.ID
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	r.s.users[user.ID] = &stored

	return org, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) SetOrganisation(_ context.Context, userID, orgID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.orgs[orgID]; !ok {
		return repository.ErrNotFound
	}
	u, ok := r.s.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	id := orgID
	u.OrganisationID = &id
	return nil
}

type memOrgRepo struct{ s *memStore }

func (r *memOrgRepo) Create(_ context.Context, org *model.Organisation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now().UTC()
	org.ID = uuid.New()
	org.CreatedAt = now
	org.UpdatedAt = now
	if org.Description == "" {
		org.Description = model.DefaultOrganisationDescription(org.Name)
	}
	stored := *org
	r.s.orgs[org.ID] = &stored
	return nil
}

func (r *memOrgRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Organisation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	org, ok := r.s.orgs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *org
	return &copied, nil
}

func (r *memOrgRepo) ListForUser(_ context.Context, userID uuid.UUID) ([]*model.Organisation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[userID]
	if !ok || u.OrganisationID == nil {
		return nil, nil
	}
	org, ok := r.s.orgs[*u.OrganisationID]
	if !ok {
		return nil, nil
	}
	copied := *org
	return []*model.Organisation{&copied}, nil
}
