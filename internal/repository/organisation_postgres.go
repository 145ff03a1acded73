package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/orgdesk/backend/internal/model"
)

// OrganisationRepository defines data access methods for organisations.
type OrganisationRepository interface {
	Create(ctx context.Context, org *model.Organisation) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Organisation, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Organisation, error)
}

// PostgresOrganisationRepository implements OrganisationRepository for
// PostgreSQL.
type PostgresOrganisationRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPostgresOrganisationRepository creates a new
// PostgresOrganisationRepository.
func NewPostgresOrganisationRepository(db *sql.DB, timeout time.Duration) *PostgresOrganisationRepository {
	return &PostgresOrganisationRepository{db: db, timeout: timeout}
}

// Create generates the organisation's ID, applies the description default
// when none was supplied, and persists the row.
func (r *PostgresOrganisationRepository) Create(ctx context.Context, org *model.Organisation) error {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()

	now := time.Now().UTC()
	org.ID = uuid.New()
	org.CreatedAt = now
	org.UpdatedAt = now
	if org.Description == "" {
		org.Description = model.DefaultOrganisationDescription(org.Name)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO organisations (org_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, org.ID, org.Name, org.Description, org.CreatedAt, org.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert organisation: %w", err)
	}
	return nil
}

func (r *PostgresOrganisationRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Organisation, error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()

	var org model.Organisation
	err := r.db.QueryRowContext(ctx, `
		SELECT org_id, name, description, created_at, updated_at
		FROM organisations WHERE org_id = $1
	`, id).Scan(&org.ID, &org.Name, &org.Description, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &org, nil
}

// ListForUser returns every organisation whose membership includes the user.
// With one organisation per user this is at most one row, but the query is
// shaped for the general case.
func (r *PostgresOrganisationRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]*model.Organisation, error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT o.org_id, o.name, o.description, o.created_at, o.updated_at
		FROM organisations o
		JOIN users u ON u.organisation_id = o.org_id
		WHERE u.user_id = $1
		ORDER BY o.created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []*model.Organisation
	for rows.Next() {
		var org model.Organisation
		err := rows.Scan(&org.ID, &org.Name, &org.Description, &org.CreatedAt, &org.UpdatedAt)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, &org)
	}
	return orgs, rows.Err()
}
