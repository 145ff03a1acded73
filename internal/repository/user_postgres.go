package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/orgdesk/backend/internal/model"
)

// UserRepository defines data access methods for users.
type UserRepository interface {
	CreateWithOrganisation(ctx context.Context, user *model.User) (*model.Organisation, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	SetOrganisation(ctx context.Context, userID, orgID uuid.UUID) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL.
type PostgresUserRepository struct {
	db      *sql.DB
	timeout time.Duration
}

// NewPostgresUserRepository creates a new PostgresUserRepository. Calls are
// bounded by timeout; zero selects a default.
func NewPostgresUserRepository(db *sql.DB, timeout time.Duration) *PostgresUserRepository {
	return &PostgresUserRepository{db: db, timeout: timeout}
}

// CreateWithOrganisation creates the user's default organisation and the
// user itself inside one serializable transaction: either both rows become
// visible or neither does. A duplicate email surfaces as ErrConflict.
func (r *PostgresUserRepository) CreateWithOrganisation(ctx context.Context, user *model.User) (*model.Organisation, error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return nil, fmt.Errorf("begin registration tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	org := &model.Organisation{
		ID:        uuid.New(),
		Name:      model.DefaultOrganisationName(user.FirstName),
		CreatedAt: now,
		UpdatedAt: now,
	}
	org.Description = model.DefaultOrganisationDescription(org.Name)

	_, err = tx.ExecContext(ctx, `
		INSERT INTO organisations (org_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, org.ID, org.Name, org.Description, org.CreatedAt, org.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert organisation: %w", err)
	}

	user.ID = uuid.New()
	user.OrganisationID = &org.ID
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (user_id, first_name, last_name, email, password_hash, phone, organisation_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash,
		user.Phone, user.OrganisationID, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("commit registration tx: %w", err)
	}
	return org, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()

	return scanUser(r.db.QueryRowContext(ctx, `
		SELECT user_id, first_name, last_name, email, password_hash, phone, organisation_id, created_at, updated_at
		FROM users WHERE user_id = $1
	`, id))
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()

	return scanUser(r.db.QueryRowContext(ctx, `
		SELECT user_id, first_name, last_name, email, password_hash, phone, organisation_id, created_at, updated_at
		FROM users WHERE email = $1
	`, email))
}

// SetOrganisation reassigns a user's membership. Idempotent: repeating the
// call with the same arguments leaves the same end state.
func (r *PostgresUserRepository) SetOrganisation(ctx context.Context, userID, orgID uuid.UUID) error {
	ctx, cancel := queryCtx(ctx, r.timeout)
	defer cancel()

	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM organisations WHERE org_id = $1)`, orgID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check organisation: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE users SET organisation_id = $2, updated_at = $3 WHERE user_id = $1
	`, userID, orgID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update membership: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// scanUser scans a single row into a User struct.
func scanUser(row *sql.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash,
		&u.Phone, &u.OrganisationID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
