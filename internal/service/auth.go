// Package service implements registration, login, and access control on top
// of the repository layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/orgdesk/backend/internal/auth"
	"github.com/orgdesk/backend/internal/model"
	"github.com/orgdesk/backend/internal/repository"
	"github.com/orgdesk/backend/internal/validate"
)

// Errors returned by service operations. Handlers map each kind to an HTTP
// status; anything unrecognized is an internal failure.
var (
	// ErrAuthentication covers both unknown email and wrong password, so a
	// caller cannot tell the two apart.
	ErrAuthentication = errors.New("authentication failed")
	// ErrForbidden signals an authenticated but unauthorized request.
	ErrForbidden = errors.New("forbidden")
	// ErrMissingName signals an organisation create without a name.
	ErrMissingName = errors.New("name is required")
)

// ValidationError carries the per-field failures of a rejected registration.
type ValidationError struct {
	Fields []validate.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// LoginTokenTTL is the lifetime of tokens minted on login.
const LoginTokenTTL = 2 * time.Hour

// AuthService orchestrates validation, persistence, and token issuance for
// register and login.
type AuthService struct {
	users  repository.UserRepository
	orgs   repository.OrganisationRepository
	tokens *auth.JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, orgs repository.OrganisationRepository, tokens *auth.JWTManager) *AuthService {
	return &AuthService{users: users, orgs: orgs, tokens: tokens}
}

// RegisterInput is the submitted registration data.
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// AuthResult holds the outcome of a successful register or login.
type AuthResult struct {
	Token        string
	User         *model.User
	Organisation *model.Organisation
}

// Register validates the input, atomically creates the user together with
// its default organisation, and mints a token for the new user. A duplicate
// email surfaces as repository.ErrConflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if errs := validate.Registration(map[string]string{
		"firstName": in.FirstName,
		"lastName":  in.LastName,
		"email":     in.Email,
		"password":  in.Password,
		"phone":     in.Phone,
	}); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Phone:        in.Phone,
	}

	org, err := s.users.CreateWithOrganisation(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{Token: token, User: user, Organisation: org}, nil
}

// Login checks the credentials and mints a two-hour token. Unknown email and
// wrong password both return ErrAuthentication.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAuthentication
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrAuthentication
	}

	var org *model.Organisation
	if user.OrganisationID != nil {
		org, err = s.orgs.GetByID(ctx, *user.OrganisationID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}

	token, err := s.tokens.Issue(user.ID, LoginTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &AuthResult{Token: token, User: user, Organisation: org}, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
