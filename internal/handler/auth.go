package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/orgdesk/backend/internal/apierrors"
	"github.com/orgdesk/backend/internal/model"
	"github.com/orgdesk/backend/internal/repository"
	"github.com/orgdesk/backend/internal/service"
)

// AuthHandler exposes HTTP endpoints for registration and login.
type AuthHandler struct {
	svc    *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, logger: logger}
}

// --- Request / Response types ------------------------------------------------

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo is a safe subset of user data returned in API responses.
type UserInfo struct {
	UserID         string  `json:"userId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	OrganisationID *string `json:"organisationId,omitempty"`
}

// registerData is the data payload of a successful registration.
type registerData struct {
	AccessToken string   `json:"accessToken"`
	User        UserInfo `json:"user"`
}

// loginData is the data payload of a successful login.
type loginData struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// --- Handlers ----------------------------------------------------------------

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.NewBadRequest("invalid request body").Write(w)
		return
	}

	result, err := h.svc.Register(r.Context(), req)
	if err != nil {
		var ve *service.ValidationError
		switch {
		case errors.As(err, &ve):
			apierrors.WriteValidation(w, ve.Fields)
		case errors.Is(err, repository.ErrConflict):
			apierrors.NewBadRequest("email already exists").Write(w)
		default:
			h.logger.Error("registration failed", "error", err)
			apierrors.NewBadRequest("Registration unsuccessful").Write(w)
		}
		return
	}

	writeSuccess(w, http.StatusCreated, "Registration successful", registerData{
		AccessToken: result.Token,
		User:        toUserInfo(result.User),
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.NewUnauthorized("Authentication failed").Write(w)
		return
	}

	result, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrAuthentication) {
			h.logger.Error("login failed", "error", err)
		}
		apierrors.NewUnauthorized("Authentication failed").Write(w)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", loginData{
		Token: result.Token,
		User:  toUserInfo(result.User),
	})
}

// --- Helpers -----------------------------------------------------------------

func toUserInfo(u *model.User) UserInfo {
	info := UserInfo{
		UserID:    u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
	}
	if u.OrganisationID != nil {
		s := u.OrganisationID.String()
		info.OrganisationID = &s
	}
	return info
}
