package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/orgdesk/backend/internal/apierrors"
	"github.com/orgdesk/backend/internal/auth"
	"github.com/orgdesk/backend/internal/repository"
	"github.com/orgdesk/backend/internal/service"
)

// UserHandler exposes HTTP endpoints for user records.
type UserHandler struct {
	svc    *service.AccountService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.AccountService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, logger: logger}
}

// Get handles GET /api/users/{userId}. Only the authenticated user's own
// record is readable; any other id is forbidden whether or not it exists.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		apierrors.NewUnauthorized("authentication required").Write(w)
		return
	}

	// An unparseable id can never equal the requester's, so it falls under
	// the same forbidden outcome as any foreign id.
	targetID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		apierrors.NewForbidden("Unauthorized access").Write(w)
		return
	}

	user, err := h.svc.GetUser(r.Context(), requesterID, targetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			apierrors.NewForbidden("Unauthorized access").Write(w)
		case errors.Is(err, repository.ErrNotFound):
			apierrors.NewNotFound("User not found").Write(w)
		default:
			h.logger.Error("get user failed", "error", err)
			apierrors.NewInternal("Failed to fetch user").Write(w)
		}
		return
	}

	writeSuccess(w, http.StatusOK, "User record retrieved successfully", toUserInfo(user))
}
