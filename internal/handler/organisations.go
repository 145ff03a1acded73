package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/orgdesk/backend/internal/apierrors"
	"github.com/orgdesk/backend/internal/auth"
	"github.com/orgdesk/backend/internal/model"
	"github.com/orgdesk/backend/internal/repository"
	"github.com/orgdesk/backend/internal/service"
)

// OrganisationHandler exposes HTTP endpoints for organisations.
type OrganisationHandler struct {
	svc    *service.AccountService
	logger *slog.Logger
}

// NewOrganisationHandler creates a new OrganisationHandler.
func NewOrganisationHandler(svc *service.AccountService, logger *slog.Logger) *OrganisationHandler {
	return &OrganisationHandler{svc: svc, logger: logger}
}

// CreateOrganisationRequest is the payload for POST /api/organisations.
type CreateOrganisationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddUserRequest is the payload for POST /api/organisations/{orgId}/users.
type AddUserRequest struct {
	UserID string `json:"userId"`
}

// orgInfo is the organisation shape returned in API responses.
type orgInfo struct {
	OrgID       string `json:"orgId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List handles GET /api/organisations.
func (h *OrganisationHandler) List(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		apierrors.NewUnauthorized("authentication required").Write(w)
		return
	}

	orgs, err := h.svc.ListOrganisations(r.Context(), requesterID)
	if err != nil {
		h.logger.Error("list organisations failed", "error", err)
		apierrors.NewInternal("Failed to fetch organisations").Write(w)
		return
	}
	if len(orgs) == 0 {
		apierrors.NewNotFound("Organisations not found").Write(w)
		return
	}

	data := make([]orgInfo, 0, len(orgs))
	for _, org := range orgs {
		data = append(data, toOrgInfo(org))
	}
	writeSuccess(w, http.StatusOK, "Organisations retrieved successfully", data)
}

// Get handles GET /api/organisations/{orgId}. A missing organisation and one
// the requester is not a member of return the same 404.
func (h *OrganisationHandler) Get(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		apierrors.NewUnauthorized("authentication required").Write(w)
		return
	}

	orgID, err := uuid.Parse(chi.URLParam(r, "orgId"))
	if err != nil {
		apierrors.NewNotFound("Organisation not found or you do not have access").Write(w)
		return
	}

	org, err := h.svc.GetOrganisation(r.Context(), requesterID, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			apierrors.NewNotFound("Organisation not found or you do not have access").Write(w)
			return
		}
		h.logger.Error("get organisation failed", "error", err)
		apierrors.NewInternal("Failed to fetch organisation").Write(w)
		return
	}

	writeSuccess(w, http.StatusOK, "Organisation record retrieved successfully", toOrgInfo(org))
}

// Create handles POST /api/organisations. The creator becomes a member of
// the new organisation.
func (h *OrganisationHandler) Create(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		apierrors.NewUnauthorized("authentication required").Write(w)
		return
	}

	var req CreateOrganisationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.NewBadRequest("invalid request body").Write(w)
		return
	}

	org, err := h.svc.CreateOrganisation(r.Context(), requesterID, req.Name, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrMissingName) {
			apierrors.NewBadRequest("Name is required").Write(w)
			return
		}
		h.logger.Error("create organisation failed", "error", err)
		apierrors.NewInternal("Failed to create organisation").Write(w)
		return
	}

	writeSuccess(w, http.StatusCreated, "Organisation created successfully", toOrgInfo(org))
}

// AddUser handles POST /api/organisations/{orgId}/users.
func (h *OrganisationHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	orgID, err := uuid.Parse(chi.URLParam(r, "orgId"))
	if err != nil {
		apierrors.NewNotFound("Organisation or user not found").Write(w)
		return
	}

	var req AddUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.NewBadRequest("invalid request body").Write(w)
		return
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		apierrors.NewNotFound("Organisation or user not found").Write(w)
		return
	}

	if err := h.svc.AddUserToOrganisation(r.Context(), orgID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			apierrors.NewNotFound("Organisation or user not found").Write(w)
			return
		}
		h.logger.Error("add user to organisation failed", "error", err)
		apierrors.NewInternal("Failed to add user to organisation").Write(w)
		return
	}

	writeSuccess(w, http.StatusOK, "User added to organisation successfully", nil)
}

func toOrgInfo(org *model.Organisation) orgInfo {
	return orgInfo{
		OrgID:       org.ID.String(),
		Name:        org.Name,
		Description: org.Description,
	}
}
