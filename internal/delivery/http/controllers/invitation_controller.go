package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"invitedesk/internal/delivery/http/helpers"
	"invitedesk/internal/domain"
)

// GenerateInvitationsRequest is the request body for POST /invitations
type GenerateInvitationsRequest struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Validate implements Validator.
func (g GenerateInvitationsRequest) Validate() []string {
	var errs []string
	if !domain.AttendeeCategory(strings.TrimSpace(strings.ToLower(g.Category))).Valid() {
		errs = append(errs, "unknown category")
	}
	if g.Count < 1 {
		errs = append(errs, "count must be at least 1")
	}
	return errs
}

// InvitationListSuccessResponse is the success response envelope for invitation list endpoints.
type InvitationListSuccessResponse struct {
	Data  []*domain.Invitation `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// InvitationSuccessResponse is the success response envelope for GET /invitations/{code} (200).
type InvitationSuccessResponse struct {
	Data  *domain.Invitation `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// InvitationController handles invitation code endpoints.
type InvitationController struct {
	Logger      *slog.Logger
	Invitations domain.InvitationService
	Accounts    domain.AccountService
}

// NewInvitationController creates an InvitationController.
func NewInvitationController(logger *slog.Logger, invitations domain.InvitationService, accounts domain.AccountService) *InvitationController {
	return &InvitationController{Logger: logger, Invitations: invitations, Accounts: accounts}
}

// Generate godoc
// @Summary Generate invitation codes
// @Description Create a batch of fresh single-use invitation codes for a category. Requires an admin or superuser account.
// @Tags invitations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body GenerateInvitationsRequest true "Category and count"
// @Success 201 {object} controllers.InvitationListSuccessResponse "data contains the generated invitations"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations [post]
func (c *InvitationController) Generate(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	var req GenerateInvitationsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category := domain.AttendeeCategory(strings.TrimSpace(strings.ToLower(req.Category)))
	invitations, err := c.Invitations.GenerateBatch(r.Context(), actor, category, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "insufficient privileges")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, invitations)
}

// List godoc
// @Summary List invitations created by the caller
// @Description Returns all invitation codes generated by the authenticated account, used and unused.
// @Tags invitations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.InvitationListSuccessResponse "data contains the invitations"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations [get]
func (c *InvitationController) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	invitations, err := c.Invitations.ListByCreator(r.Context(), actor)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invitations)
}

// Validate godoc
// @Summary Check an invitation code
// @Description Point lookup of an invitation code before the registrant fills in the form. Distinguishes an unknown code from a consumed one. No authentication required.
// @Tags invitations
// @Produce json
// @Param code path string true "Invitation code"
// @Success 200 {object} controllers.InvitationSuccessResponse "data contains the invitation"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (code already used)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /invitations/{code} [get]
func (c *InvitationController) Validate(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("code")
	invitation, err := c.Invitations.Validate(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "invitation code not found")
		case errors.Is(err, domain.ErrInvitationUsed):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "invitation code already used")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, invitation)
}
