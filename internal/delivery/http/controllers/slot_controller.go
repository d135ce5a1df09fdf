package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"invitedesk/internal/delivery/http/helpers"
	"invitedesk/internal/domain"
)

// GrantSlotsRequest is the request body for PUT /accounts/{accountID}/slots
type GrantSlotsRequest struct {
	Category string `json:"category"`
	Total    int    `json:"total"`
}

// Validate implements Validator.
func (g GrantSlotsRequest) Validate() []string {
	var errs []string
	if !domain.AttendeeCategory(strings.TrimSpace(strings.ToLower(g.Category))).Valid() {
		errs = append(errs, "unknown category")
	}
	if g.Total < 0 {
		errs = append(errs, "total must not be negative")
	}
	return errs
}

// RequestSlotsRequest is the request body for POST /slots/requests
type RequestSlotsRequest struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Validate implements Validator.
func (r RequestSlotsRequest) Validate() []string {
	var errs []string
	if !domain.AttendeeCategory(strings.TrimSpace(strings.ToLower(r.Category))).Valid() {
		errs = append(errs, "unknown category")
	}
	if r.Count < 1 {
		errs = append(errs, "count must be at least 1")
	}
	return errs
}

// ResolveSlotRequestRequest is the request body for POST /slots/requests/{requestID}/resolve
type ResolveSlotRequestRequest struct {
	Approve bool `json:"approve"`
}

// SlotGrantListSuccessResponse is the success response envelope for GET /slots (200).
type SlotGrantListSuccessResponse struct {
	Data  []*domain.SlotGrant `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// SlotRequestSuccessResponse is the success response envelope for slot request endpoints.
type SlotRequestSuccessResponse struct {
	Data  *domain.SlotRequest `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// SlotController handles slot allowance and slot request endpoints.
type SlotController struct {
	Logger   *slog.Logger
	Quota    domain.QuotaService
	Accounts domain.AccountService
}

// NewSlotController creates a SlotController.
func NewSlotController(logger *slog.Logger, quota domain.QuotaService, accounts domain.AccountService) *SlotController {
	return &SlotController{Logger: logger, Quota: quota, Accounts: accounts}
}

// GetSlots godoc
// @Summary List the caller's slot grants
// @Description Returns the authenticated account's per-category slot allowances and usage.
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.SlotGrantListSuccessResponse "data contains the slot grants"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /slots [get]
func (c *SlotController) GetSlots(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	grants, err := c.Quota.Slots(r.Context(), actor)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, grants)
}

// Grant godoc
// @Summary Set an account's slot allowance
// @Description Set the total slot allowance for an account in a category. Admin only.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param accountID path string true "Account ID"
// @Param body body GrantSlotsRequest true "Category and total"
// @Success 204 "allowance updated"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /accounts/{accountID}/slots [put]
func (c *SlotController) Grant(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	var req GrantSlotsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	accountID := r.PathValue("accountID")
	category := domain.AttendeeCategory(strings.TrimSpace(strings.ToLower(req.Category)))
	if err := c.Quota.Grant(r.Context(), actor, accountID, category, req.Total); err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "only admins can grant slots")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "account not found")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RequestSlots godoc
// @Summary Request additional slots
// @Description File a request for additional slots in a category on behalf of the authenticated account.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body RequestSlotsRequest true "Category and count"
// @Success 201 {object} controllers.SlotRequestSuccessResponse "data contains the created request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /slots/requests [post]
func (c *SlotController) RequestSlots(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	var req RequestSlotsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category := domain.AttendeeCategory(strings.TrimSpace(strings.ToLower(req.Category)))
	request, err := c.Quota.RequestSlots(r.Context(), actor, category, req.Count)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, request)
}

// ResolveRequest godoc
// @Summary Resolve a slot request
// @Description Approve or decline a pending slot request. Approval raises the requester's allowance. Admin only. A request can only be resolved once.
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestID path string true "Slot request ID"
// @Param body body ResolveSlotRequestRequest true "Approve or decline"
// @Success 200 {object} controllers.SlotRequestSuccessResponse "data contains the resolved request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (already resolved)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /slots/requests/{requestID}/resolve [post]
func (c *SlotController) ResolveRequest(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	var req ResolveSlotRequestRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	requestID := r.PathValue("requestID")
	request, err := c.Quota.ResolveRequest(r.Context(), actor, requestID, req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "only admins can resolve slot requests")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "slot request not found")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, request)
}
