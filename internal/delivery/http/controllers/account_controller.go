package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"invitedesk/internal/delivery/http/helpers"
	"invitedesk/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// CreateAccountRequest is the request body for POST /accounts
type CreateAccountRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Password string `json:"password"`
	Role     string `json:"role"` // "admin", "superuser", or "user"
}

// Validate implements Validator.
func (c CreateAccountRequest) Validate() []string {
	var errs []string
	email := strings.TrimSpace(strings.ToLower(c.Email))
	if email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegexp.MatchString(email) {
		errs = append(errs, "invalid email format")
	}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, "name is required")
	}
	if c.Password == "" {
		errs = append(errs, "password is required")
	} else if len(c.Password) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}
	if !domain.Role(strings.TrimSpace(strings.ToLower(c.Role))).Valid() {
		errs = append(errs, "role must be \"admin\", \"superuser\", or \"user\"")
	}
	return errs
}

// ChangeRoleRequest is the request body for PUT /accounts/{accountID}/role
type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// Validate implements Validator.
func (c ChangeRoleRequest) Validate() []string {
	if !domain.Role(strings.TrimSpace(strings.ToLower(c.Role))).Valid() {
		return []string{"role must be \"admin\", \"superuser\", or \"user\""}
	}
	return nil
}

// AccountSuccessResponse is the success response envelope for account endpoints.
type AccountSuccessResponse struct {
	Data  *domain.Account   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AccountListSuccessResponse is the success response envelope for GET /accounts (200).
type AccountListSuccessResponse struct {
	Data  []*domain.Account `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AccountController handles staff account management endpoints.
type AccountController struct {
	Logger   *slog.Logger
	Accounts domain.AccountService
}

// NewAccountController creates an AccountController with the given logger and service.
func NewAccountController(logger *slog.Logger, accounts domain.AccountService) *AccountController {
	return &AccountController{Logger: logger, Accounts: accounts}
}

// Create godoc
// @Summary Create a staff account
// @Description Create a staff account with email, name, password, and role. Admin only.
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateAccountRequest true "Account data"
// @Success 201 {object} controllers.AccountSuccessResponse "data contains the created account"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /accounts [post]
func (c *AccountController) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	var req CreateAccountRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	email := strings.TrimSpace(strings.ToLower(req.Email))
	role := domain.Role(strings.TrimSpace(strings.ToLower(req.Role)))
	account, err := c.Accounts.Create(r.Context(), actor, email, req.Name, req.LastName, req.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "only admins can create accounts")
		case errors.Is(err, domain.ErrDuplicateEmail):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, account)
}

// ChangeRole godoc
// @Summary Change an account's role
// @Description Change the role of a staff account. Admin only.
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param accountID path string true "Account ID"
// @Param body body ChangeRoleRequest true "New role"
// @Success 200 {object} controllers.AccountSuccessResponse "data contains the updated account"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /accounts/{accountID}/role [put]
func (c *AccountController) ChangeRole(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	var req ChangeRoleRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	accountID := r.PathValue("accountID")
	role := domain.Role(strings.TrimSpace(strings.ToLower(req.Role)))
	account, err := c.Accounts.ChangeRole(r.Context(), actor, accountID, role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "only admins can change roles")
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

	helpers.WriteJSONSuccess(w, http.StatusOK, account)
}

// List godoc
// @Summary List staff accounts
// @Description Returns all staff accounts. Requires an admin or superuser account.
// @Tags accounts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.AccountListSuccessResponse "data contains the accounts"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /accounts [get]
func (c *AccountController) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	accounts, err := c.Accounts.ListStaff(r.Context(), actor)
	if err != nil {
		if errors.Is(err, domain.ErrForbidden) {
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "insufficient privileges")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, accounts)
}
