package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"invitedesk/internal/delivery/http/helpers"
	"invitedesk/internal/domain"
)

const birthDateLayout = "2006-01-02"

// ProfileRequest is the attendee profile portion of registration request bodies.
// BirthDate uses the YYYY-MM-DD layout.
type ProfileRequest struct {
	Email          string `json:"email"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	BirthDate      string `json:"birth_date"`
	Country        string `json:"country"`
	VisaRequired   bool   `json:"visa_required"`
	PassportNumber string `json:"passport_number,omitempty"`
}

func (p ProfileRequest) validate() []string {
	var errs []string
	if strings.TrimSpace(p.Email) == "" {
		errs = append(errs, "email is required")
	}
	if strings.TrimSpace(p.BirthDate) == "" {
		errs = append(errs, "birth_date is required")
	} else if _, err := time.Parse(birthDateLayout, p.BirthDate); err != nil {
		errs = append(errs, "birth_date must use the YYYY-MM-DD format")
	}
	return errs
}

func (p ProfileRequest) toProfile() *domain.AttendeeProfile {
	birthDate, _ := time.Parse(birthDateLayout, p.BirthDate)
	return &domain.AttendeeProfile{
		Email:          p.Email,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		BirthDate:      birthDate,
		Country:        p.Country,
		VisaRequired:   p.VisaRequired,
		PassportNumber: p.PassportNumber,
	}
}

// InvitationRegistrationRequest is the request body for POST /registrations/invitation
type InvitationRegistrationRequest struct {
	Code    string         `json:"code"`
	Profile ProfileRequest `json:"profile"`
}

// Validate implements Validator.
func (i InvitationRegistrationRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(i.Code) == "" {
		errs = append(errs, "code is required")
	}
	errs = append(errs, i.Profile.validate()...)
	return errs
}

// ManualRegistrationRequest is the request body for POST /registrations
type ManualRegistrationRequest struct {
	Category string         `json:"category"`
	Profile  ProfileRequest `json:"profile"`
}

// Validate implements Validator.
func (m ManualRegistrationRequest) Validate() []string {
	var errs []string
	if !domain.AttendeeCategory(strings.TrimSpace(strings.ToLower(m.Category))).Valid() {
		errs = append(errs, "unknown category")
	}
	errs = append(errs, m.Profile.validate()...)
	return errs
}

// UpdateStatusRequest is the request body for PUT /attendees/{attendeeID}/status
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (u UpdateStatusRequest) Validate() []string {
	if !domain.AttendeeStatus(strings.TrimSpace(strings.ToLower(u.Status))).Valid() {
		return []string{"unknown status"}
	}
	return nil
}

// AttendeeSuccessResponse is the success response envelope for registration endpoints.
type AttendeeSuccessResponse struct {
	Data  *domain.Attendee  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RegistrationController handles attendee registration and review endpoints.
type RegistrationController struct {
	Logger        *slog.Logger
	Registrations domain.RegistrationService
	Accounts      domain.AccountService
}

// NewRegistrationController creates a RegistrationController.
func NewRegistrationController(logger *slog.Logger, registrations domain.RegistrationService, accounts domain.AccountService) *RegistrationController {
	return &RegistrationController{
		Logger:        logger,
		Registrations: registrations,
		Accounts:      accounts,
	}
}

// RegisterViaInvitation godoc
// @Summary Register with an invitation code
// @Description Consume a single-use invitation code and create a pending registration in the code's category. No authentication required.
// @Tags registrations
// @Accept json
// @Produce json
// @Param body body InvitationRegistrationRequest true "Invitation code and attendee profile"
// @Success 201 {object} controllers.AttendeeSuccessResponse "data contains the created attendee"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown code)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (code already used or email already registered)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/invitation [post]
func (c *RegistrationController) RegisterViaInvitation(w http.ResponseWriter, r *http.Request) {
	var req InvitationRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	attendee, err := c.Registrations.RegisterViaInvitation(r.Context(), req.Code, req.Profile.toProfile())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "invitation code not found")
		case errors.Is(err, domain.ErrInvitationUsed), errors.Is(err, domain.ErrConcurrentRedemption):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "invitation code already used")
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

	helpers.WriteJSONSuccess(w, http.StatusCreated, attendee)
}

// RegisterManually godoc
// @Summary Register an attendee manually
// @Description Create a registration on behalf of the authenticated staff account, charging one slot in the category unless the account is quota-exempt.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ManualRegistrationRequest true "Category and attendee profile"
// @Success 201 {object} controllers.AttendeeSuccessResponse "data contains the created attendee"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (email already registered or no slots left)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations [post]
func (c *RegistrationController) RegisterManually(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	var req ManualRegistrationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category := domain.AttendeeCategory(strings.TrimSpace(strings.ToLower(req.Category)))
	attendee, err := c.Registrations.RegisterManually(r.Context(), actor, category, req.Profile.toProfile())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientSlots):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "no slots left in this category")
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

	helpers.WriteJSONSuccess(w, http.StatusCreated, attendee)
}

// UpdateStatus godoc
// @Summary Update an attendee's review status
// @Description Move a registration through review (pending, approved, declined, change_requested). Requires an admin or superuser account.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attendeeID path string true "Attendee ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} controllers.AttendeeSuccessResponse "data contains the updated attendee"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /attendees/{attendeeID}/status [put]
func (c *RegistrationController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	attendeeID := r.PathValue("attendeeID")
	status := domain.AttendeeStatus(strings.TrimSpace(strings.ToLower(req.Status)))
	attendee, err := c.Registrations.UpdateStatus(r.Context(), actor, attendeeID, status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "insufficient privileges")
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "attendee not found")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusOK, attendee)
}
