package controllers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"invitedesk/internal/delivery/http/helpers"
	"invitedesk/internal/domain"
)

// ImportRowRequest is one row of a bulk import request body.
type ImportRowRequest struct {
	Category string         `json:"category"`
	Profile  ProfileRequest `json:"profile"`
}

// ImportBatchRequest is the request body for POST /registrations/import
type ImportBatchRequest struct {
	Rows []ImportRowRequest `json:"rows"`
}

// Validate implements Validator. Row-level problems are reported by the
// service with row indexes, so only the envelope is checked here.
func (i ImportBatchRequest) Validate() []string {
	if len(i.Rows) == 0 {
		return []string{"rows must not be empty"}
	}
	return nil
}

// ImportSuccessResponse is the success response envelope for POST /registrations/import (201).
type ImportSuccessResponse struct {
	Data  *domain.BulkImportResult `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// ImportController handles bulk registration endpoints.
type ImportController struct {
	Logger   *slog.Logger
	Imports  domain.BulkImportService
	Accounts domain.AccountService
}

// NewImportController creates an ImportController.
func NewImportController(logger *slog.Logger, imports domain.BulkImportService, accounts domain.AccountService) *ImportController {
	return &ImportController{Logger: logger, Imports: imports, Accounts: accounts}
}

// ImportBatch godoc
// @Summary Import a batch of registrations
// @Description Create every row of the batch or none of them. Rows failing validation are reported with their index; a mid-batch storage failure rolls back the rows already created.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ImportBatchRequest true "Batch rows"
// @Success 201 {object} controllers.ImportSuccessResponse "data contains the batch id and created attendees"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (rejected rows in data.rejected)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (quota exceeded or duplicate email)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /registrations/import [post]
func (c *ImportController) ImportBatch(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	var req ImportBatchRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	rows := make([]*domain.RowInput, 0, len(req.Rows))
	for _, row := range req.Rows {
		rows = append(rows, &domain.RowInput{
			Category: domain.AttendeeCategory(strings.TrimSpace(strings.ToLower(row.Category))),
			Profile:  *row.Profile.toProfile(),
		})
	}
	result, err := c.Imports.ImportBatch(r.Context(), actor, rows)
	if err != nil {
		var compErr *domain.CompensationError
		switch {
		case errors.As(err, &compErr):
			c.Logger.ErrorContext(r.Context(), "bulk import rollback incomplete",
				"batch_id", compErr.BatchID, "orphans", compErr.OrphanIDs, "err", compErr.Cause)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "batch failed and cleanup is incomplete; support has been notified")
		case errors.Is(err, domain.ErrInvalidInput):
			// Rejected rows ride along so the caller can fix and resubmit.
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(helpers.APIResponse{
				Data:  result,
				Error: &helpers.APIError{Code: helpers.ErrCodeBadRequest, Message: err.Error()},
			})
		case errors.Is(err, domain.ErrForbidden):
			helpers.WriteJSONError(w, http.StatusForbidden, helpers.ErrCodeForbidden, "insufficient privileges")
		case errors.Is(err, domain.ErrInsufficientSlots):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "not enough slots for this batch")
		case errors.Is(err, domain.ErrDuplicateEmail):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "batch contains an already registered email")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}

	helpers.WriteJSONSuccess(w, http.StatusCreated, result)
}
