package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"invitedesk/internal/delivery/http/helpers"
	"invitedesk/internal/delivery/http/middleware"
	"invitedesk/internal/domain"
)

// requireActor loads the authenticated account for the request. It writes the
// error response and returns false when the account cannot be resolved, so
// callers should return immediately on !ok.
func requireActor(w http.ResponseWriter, r *http.Request, accounts domain.AccountService, logger *slog.Logger) (*domain.Account, bool) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	actor, err := accounts.GetByID(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "account no longer exists")
			return nil, false
		}
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return nil, false
	}
	return actor, true
}
