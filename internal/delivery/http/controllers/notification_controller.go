package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"invitedesk/internal/delivery/http/helpers"
	"invitedesk/internal/domain"
)

// NotificationListSuccessResponse is the success response envelope for GET /notifications (200).
type NotificationListSuccessResponse struct {
	Data  []*domain.Notification `json:"data"`
	Error *helpers.APIError      `json:"error"`
}

// NotificationController handles the notification inbox endpoints.
type NotificationController struct {
	Logger   *slog.Logger
	Notifier domain.Notifier
	Accounts domain.AccountService
}

// NewNotificationController creates a NotificationController.
func NewNotificationController(logger *slog.Logger, notifier domain.Notifier, accounts domain.AccountService) *NotificationController {
	return &NotificationController{Logger: logger, Notifier: notifier, Accounts: accounts}
}

// List godoc
// @Summary List notifications
// @Description Returns the authenticated account's notifications, newest first. Pass unread=true to filter to unread only.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread notifications"
// @Success 200 {object} controllers.NotificationListSuccessResponse "data contains the notifications"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notifications [get]
func (c *NotificationController) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	unreadOnly := r.URL.Query().Get("unread") == "true"
	notifications, err := c.Notifier.ListForAccount(r.Context(), actor, unreadOnly)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, notifications)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Description Marks one of the authenticated account's notifications as read.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param notificationID path string true "Notification ID"
// @Success 204 "notification marked as read"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notifications/{notificationID}/read [post]
func (c *NotificationController) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r, c.Accounts, c.Logger)
	if !ok {
		return
	}
	notificationID := r.PathValue("notificationID")
	if err := c.Notifier.MarkRead(r.Context(), actor, notificationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "notification not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
