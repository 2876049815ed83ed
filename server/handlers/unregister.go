package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mergington/activityserver/registry"
)

// UnregisterHandler handles requests to remove a student from an activity.
type UnregisterHandler struct {
	logger   *slog.Logger
	registry ActivityRegistry
	recorder SignupRecorder
}

// NewUnregisterHandler creates a new UnregisterHandler.
func NewUnregisterHandler(logger *slog.Logger, registry ActivityRegistry, recorder SignupRecorder) *UnregisterHandler {
	return &UnregisterHandler{
		logger:   logger,
		registry: registry,
		recorder: recorder,
	}
}

// ServeHTTP implements http.Handler.
func (h *UnregisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, detailMissingEmail)
		return
	}

	err := h.registry.Withdraw(activity, email)
	h.recorder.RecordWithdrawal(activity, err)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			writeDetail(w, http.StatusNotFound, detailActivityNotFound)
		case errors.Is(err, registry.ErrNotEnrolled):
			writeDetail(w, http.StatusBadRequest, detailNotRegistered)
		default:
			writeDetail(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	refreshRoster(h.registry, h.recorder, activity)

	h.logger.Info("student unregistered", "activity", activity, "email", email)
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activity),
	})
}
