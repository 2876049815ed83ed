package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mergington/activityserver/registry"
)

// Fixed detail strings for roster mutation failures.
const (
	detailActivityNotFound = "Activity not found"
	detailAlreadySignedUp  = "Student is already signed up"
	detailNotRegistered    = "Student is not registered for this activity"
	detailMissingEmail     = "Missing email query parameter"
)

// SignupHandler handles requests to sign a student up for an activity.
type SignupHandler struct {
	logger   *slog.Logger
	registry ActivityRegistry
	recorder SignupRecorder
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(logger *slog.Logger, registry ActivityRegistry, recorder SignupRecorder) *SignupHandler {
	return &SignupHandler{
		logger:   logger,
		registry: registry,
		recorder: recorder,
	}
}

// ServeHTTP implements http.Handler.
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")
	email := r.URL.Query().Get("email")
	if email == "" {
		writeDetail(w, http.StatusBadRequest, detailMissingEmail)
		return
	}

	err := h.registry.Enroll(activity, email)
	h.recorder.RecordSignup(activity, err)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrActivityNotFound):
			writeDetail(w, http.StatusNotFound, detailActivityNotFound)
		case errors.Is(err, registry.ErrAlreadyEnrolled):
			writeDetail(w, http.StatusBadRequest, detailAlreadySignedUp)
		default:
			writeDetail(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	refreshRoster(h.registry, h.recorder, activity)

	h.logger.Info("student signed up", "activity", activity, "email", email)
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activity),
	})
}

// refreshRoster updates the roster gauges after a successful mutation.
func refreshRoster(reg ActivityRegistry, rec SignupRecorder, activity string) {
	act, err := reg.Activity(activity)
	if err != nil {
		return
	}
	rec.SetRoster(activity, len(act.Participants), act.MaxParticipants)
}
