package handlers

import (
	"net/http"

	"github.com/mergington/activityserver/buildinfo"
)

// HandleHealth is a simple health check handler that returns "ok".
// The running version is reported in the X-Version header.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("X-Version", buildinfo.Get().Version)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
