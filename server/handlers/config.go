package handlers

import (
	"net/http"

	"gopkg.in/yaml.v3"
)

// ConfigHandler returns the current configuration as YAML.
type ConfigHandler struct {
	provider ConfigProvider
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(provider ConfigProvider) *ConfigHandler {
	return &ConfigHandler{
		provider: provider,
	}
}

// ServeHTTP implements http.Handler.
func (h *ConfigHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, err := yaml.Marshal(h.provider.Config())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, DetailResponse{
			Detail: "failed to marshal configuration: " + err.Error(),
		})
		return
	}

	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
