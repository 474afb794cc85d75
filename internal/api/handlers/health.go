package handlers

import (
	"net/http"
	"storyrun-service/internal/api/dto"
)

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	res := map[string]string{"status": "ok"}
	writeJSON(w, r, http.StatusOK, res)
}

// Root reports that the backend is running.
func Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: "Run backend is running"})
}

// MethodNotAllowed answers known paths requested with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
}

// NotFound answers unknown paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found")
}
