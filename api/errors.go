package api

import (
	"encoding/json"
	"net/http"
)

// APIError is the uniform error body. Internal diagnostic detail stays out of
// it beyond the message.
type APIError struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, APIError{Error: message})
}
