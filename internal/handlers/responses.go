// File: internal/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jmorales/go-chat-messages/internal/domain"
)

// StandardResponse is the envelope for single-record endpoints.
type StandardResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// PaginationInfo accompanies every message page.
type PaginationInfo struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

// MessageListResponse is the envelope for the session retrieval endpoint.
type MessageListResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	Data       []domain.Message `json:"data"`
	Pagination PaginationInfo   `json:"pagination"`
}

// ErrorResponse is the envelope for all error statuses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
}

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: message})
}

// writeFieldError names the offending field alongside the error message.
func writeFieldError(w http.ResponseWriter, field, message string, status int) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: message, Field: field})
}
