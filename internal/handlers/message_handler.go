// File: internal/handlers/message_handler.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jmorales/go-chat-messages/internal/services/message"
)

type MessageHandler struct {
	MessageService *message.Service
}

func NewMessageHandler(ms *message.Service) *MessageHandler {
	return &MessageHandler{MessageService: ms}
}

// CreateMessage handles POST /api/messages. The submission is validated,
// filtered and persisted; the response echoes the full stored record.
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var sub message.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.MessageService.Create(r.Context(), sub)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, StandardResponse{
		Success: true,
		Message: "Message created successfully",
		Data:    created,
	})
}

// GetSessionMessages handles GET /api/messages/{session_id} with optional
// sender, limit and offset query parameters.
func (h *MessageHandler) GetSessionMessages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["session_id"]

	filter := message.QueryFilter{Sender: r.URL.Query().Get("sender")}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, "Invalid limit: must be an integer", http.StatusUnprocessableEntity)
			return
		}
		// An explicit limit of zero is out of range, not "use the default".
		if limit < 1 {
			writeFieldError(w, "limit", "limit must be >= 1", http.StatusUnprocessableEntity)
			return
		}
		filter.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, "Invalid offset: must be an integer", http.StatusUnprocessableEntity)
			return
		}
		filter.Offset = offset
	}

	page, err := h.MessageService.ListBySession(r.Context(), sessionID, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	msg := "Messages retrieved successfully"
	if page.Total == 0 {
		msg = fmt.Sprintf("No messages found for session '%s'", sessionID)
	}

	writeJSON(w, http.StatusOK, MessageListResponse{
		Success: true,
		Message: msg,
		Data:    page.Messages,
		Pagination: PaginationInfo{
			Total:   page.Total,
			Limit:   page.Limit,
			Offset:  page.Offset,
			HasMore: page.HasMore,
		},
	})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// validation 422, duplicate 409, anything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if me, ok := message.AsMessageError(err); ok {
		switch me.Type {
		case message.ErrTypeValidation:
			writeFieldError(w, me.Field, me.Message, http.StatusUnprocessableEntity)
			return
		case message.ErrTypeDuplicate:
			writeError(w, me.Message, http.StatusConflict)
			return
		case message.ErrTypeNotFound:
			writeError(w, me.Message, http.StatusNotFound)
			return
		}
	}
	writeError(w, "Internal server error", http.StatusInternalServerError)
}
