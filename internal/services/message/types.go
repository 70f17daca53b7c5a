// File: internal/services/message/types.go
package message

import (
	"time"

	"github.com/jmorales/go-chat-messages/internal/domain"
)

// Logger defines the logging interface used by the message service
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Submission is the client-provided payload for creating a message,
// prior to filtering and server-assigned fields.
type Submission struct {
	MessageID string    `json:"message_id"`
	SessionID string    `json:"session_id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
}

// QueryFilter narrows and pages a session's messages.
// Zero values for Limit/Offset mean "use the configured defaults";
// out-of-range values are rejected, never clamped.
type QueryFilter struct {
	Sender string
	Limit  int
	Offset int
}

// Page is one bounded, ordered slice of a session's messages plus the
// pagination metadata clients need to continue.
type Page struct {
	Messages []domain.Message `json:"messages"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
	HasMore  bool             `json:"has_more"`
}
