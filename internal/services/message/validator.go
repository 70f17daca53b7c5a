// File: internal/services/message/validator.go
package message

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jmorales/go-chat-messages/internal/domain"
)

var (
	messageIDPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
	sessionIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// Validator enforces structural and semantic rules on a submission before
// any filtering or persistence happens. It fails on the first violated rule.
type Validator struct {
	cfg *Config
	now func() time.Time
}

func NewValidator(cfg *Config) *Validator {
	return &Validator{cfg: cfg, now: func() time.Time { return time.Now().UTC() }}
}

// Validate checks required fields, id formats, the sender enum, content
// emptiness/length, and that the timestamp is not in the future. A timestamp
// exactly equal to "now" is valid.
func (v *Validator) Validate(sub Submission) error {
	const op = "validate"

	if sub.MessageID == "" {
		return NewValidationError(op, "message_id", "message_id is required")
	}
	if utf8.RuneCountInString(sub.MessageID) > v.cfg.MaxIDLength {
		return NewValidationError(op, "message_id", "message_id exceeds maximum length")
	}
	if !messageIDPattern.MatchString(sub.MessageID) {
		return NewValidationError(op, "message_id", "message_id may only contain letters, numbers, hyphens, underscores and dots")
	}

	if sub.SessionID == "" {
		return NewValidationError(op, "session_id", "session_id is required")
	}
	if utf8.RuneCountInString(sub.SessionID) > v.cfg.MaxIDLength {
		return NewValidationError(op, "session_id", "session_id exceeds maximum length")
	}
	if !sessionIDPattern.MatchString(sub.SessionID) {
		return NewValidationError(op, "session_id", "session_id may only contain letters, numbers, hyphens and underscores")
	}

	if strings.TrimSpace(sub.Content) == "" {
		return NewValidationError(op, "content", "content cannot be empty or whitespace only")
	}
	if utf8.RuneCountInString(sub.Content) > v.cfg.MaxContentLength {
		return NewValidationError(op, "content", "content exceeds maximum length")
	}

	if !domain.IsValidSender(sub.Sender) {
		if sub.Sender == "" {
			return NewValidationError(op, "sender", "sender is required")
		}
		return NewValidationError(op, "sender", "sender must be 'user' or 'system'")
	}

	if sub.Timestamp.IsZero() {
		return NewValidationError(op, "timestamp", "timestamp is required")
	}
	if sub.Timestamp.UTC().After(v.now()) {
		return NewValidationError(op, "timestamp", "timestamp cannot be in the future")
	}

	return nil
}
