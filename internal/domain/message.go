// File: internal/domain/message.go
package domain

import "time"

// Sender values allowed for a message. Nothing else is ever persisted.
const (
	SenderUser   = "user"
	SenderSystem = "system"
)

// Message represents a single persisted chat message.
//
// Content holds the filtered text that clients see; OriginalContent keeps
// the submission as received and is never modified after insert.
type Message struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	MessageID string `json:"message_id" gorm:"size:100;not null;uniqueIndex:uk_message_id"`
	SessionID string `json:"session_id" gorm:"size:100;not null;index:idx_session_sender;index:idx_session_timestamp"`

	Content                 string `json:"content" gorm:"type:text;not null"`
	OriginalContent         string `json:"original_content" gorm:"type:text;not null"`
	HasInappropriateContent bool   `json:"has_inappropriate_content" gorm:"default:false"`

	Timestamp time.Time `json:"timestamp" gorm:"not null;index:idx_session_timestamp"`
	Sender    string    `json:"sender" gorm:"size:50;not null;index:idx_session_sender"`

	// Derived from Content at write time, never lazily recomputed.
	MessageLength int `json:"message_length" gorm:"not null"`
	WordCount     int `json:"word_count" gorm:"not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName pins the table name regardless of GORM's pluralization rules.
func (Message) TableName() string {
	return "messages"
}

// IsValidSender reports whether s is one of the allowed sender values.
// Matching is case-sensitive and exact.
func IsValidSender(s string) bool {
	return s == SenderUser || s == SenderSystem
}
