// File: internal/repository/message/message_repository.go
package message

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jmorales/go-chat-messages/internal/domain"
	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("message not found")

// ErrDuplicateMessageID is returned when an insert hits the unique
// constraint on message_id. The constraint is the source of truth for
// uniqueness; the service-level existence check is only a fast path.
var ErrDuplicateMessageID = errors.New("duplicate message_id")

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

// Create inserts a new message row. A unique-constraint violation on
// message_id is mapped to ErrDuplicateMessageID so concurrent submissions
// of the same id resolve to exactly one winner.
func (r *gormMessageRepository) Create(ctx context.Context, message *domain.Message) (*domain.Message, error) {
	if message == nil {
		return nil, errors.New("message cannot be nil")
	}
	if message.MessageID == "" || message.SessionID == "" {
		return nil, errors.New("message_id and session_id are required")
	}

	err := r.db.WithContext(ctx).Create(message).Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateMessageID
		}
		// Secure logging - no message content exposed
		log.Printf("[MessageRepository] Database error creating message %q: %v", message.MessageID, err)
		return nil, errors.New("database error creating message")
	}

	log.Printf("[MessageRepository] Message created with ID: %d (message_id=%s, session=%s)", message.ID, message.MessageID, message.SessionID)
	return message, nil
}

// ExistsByMessageID checks existence without loading row data.
func (r *gormMessageRepository) ExistsByMessageID(ctx context.Context, messageID string) (bool, error) {
	if messageID == "" {
		return false, errors.New("invalid message_id")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("message_id = ?", messageID).Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error checking existence of message_id %q: %v", messageID, err)
		return false, errors.New("database error checking message existence")
	}

	return count > 0, nil
}

func (r *gormMessageRepository) FindByMessageID(ctx context.Context, messageID string) (*domain.Message, error) {
	if messageID == "" {
		return nil, errors.New("invalid message_id")
	}

	var message domain.Message
	err := r.db.WithContext(ctx).Where("message_id = ?", messageID).First(&message).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		log.Printf("[MessageRepository] Database error finding message_id %q: %v", messageID, err)
		return nil, errors.New("database query failed")
	}

	return &message, nil
}

// FindBySessionWithPagination returns one page of a session's messages plus
// the total count of rows matching the same filter. Ordering is by surrogate
// id ascending so pages stay stable across calls absent concurrent writes.
func (r *gormMessageRepository) FindBySessionWithPagination(ctx context.Context, sessionID, sender string, limit, offset int) ([]domain.Message, int64, error) {
	if sessionID == "" {
		return nil, 0, errors.New("invalid session_id")
	}
	if limit <= 0 || limit > 1000 {
		return nil, 0, errors.New("invalid limit: must be between 1 and 1000")
	}
	if offset < 0 {
		return nil, 0, errors.New("invalid offset: must be >= 0")
	}

	query := r.db.WithContext(ctx).Model(&domain.Message{}).Where("session_id = ?", sessionID)
	if sender != "" {
		query = query.Where("sender = ?", sender)
	}

	// Efficient counting without loading data
	var total int64
	if err := query.Count(&total).Error; err != nil {
		log.Printf("[MessageRepository] Database error counting messages for session %q: %v", sessionID, err)
		return nil, 0, errors.New("database error counting messages")
	}

	// Load only the requested page
	var messages []domain.Message
	err := query.
		Order("id asc").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error in paginated query for session %q: %v", sessionID, err)
		return nil, 0, errors.New("database error retrieving paginated messages")
	}

	return messages, total, nil
}

func (r *gormMessageRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	if sessionID == "" {
		return 0, errors.New("invalid session_id")
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Message{}).Where("session_id = ?", sessionID).Count(&count).Error
	if err != nil {
		log.Printf("[MessageRepository] Database error counting messages for session %q: %v", sessionID, err)
		return 0, errors.New("database error counting session messages")
	}

	return count, nil
}

// isUniqueViolation covers the translated gorm error plus the raw
// sqlite/postgres messages, since TranslateError depends on the dialector.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
