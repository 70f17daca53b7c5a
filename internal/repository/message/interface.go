// File: internal/repository/message/interface.go
package message

import (
	"context"

	"github.com/jmorales/go-chat-messages/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) (*domain.Message, error)
	ExistsByMessageID(ctx context.Context, messageID string) (bool, error)
	FindByMessageID(ctx context.Context, messageID string) (*domain.Message, error)
	FindBySessionWithPagination(ctx context.Context, sessionID, sender string, limit, offset int) ([]domain.Message, int64, error)
	CountBySession(ctx context.Context, sessionID string) (int64, error)
}
