// File: internal/services/message/service.go
package message

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmorales/go-chat-messages/internal/domain"
	repo "github.com/jmorales/go-chat-messages/internal/repository/message"
)

// Service orchestrates the message pipeline: validate, filter, derive
// metadata, check for duplicates, persist. It also answers paged session
// queries. All configuration is injected at construction.
type Service struct {
	repository repo.MessageRepository
	validator  *Validator
	filter     *ContentFilter
	cfg        *Config
	logger     Logger
}

func NewService(repository repo.MessageRepository, cfg *Config, logger Logger) (*Service, error) {
	if repository == nil {
		return nil, errors.New("message repository is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid message service config: %w", err)
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	return &Service{
		repository: repository,
		validator:  NewValidator(cfg),
		filter:     NewContentFilter(cfg.BlockedWords),
		cfg:        cfg,
		logger:     logger,
	}, nil
}

// Create runs the full write pipeline and returns the persisted record.
// The pipeline fails fast: validation before filtering before persistence,
// and nothing is written on any failure.
func (s *Service) Create(ctx context.Context, sub Submission) (*domain.Message, error) {
	const op = "create"

	if err := s.validator.Validate(sub); err != nil {
		return nil, err
	}

	// The original text is trimmed once here; original_content stores the
	// trimmed submission and is never re-filtered.
	original := strings.TrimSpace(sub.Content)
	filtered, flagged := s.filter.Filter(original)
	stats := CalculateStats(filtered)

	// Fast-path duplicate check. Read-then-write is racy under concurrency;
	// the unique constraint on message_id is the real guarantee below.
	exists, err := s.repository.ExistsByMessageID(ctx, sub.MessageID)
	if err != nil {
		return nil, NewStoreError(op, "failed to check for existing message", err)
	}
	if exists {
		return nil, NewDuplicateError(op, sub.MessageID)
	}

	record := &domain.Message{
		MessageID:               sub.MessageID,
		SessionID:               sub.SessionID,
		Content:                 filtered,
		OriginalContent:         original,
		HasInappropriateContent: flagged,
		Timestamp:               sub.Timestamp.UTC(),
		Sender:                  sub.Sender,
		MessageLength:           stats.MessageLength,
		WordCount:               stats.WordCount,
	}

	created, err := s.repository.Create(ctx, record)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateMessageID) {
			// Lost the race against a concurrent insert of the same id.
			return nil, NewDuplicateError(op, sub.MessageID)
		}
		return nil, NewStoreError(op, "failed to persist message", err)
	}

	s.logger.Info("message created",
		"message_id", created.MessageID,
		"session_id", created.SessionID,
		"sender", created.Sender,
		"flagged", created.HasInappropriateContent,
	)
	return created, nil
}

// ListBySession returns one page of a session's messages, optionally
// restricted to a sender, ordered by insertion. An unknown session is not an
// error: it yields an empty page with total 0.
func (s *Service) ListBySession(ctx context.Context, sessionID string, filter QueryFilter) (*Page, error) {
	const op = "list_by_session"

	if strings.TrimSpace(sessionID) == "" {
		return nil, NewValidationError(op, "session_id", "session_id cannot be empty")
	}

	limit := filter.Limit
	if limit == 0 {
		limit = s.cfg.DefaultPageSize
	}
	if limit < 1 || limit > s.cfg.MaxPageSize {
		return nil, NewValidationError(op, "limit",
			fmt.Sprintf("limit must be between 1 and %d", s.cfg.MaxPageSize))
	}
	if filter.Offset < 0 {
		return nil, NewValidationError(op, "offset", "offset must be >= 0")
	}
	if filter.Sender != "" && !domain.IsValidSender(filter.Sender) {
		return nil, NewValidationError(op, "sender", "sender filter must be 'user' or 'system'")
	}

	messages, total, err := s.repository.FindBySessionWithPagination(ctx, sessionID, filter.Sender, limit, filter.Offset)
	if err != nil {
		return nil, NewStoreError(op, "failed to retrieve session messages", err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}

	s.logger.Debug("session messages retrieved",
		"session_id", sessionID,
		"returned", len(messages),
		"total", total,
	)

	return &Page{
		Messages: messages,
		Total:    total,
		Limit:    limit,
		Offset:   filter.Offset,
		HasMore:  int64(filter.Offset+len(messages)) < total,
	}, nil
}
