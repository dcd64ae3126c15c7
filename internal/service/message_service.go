package service

import (
	"context"
	"log/slog"

	"github.com/cwrk-planet/board-service/internal/domain"
	"github.com/cwrk-planet/board-service/internal/repository"
	"github.com/cwrk-planet/board-service/pkg/errs"
	"github.com/cwrk-planet/board-service/pkg/logger"
)

type MessageService struct {
	messages repository.MessageRepository
}

func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Post ожидает, что автор и текст уже проверены транспортом.
func (s *MessageService) Post(ctx context.Context, msg domain.Message) *domain.Message {
	created := s.messages.Create(ctx, msg.PostedBy, msg.MessageText, msg.TimePostedEpoch)
	if created == nil {
		logger.FromContext(ctx).Error("message.post.create failed", slog.Int64("posted_by", int64(msg.PostedBy)))
	}

	return created
}

// Get, в отличие от репозитория, отдает errs.ErrMessageNotFound, а не nil.
func (s *MessageService) Get(ctx context.Context, id domain.MessageID) (*domain.Message, error) {
	m := s.messages.GetByID(ctx, id)
	if m == nil {
		return nil, errs.ErrMessageNotFound
	}

	return m, nil
}

func (s *MessageService) ListByAuthor(ctx context.Context, accountID domain.AccountID) []domain.Message {
	return s.messages.ListByAuthor(ctx, accountID)
}

func (s *MessageService) ListAll(ctx context.Context) []domain.Message {
	if all := s.messages.List(ctx); all != nil {
		return all
	}
	return []domain.Message{}
}

// Update перечитывает сообщение и перезаписывает текст и время.
// Нулевое время в msg оставляет сохраненное.
func (s *MessageService) Update(ctx context.Context, msg domain.Message) (bool, error) {
	existing, err := s.Get(ctx, msg.ID)
	if err != nil {
		return false, err
	}

	existing.MessageText = msg.MessageText
	if msg.TimePostedEpoch != 0 {
		existing.TimePostedEpoch = msg.TimePostedEpoch
	}

	ok := s.messages.UpdateText(ctx, existing.ID, existing.MessageText, existing.TimePostedEpoch)
	if !ok {
		logger.FromContext(ctx).Error("message.update.updateText failed", slog.Int64("message_id", int64(msg.ID)))
	}

	return ok, nil
}

// Delete возвращает снимок до удаления или nil, если удалять было нечего.
func (s *MessageService) Delete(ctx context.Context, id domain.MessageID) *domain.Message {
	existing := s.messages.GetByID(ctx, id)
	if existing == nil {
		return nil
	}

	if !s.messages.Delete(ctx, id) {
		logger.FromContext(ctx).Error("message.delete failed", slog.Int64("message_id", int64(id)))
		return nil
	}

	return existing
}
