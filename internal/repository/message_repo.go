package repository

import (
	"context"

	"github.com/cwrk-planet/board-service/internal/domain"
)

//go:generate mockgen -source=message_repo.go -destination=mocks/message_repo_mock.go -package=mocks

// MessageRepository следует тем же правилам, что и AccountRepository:
// nil, пустой срез или false вместо ошибки.
type MessageRepository interface {
	Create(ctx context.Context, postedBy domain.AccountID, text string, timePostedEpoch int64) *domain.Message
	GetByID(ctx context.Context, id domain.MessageID) *domain.Message
	ListByAuthor(ctx context.Context, postedBy domain.AccountID) []domain.Message
	List(ctx context.Context) []domain.Message
	// true только если затронута ровно одна строка
	UpdateText(ctx context.Context, id domain.MessageID, text string, timePostedEpoch int64) bool
	Delete(ctx context.Context, id domain.MessageID) bool
}
