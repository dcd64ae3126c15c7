package http

//go:generate mockgen -source=services.go -destination=mocks/services_mock.go -package=mocks

import (
	"context"

	"github.com/cwrk-planet/board-service/internal/domain"
)

type AccountService interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Authenticate(ctx context.Context, username, password string) *domain.Account
	Get(ctx context.Context, id domain.AccountID) *domain.Account
}

type MessageService interface {
	Post(ctx context.Context, msg domain.Message) *domain.Message
	Get(ctx context.Context, id domain.MessageID) (*domain.Message, error)
	ListByAuthor(ctx context.Context, accountID domain.AccountID) []domain.Message
	ListAll(ctx context.Context) []domain.Message
	Update(ctx context.Context, msg domain.Message) (bool, error)
	Delete(ctx context.Context, id domain.MessageID) *domain.Message
}
