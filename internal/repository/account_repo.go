package repository

import (
	"context"

	"github.com/cwrk-planet/board-service/internal/domain"
)

//go:generate mockgen -source=account_repo.go -destination=mocks/account_repo_mock.go -package=mocks

// AccountRepository не возвращает ошибок хранилища: отсутствие строки и
// сбой базы одинаково выглядят как nil/пустой срез, причина уходит в лог.
type AccountRepository interface {
	// Создает аккаунт, nil - ничего не вставлено
	Create(ctx context.Context, username, password string) *domain.Account
	GetByID(ctx context.Context, id domain.AccountID) *domain.Account
	GetByUsername(ctx context.Context, username string) *domain.Account
	// Никогда не nil
	List(ctx context.Context) []domain.Account
}
