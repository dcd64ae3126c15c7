package service

import (
	"context"
	"log/slog"

	"github.com/cwrk-planet/board-service/internal/domain"
	"github.com/cwrk-planet/board-service/internal/repository"
	"github.com/cwrk-planet/board-service/pkg/errs"
	"github.com/cwrk-planet/board-service/pkg/logger"

	"github.com/samber/lo"
)

type AccountService struct {
	accounts repository.AccountRepository
}

func NewAccountService(accounts repository.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// Register не проверяет формат полей, это делает транспорт.
func (s *AccountService) Register(ctx context.Context, username, password string) (*domain.Account, error) {
	log := logger.FromContext(ctx)

	if s.UsernameExists(ctx, username) {
		log.Warn("account.register.usernameExists", slog.String("username", username))
		return nil, errs.ErrUsernameTaken
	}

	a := s.accounts.Create(ctx, username, password)
	if a == nil {
		log.Error("account.register.create failed", slog.String("username", username))
		return nil, errs.ErrStorage
	}

	return a, nil
}

// UsernameExists проходит по всем аккаунтам. UNIQUE в схеме страхует гонку
// между проверкой и вставкой.
func (s *AccountService) UsernameExists(ctx context.Context, username string) bool {
	return lo.ContainsBy(s.accounts.List(ctx), func(a domain.Account) bool {
		return a.Username == username
	})
}

// Authenticate возвращает аккаунт только при точном совпадении пароля.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) *domain.Account {
	a := s.accounts.GetByUsername(ctx, username)
	if a == nil || a.Password != password {
		return nil
	}

	return a
}

func (s *AccountService) Get(ctx context.Context, id domain.AccountID) *domain.Account {
	return s.accounts.GetByID(ctx, id)
}
