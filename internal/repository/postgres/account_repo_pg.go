package postgres

import (
	"context"

	"github.com/cwrk-planet/board-service/internal/domain"
	"github.com/cwrk-planet/board-service/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type AccountRepo struct {
	q querier
}

// NewAccountRepoFromPool - конструктор от пула (*pgxpool.Pool) или транзакции (pgx.Tx)
func NewAccountRepoFromPool(q querier) *AccountRepo {
	return &AccountRepo{q: q}
}

func (r *AccountRepo) Create(ctx context.Context, username, password string) *domain.Account {
	var id int64
	if err := r.q.QueryRow(ctx, queries.QueryCreateAccount, username, password).Scan(&id); err != nil {
		logFailure(ctx, "repo.account.create", err)
		return nil
	}

	return &domain.Account{
		ID:       domain.AccountID(id),
		Username: username,
		Password: password,
	}
}

func (r *AccountRepo) GetByID(ctx context.Context, id domain.AccountID) *domain.Account {
	return r.getOne(ctx, "repo.account.getByID", queries.QueryGetAccountByID, int64(id))
}

func (r *AccountRepo) GetByUsername(ctx context.Context, username string) *domain.Account {
	return r.getOne(ctx, "repo.account.getByUsername", queries.QueryGetAccountByUsername, username)
}

func (r *AccountRepo) List(ctx context.Context) []domain.Account {
	out := make([]domain.Account, 0)

	rows, err := r.q.Query(ctx, queries.QueryListAccounts)
	if err != nil {
		logFailure(ctx, "repo.account.list", err)
		return out
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			logFailure(ctx, "repo.account.list.scan", err)
			return make([]domain.Account, 0)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		logFailure(ctx, "repo.account.list.rows", err)
		return make([]domain.Account, 0)
	}

	return out
}

func (r *AccountRepo) getOne(ctx context.Context, op, sql string, args ...any) *domain.Account {
	a, err := scanAccount(r.q.QueryRow(ctx, sql, args...))
	if err != nil {
		logFailure(ctx, op, err)
		return nil
	}

	return a
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		id       int64
		username string
		password string
	)
	if err := row.Scan(&id, &username, &password); err != nil {
		return nil, err
	}

	return &domain.Account{
		ID:       domain.AccountID(id),
		Username: username,
		Password: password,
	}, nil
}
