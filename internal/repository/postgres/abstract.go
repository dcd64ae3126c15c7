package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cwrk-planet/board-service/internal/repository"
	"github.com/cwrk-planet/board-service/pkg/logger"

	"github.com/jackc/pgx/v5"
	pgconn "github.com/jackc/pgx/v5/pgconn"
)

/*
абстрактный слой над *pgxpool.Pool / pgx.Tx,
чтобы репозитории работали и с пулом, и внутри транзакции
*/
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", repository.ErrAlreadyExists, pgErr.ConstraintName)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", repository.ErrForeignKey, pgErr.ConstraintName)
		case "23514": // check_violation
			return fmt.Errorf("%w: %s", repository.ErrCheck, pgErr.ConstraintName)
		}
	}

	return err
}

// logFailure пишет причину, которую репозиторий глотает. Отсутствие строки
// не считается сбоем.
func logFailure(ctx context.Context, op string, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		logger.FromContext(ctx).Debug(op+": no rows")
		return
	}
	logger.FromContext(ctx).Error(op+" failed", slog.Any("err", mapPgError(err)))
}
