package postgres

import (
	"context"

	"github.com/cwrk-planet/board-service/internal/domain"
	"github.com/cwrk-planet/board-service/internal/repository/queries"

	"github.com/jackc/pgx/v5"
)

type MessageRepo struct {
	q querier
}

func NewMessageRepoFromPool(q querier) *MessageRepo {
	return &MessageRepo{q: q}
}

func (r *MessageRepo) Create(ctx context.Context, postedBy domain.AccountID, text string, timePostedEpoch int64) *domain.Message {
	var id int64
	err := r.q.QueryRow(
		ctx,
		queries.QueryCreateMessage,
		int64(postedBy),
		text,
		timePostedEpoch,
	).Scan(&id)
	if err != nil {
		logFailure(ctx, "repo.message.create", err)
		return nil
	}

	return &domain.Message{
		ID:              domain.MessageID(id),
		PostedBy:        postedBy,
		MessageText:     text,
		TimePostedEpoch: timePostedEpoch,
	}
}

func (r *MessageRepo) GetByID(ctx context.Context, id domain.MessageID) *domain.Message {
	m, err := scanMessage(r.q.QueryRow(ctx, queries.QueryGetMessageByID, int64(id)))
	if err != nil {
		logFailure(ctx, "repo.message.getByID", err)
		return nil
	}

	return m
}

func (r *MessageRepo) ListByAuthor(ctx context.Context, postedBy domain.AccountID) []domain.Message {
	return r.list(ctx, "repo.message.listByAuthor", queries.QueryListMessagesByAuthor, int64(postedBy))
}

func (r *MessageRepo) List(ctx context.Context) []domain.Message {
	return r.list(ctx, "repo.message.list", queries.QueryListMessages)
}

func (r *MessageRepo) UpdateText(ctx context.Context, id domain.MessageID, text string, timePostedEpoch int64) bool {
	tag, err := r.q.Exec(ctx, queries.QueryUpdateMessageText, int64(id), text, timePostedEpoch)
	if err != nil {
		logFailure(ctx, "repo.message.updateText", err)
		return false
	}

	return tag.RowsAffected() == 1
}

func (r *MessageRepo) Delete(ctx context.Context, id domain.MessageID) bool {
	tag, err := r.q.Exec(ctx, queries.QueryDeleteMessageByID, int64(id))
	if err != nil {
		logFailure(ctx, "repo.message.delete", err)
		return false
	}

	return tag.RowsAffected() == 1
}

// list всегда возвращает не-nil срез; при ошибке посреди чтения - пустой.
func (r *MessageRepo) list(ctx context.Context, op, sql string, args ...any) []domain.Message {
	out := make([]domain.Message, 0)

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		logFailure(ctx, op, err)
		return out
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			logFailure(ctx, op+".scan", err)
			return make([]domain.Message, 0)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		logFailure(ctx, op+".rows", err)
		return make([]domain.Message, 0)
	}

	return out
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var (
		id              int64
		postedBy        int64
		text            string
		timePostedEpoch int64
	)
	if err := row.Scan(&id, &postedBy, &text, &timePostedEpoch); err != nil {
		return nil, err
	}

	return &domain.Message{
		ID:              domain.MessageID(id),
		PostedBy:        domain.AccountID(postedBy),
		MessageText:     text,
		TimePostedEpoch: timePostedEpoch,
	}, nil
}
