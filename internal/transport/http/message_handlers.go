package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cwrk-planet/board-service/internal/domain"
	"github.com/cwrk-planet/board-service/internal/metrics"
	"github.com/cwrk-planet/board-service/pkg/errs"
	"github.com/cwrk-planet/board-service/pkg/httputil"
	"github.com/cwrk-planet/board-service/pkg/logger"
)

type MessageHandlers struct {
	Messages MessageService
	Accounts AccountService
}

// POST /messages
func (h *MessageHandlers) Post(w http.ResponseWriter, r *http.Request) {
	var in PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx := r.Context()
	if h.Accounts.Get(ctx, domain.AccountID(in.PostedBy)) == nil {
		metrics.MessageOp("post", "invalid")
		writeErr(w, errs.ErrAccountNotFound)
		return
	}
	if fe := firstViolation(in); fe != nil {
		metrics.MessageOp("post", "invalid")
		writeErr(w, violationErr(fe))
		return
	}

	created := h.Messages.Post(ctx, domain.Message{
		PostedBy:        domain.AccountID(in.PostedBy),
		MessageText:     in.MessageText,
		TimePostedEpoch: in.TimePostedEpoch,
	})
	if created == nil {
		metrics.MessageOp("post", "error")
		writeErr(w, errs.ErrStorage)
		return
	}

	metrics.MessageOp("post", "ok")
	httputil.OK(w, created)
}

// GET /messages
func (h *MessageHandlers) List(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, h.Messages.ListAll(r.Context()))
}

// GET /messages/{id}; отсутствие сообщения - 200 с пустым телом.
func (h *MessageHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	m, err := h.Messages.Get(r.Context(), domain.MessageID(id))
	if err != nil {
		httputil.Empty(w)
		return
	}

	httputil.OK(w, m)
}

// GET /accounts/{id}/messages
func (h *MessageHandlers) ListByAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	list := h.Messages.ListByAuthor(r.Context(), domain.AccountID(id))
	if len(list) == 0 {
		httputil.Error(w, http.StatusNotFound, "no messages found for account")
		return
	}

	httputil.OK(w, list)
}

// PATCH /messages/{id}
func (h *MessageHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var in UpdateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx := r.Context()
	if _, err := h.Messages.Get(ctx, domain.MessageID(id)); err != nil {
		metrics.MessageOp("update", "invalid")
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if fe := firstViolation(in); fe != nil {
		metrics.MessageOp("update", "invalid")
		writeErr(w, violationErr(fe))
		return
	}

	updated, err := h.Messages.Update(ctx, domain.Message{
		ID:              domain.MessageID(id),
		MessageText:     in.MessageText,
		TimePostedEpoch: in.TimePostedEpoch,
	})
	switch {
	case errors.Is(err, errs.ErrMessageNotFound):
		// удалили между проверкой и записью
		metrics.MessageOp("update", "invalid")
		httputil.Error(w, http.StatusBadRequest, err.Error())
		return
	case err != nil || !updated:
		metrics.MessageOp("update", "error")
		writeErr(w, errs.ErrStorage)
		return
	}

	m, err := h.Messages.Get(ctx, domain.MessageID(id))
	if err != nil {
		metrics.MessageOp("update", "error")
		logger.FromContext(ctx).Error("http.update.reread failed", slog.Int64("message_id", id), slog.Any("err", err))
		writeErr(w, errs.ErrStorage)
		return
	}

	metrics.MessageOp("update", "ok")
	httputil.OK(w, m)
}

// DELETE /messages/{id}; удаление отсутствующего - 200 с пустым телом.
func (h *MessageHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httputil.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx := r.Context()
	if _, err := h.Messages.Get(ctx, domain.MessageID(id)); err != nil {
		metrics.MessageOp("delete", "absent")
		httputil.Empty(w)
		return
	}

	deleted := h.Messages.Delete(ctx, domain.MessageID(id))
	if deleted == nil {
		metrics.MessageOp("delete", "error")
		writeErr(w, errs.ErrStorage)
		return
	}

	metrics.MessageOp("delete", "ok")
	httputil.OK(w, deleted)
}
