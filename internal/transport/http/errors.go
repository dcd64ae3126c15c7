package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/cwrk-planet/board-service/pkg/errs"
	"github.com/cwrk-planet/board-service/pkg/httputil"
)

const msgInternal = "internal error"

// writeErr пишет ошибку со статусом из errs.ToHTTP. Для 5xx причина
// клиенту не уходит.
func writeErr(w http.ResponseWriter, err error) {
	status := errs.ToHTTP(err)
	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = msgInternal
	}
	httputil.ErrorWithCode(w, status, msg, errs.Code(err))
}

func violationErr(fe validator.FieldError) error {
	if fe.Tag() == "min" && fe.Field() == "password" {
		return fmt.Errorf("%w: %s", errs.ErrPasswordTooShort, violationMessage(fe))
	}
	return fmt.Errorf("%w: %s", errs.ErrInvalidInput, violationMessage(fe))
}

// pathID разбирает {id}; допустимы только положительные целые.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}
