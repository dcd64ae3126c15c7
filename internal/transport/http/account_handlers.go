package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cwrk-planet/board-service/internal/metrics"
	"github.com/cwrk-planet/board-service/pkg/errs"
	"github.com/cwrk-planet/board-service/pkg/httputil"
	"github.com/cwrk-planet/board-service/pkg/logger"
)

type AccountHandlers struct {
	Accounts AccountService
}

// POST /register
func (h *AccountHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var in RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if fe := firstViolation(in); fe != nil {
		metrics.AccountOp("register", "invalid")
		writeErr(w, violationErr(fe))
		return
	}

	acc, err := h.Accounts.Register(r.Context(), in.Username, in.Password)
	if err != nil {
		if errors.Is(err, errs.ErrUsernameTaken) {
			metrics.AccountOp("register", "taken")
		} else {
			metrics.AccountOp("register", "error")
			logger.FromContext(r.Context()).Error("http.register.register failed", slog.Any("err", err))
		}
		writeErr(w, err)
		return
	}

	metrics.AccountOp("register", "ok")
	httputil.OK(w, acc)
}

// POST /login
func (h *AccountHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var in CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}
	if fe := firstViolation(in); fe != nil {
		metrics.AccountOp("login", "invalid")
		writeErr(w, violationErr(fe))
		return
	}

	acc := h.Accounts.Authenticate(r.Context(), in.Username, in.Password)
	if acc == nil {
		metrics.AccountOp("login", "unauthorized")
		writeErr(w, errs.ErrInvalidCredentials)
		return
	}

	metrics.AccountOp("login", "ok")
	httputil.OK(w, acc)
}
