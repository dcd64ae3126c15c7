package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse - тело любой ошибки API.
type ErrorResponse struct {
	Error     string `json:"error"`
	ErrorCode int    `json:"errorCode,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", slog.Any("err", err))
	}
}

// OK отдает 200 и сущность как есть, без обертки.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Empty - 200 с пустым телом.
func Empty(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorResponse{Error: msg})
}

func ErrorWithCode(w http.ResponseWriter, status int, msg string, code int) {
	JSON(w, status, ErrorResponse{Error: msg, ErrorCode: code})
}
