package httputil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cwrk-planet/board-service/pkg/logger"
)

const maxLoggedBody = 2048

var redactedKeys = map[string]struct{}{
	"password":      {},
	"authorization": {},
	"token":         {},
}

// MiddlewareLogging логирует метод, путь, статус, длительность и тела
// запроса/ответа с затертыми паролями.
func MiddlewareLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var reqBody string
		if strings.Contains(strings.ToLower(r.Header.Get("Content-Type")), "json") && r.Body != nil {
			var buf bytes.Buffer
			b, _ := io.ReadAll(io.TeeReader(r.Body, &buf))
			r.Body = io.NopCloser(&buf)
			reqBody = Redact(b)
		}

		lrw := &logResponseWriter{ResponseWriter: w}
		next.ServeHTTP(lrw, r)

		status := lrw.status
		if status == 0 {
			status = http.StatusOK
		}
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.Int("status", status),
			slog.Int("bytes", lrw.bytes),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_ip", r.RemoteAddr),
			slog.String("req_body", clip(reqBody, maxLoggedBody)),
			slog.String("resp_body", clip(Redact(lrw.body.Bytes()), maxLoggedBody)),
		}
		attrs = append(attrs, logger.AttrsFromCtx(r.Context())...)

		logger.FromContext(r.Context()).LogAttrs(r.Context(), level, "http request", attrs...)
	})
}

type logResponseWriter struct {
	http.ResponseWriter
	status int
	bytes  int
	body   bytes.Buffer
}

func (w *logResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *logResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.body.Write(b)
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n

	return n, err
}

// Redact парсит JSON и рекурсивно затирает чувствительные поля.
// Не-JSON возвращается как есть.
func Redact(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	var data any
	if err := json.Unmarshal(b, &data); err != nil {
		return string(b)
	}
	redactWalk(&data)
	out, err := json.Marshal(data)
	if err != nil {
		return string(b)
	}
	return string(out)
}

func redactWalk(v *any) {
	switch t := (*v).(type) {
	case map[string]any:
		for k, val := range t {
			if _, hit := redactedKeys[strings.ToLower(k)]; hit {
				t[k] = "***REDACTED***"
				continue
			}
			redactWalk(&val)
			t[k] = val
		}
	case []any:
		for i := range t {
			redactWalk(&t[i])
		}
	}
}

func clip(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n] + "...(truncated)"
}
