package logger

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// InstanceIDEnv задает id инстанса снаружи (имя пода, id контейнера).
const InstanceIDEnv = "BOARD_INSTANCE_ID"

// ensureInstanceID: явное значение, затем BOARD_INSTANCE_ID, затем
// hostname с коротким uuid-суффиксом.
func ensureInstanceID(explicit string) string {
	if id := strings.TrimSpace(explicit); id != "" {
		return id
	}
	if id := strings.TrimSpace(os.Getenv(InstanceIDEnv)); id != "" {
		return id
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "board"
	}
	return host + "-" + uuid.NewString()[:8]
}

// commonAttr - поля, которые несет каждая запись board-service.
func commonAttr(cfg Config) []slog.Attr {
	attrs := []slog.Attr{
		slog.String("service", cfg.Service),
		slog.String("env", string(cfg.Env)),
		slog.String("instance_id", cfg.InstanceID),
		slog.String("log_backend", string(cfg.Backend)),
		slog.Int("pid", os.Getpid()),
	}
	if cfg.Version != "" {
		attrs = append(attrs, slog.String("version", cfg.Version))
	}

	return attrs
}
