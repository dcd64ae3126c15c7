package logger

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// AttrsFromCtx достает ids span-а, открытого httputil.MiddlewareTracing.
// Без валидного span-а - nil, чтобы не писать пустые поля.
func AttrsFromCtx(ctx context.Context) []slog.Attr {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	attrs := make([]slog.Attr, 0, 3)
	attrs = append(attrs,
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	)
	if !sc.IsSampled() {
		attrs = append(attrs, slog.Bool("trace_sampled", false))
	}

	return attrs
}
