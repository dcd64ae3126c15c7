package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/otel/trace"

	"github.com/cwrk-planet/board-service/internal/metrics"
	"github.com/cwrk-planet/board-service/internal/pg"
	"github.com/cwrk-planet/board-service/pkg/httputil"
	"github.com/cwrk-planet/board-service/pkg/logger"
)

type Deps struct {
	Accounts AccountService
	Messages MessageService
	DB       pg.Pinger
	Tracer   trace.TracerProvider // nil - глобальный

	AllowedOrigins []string
	RequestTimeout time.Duration // 0 - 60s
}

func NewRouter(d Deps) http.Handler {
	timeout := d.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httputil.MiddlewareTracing(d.Tracer))
	r.Use(httputil.MiddlewareRequestID)
	r.Use(httputil.MiddlewareLogging)
	r.Use(metrics.Instrument)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", metrics.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if d.DB != nil {
			if err := pg.Ping(r.Context(), d.DB); err != nil {
				logger.FromContext(r.Context()).Warn("http.healthz.ping failed", slog.Any("err", err))
				httputil.Error(w, http.StatusServiceUnavailable, "database unavailable")
				return
			}
		}
		httputil.OK(w, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(timeout))

		ah := &AccountHandlers{Accounts: d.Accounts}
		r.Post("/register", ah.Register)
		r.Post("/login", ah.Login)

		mh := &MessageHandlers{Messages: d.Messages, Accounts: d.Accounts}
		r.Route("/messages", func(rt chi.Router) {
			rt.Post("/", mh.Post)
			rt.Get("/", mh.List)

			rt.Get("/{id}", mh.Get)
			rt.Patch("/{id}", mh.Update)
			rt.Delete("/{id}", mh.Delete)
		})
		r.Get("/accounts/{id}/messages", mh.ListByAuthor)
	})

	return r
}
