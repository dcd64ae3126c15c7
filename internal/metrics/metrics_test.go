package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestInstrument_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Instrument)
	r.Get("/messages/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/messages/{id}", "200"))
	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/messages/"+id, nil))
	}
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/messages/{id}", "200"))

	require.Equal(t, 3.0, after-before)
}

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(accountOps.WithLabelValues("login", "unauthorized"))
	AccountOp("login", "unauthorized")
	require.Equal(t, 1.0, testutil.ToFloat64(accountOps.WithLabelValues("login", "unauthorized"))-before)

	before = testutil.ToFloat64(messageOps.WithLabelValues("delete", "ok"))
	MessageOp("delete", "ok")
	require.Equal(t, 1.0, testutil.ToFloat64(messageOps.WithLabelValues("delete", "ok"))-before)
}

func TestHandler_Exposition(t *testing.T) {
	AccountOp("register", "ok")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), "board_accounts_operations_total"))
}
