package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /widgets/{widgetId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(mux)

	// Разные значения параметра попадают в одну серию шаблона маршрута.
	for _, path := range []string{"/widgets/1", "/widgets/2", "/widgets/3"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	got := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, "GET /widgets/{widgetId}", "200"))
	if got != 3 {
		t.Errorf("requests under route pattern = %v, want 3", got)
	}
	for _, raw := range []string{"/widgets/1", "/widgets/2", "/widgets/3"} {
		if n := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodGet, raw, "200")); n != 0 {
			t.Errorf("raw path %s has its own series with %v requests", raw, n)
		}
	}
}
