package middleware

import (
	"net/http"
	"time"

	"github.com/angelmondragon/shop-api/pkg/metrics"
)

// Metrics records per-route request counts and latency.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := m.Track()
			defer done()

			rec := &statusRecorder{ResponseWriter: w}
			start := time.Now()
			next.ServeHTTP(rec, r)
			m.Observe(routePattern(r), r.Method, rec.statusCode(), time.Since(start))
		})
	}
}
