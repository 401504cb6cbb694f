package middleware

import (
	"net/http"
	"time"

	"space-age/internal/shared/metrics"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Metrics records the duration and status of every request handled by next.
func Metrics(collector *metrics.Collector, handler string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		collector.RecordRequest(handler, rec.status, time.Since(start))
	})
}
