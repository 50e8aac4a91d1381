package middleware

import (
	"net/http"
	"time"

	"hrms/internal/platform/requestctx"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// StatusObserver is told the outcome of every request, e.g. a metrics collector.
type StatusObserver interface {
	Record(status int, duration time.Duration)
}

// Logger writes one access log line per request and reports it to observers.
func Logger(observers ...StatusObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			elapsed := time.Since(start)
			for _, o := range observers {
				if o != nil {
					o.Record(recorder.status, elapsed)
				}
			}
			requestctx.Logger(r.Context()).Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"durationMs", elapsed.Milliseconds(),
			)
		})
	}
}
