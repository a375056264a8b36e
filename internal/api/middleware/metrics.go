package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/ispsupport/hub/internal/observability"
)

// Metrics records request count and duration per method, route, and status
// class. Put it outermost (after RequestID) so the duration covers the whole
// request.
func Metrics(recorder observability.Recorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if recorder == nil {
				next.ServeHTTP(w, r)

				return
			}

			start := time.Now()
			rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r)

			recorder.ObserveRequest(r.Method, normalizeRoute(r.URL.Path),
				statusToClass(rw.statusCode), time.Since(start))
		})
	}
}

// normalizeRoute collapses the one parameterized path so metric cardinality
// stays bounded regardless of what clients put in the URL.
func normalizeRoute(path string) string {
	if rest, ok := strings.CutPrefix(path, "/actions/"); ok && rest != "" {
		return "/actions/{actionType}"
	}

	return path
}

// statusToClass maps an HTTP status code to 1xx..5xx.
func statusToClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	case status >= 100:
		return "1xx"
	default:
		return "unknown"
	}
}

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}
