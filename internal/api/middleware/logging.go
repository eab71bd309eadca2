package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tokoretail/retail-platform/internal/requestctx"
)

const RequestIDHeader = "X-Request-ID"

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Logging attaches a request-scoped logger carrying the correlation id to
// the context and logs each request on completion.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()

		correlationID := r.Header.Get(RequestIDHeader)
		if correlationID == "" {
			correlationID = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, correlationID)

		requestLogger := slog.Default().With(
			slog.String("correlation_id", correlationID),
			slog.String("http_method", r.Method),
			slog.String("http_path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr),
		)

		requestLogger.Debug("Incoming request", slog.String("user_agent", r.UserAgent()))

		ctx := requestctx.WithLogger(r.Context(), requestLogger)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r.WithContext(ctx))

		level := slog.LevelInfo
		if rw.statusCode >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		requestLogger.Log(ctx, level, "Request completed", slog.Int("http_status", rw.statusCode), slog.Duration("duration", time.Since(start)))
	})
}
