package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"jobportal/logger"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.size += n
	return n, err
}

// withRequestLogging tags each request with an ID, exposes a request-scoped
// logger through the context, and writes one access line per request.
func withRequestLogging(base *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		log := base.With(slog.String("request_id", requestID))
		rec := &statusRecorder{ResponseWriter: w}
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(logger.WithLogger(r.Context(), log)))

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		fields := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Int("size_bytes", rec.size),
			slog.Duration("duration", time.Since(start)),
		}
		switch {
		case rec.status >= 500:
			log.Error("http request", fields...)
		case rec.status >= 400:
			log.Warn("http request", fields...)
		default:
			log.Info("http request", fields...)
		}
	})
}
