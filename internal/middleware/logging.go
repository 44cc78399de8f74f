package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sun1tar/tasktracker/internal/logger"
)

// LoggingMiddleware логирует каждый HTTP запрос в структурированном формате
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		requestID := GetRequestID(r.Context())
		logEntry := logger.WithRequestID(logger.Logger, requestID)

		logEntry.Debugf("request started: %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)
		logEntry.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      wrapped.statusCode,
			"duration_ms": duration.Milliseconds(),
			"remote_ip":   r.RemoteAddr,
			"user_agent":  r.UserAgent(),
		}).Info("request completed")
	})
}
