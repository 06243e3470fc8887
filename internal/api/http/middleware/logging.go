package middleware

import (
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/chessacademy-server/internal/logger"
)

// Logging logs every HTTP request with its status and duration.
type Logging struct {
	logger *logger.Logger
}

func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

func (l *Logging) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		l.logger.Debug("HTTP request started",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chiMiddleware.GetReqID(r.Context()))

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		l.logger.Info("HTTP request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", r.RemoteAddr)

		if status >= http.StatusInternalServerError {
			l.logger.Error("HTTP request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status)
		}
	})
}
