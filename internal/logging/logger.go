package logging

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/xw1nchester/pinfinds-backend/internal/config"
	"go.uber.org/zap"
)

func New(env string) *zap.Logger {
	var (
		log *zap.Logger
		err error
	)

	switch env {
	case config.EnvLocal, config.EnvTest:
		log, err = zap.NewDevelopment()
	default:
		log, err = zap.NewProduction()
	}

	if err != nil {
		return zap.NewNop()
	}

	return log
}

func Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("remote", r.RemoteAddr),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
