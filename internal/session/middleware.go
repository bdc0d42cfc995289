package session

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IDContextKey struct{}

//go:generate mockgen -source=middleware.go -destination=mocks/token/mock.go -package=mocktoken
type TokenManager interface {
	GenerateToken(sid string) (string, error)
	ParseToken(tokenStr string) (string, error)
	GetTTL() time.Duration
}

type CookieConfig struct {
	Name   string
	Secure bool
}

// NewMiddleware puts the visitor's session id into the request context,
// starting a new session when the cookie is missing or does not verify.
func NewMiddleware(logger *zap.Logger, tokenManager TokenManager, cookie CookieConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := ""

			if c, err := r.Cookie(cookie.Name); err == nil && c.Value != "" {
				parsed, err := tokenManager.ParseToken(c.Value)
				if err != nil {
					logger.Warn("error when parsing session token", zap.Error(err))
				} else {
					sid = parsed
				}
			}

			if sid == "" {
				sid = uuid.NewString()

				token, err := tokenManager.GenerateToken(sid)
				if err != nil {
					logger.Error("error when generating session token", zap.Error(err))
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				http.SetCookie(w, &http.Cookie{
					Name:     cookie.Name,
					Value:    token,
					Path:     "/",
					MaxAge:   int(tokenManager.GetTTL().Seconds()),
					HttpOnly: true,
					Secure:   cookie.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), IDContextKey{}, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IDFromContext returns the session id set by the middleware.
func IDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(IDContextKey{}).(string)
	return sid
}
