package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vetacasa/VetACasa-BookingService/internal/api/handlers"
	"github.com/vetacasa/VetACasa-BookingService/internal/integrations/identsvc"
)

// HeaderSessionToken carries the opaque session token issued by the
// identity service.
const HeaderSessionToken = "X-Session-Token"

const (
	msgMissingToken   = "falta el token de sesion"
	msgInvalidSession = "sesion invalida o expirada"
)

type userContextKey struct{}

// SessionResolver resolves a session token into the calling user.
type SessionResolver interface {
	GetUserBySession(ctx context.Context, token string) (*identsvc.Usuario, error)
}

// Logger is the narrow logging interface the middleware depends on.
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Auth resolves the X-Session-Token header into a user and injects it
// into the request context. Requests without a valid session never reach
// the protected handlers.
func Auth(resolver SessionResolver, log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(HeaderSessionToken)
			if token == "" {
				log.Warn("Auth: missing %s header for %s %s", HeaderSessionToken, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			user, err := resolver.GetUserBySession(r.Context(), token)
			if err != nil {
				if errors.Is(err, identsvc.ErrSessionInvalid) {
					log.Warn("Auth: invalid session for %s %s", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidSession)
					return
				}
				log.Error("Auth: failed to resolve session for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondInternalError(w)
				return
			}

			ctx := WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user *identsvc.Usuario) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext extracts the authenticated user placed by Auth.
func UserFromContext(ctx context.Context) (*identsvc.Usuario, bool) {
	user, ok := ctx.Value(userContextKey{}).(*identsvc.Usuario)
	return user, ok
}
