package middleware

import (
	"context"
	"net/http"
	"strings"

	h "eventcheckin/internal/delivery/http/helpers"
	"eventcheckin/internal/domain"
)

type contextKey string

const userCPFKey contextKey = "userCPF"

// SetUserCPF returns a context with the authenticated user's CPF set.
func SetUserCPF(ctx context.Context, cpf string) context.Context {
	return context.WithValue(ctx, userCPFKey, cpf)
}

// UserCPFFromContext returns the authenticated user's CPF, if present.
func UserCPFFromContext(ctx context.Context) (string, bool) {
	cpf, ok := ctx.Value(userCPFKey).(string)
	return cpf, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the
// user CPF in the request context. If the token is missing or invalid, it
// responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			cpf, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetUserCPF(r.Context(), cpf))
			next(w, r)
		}
	}
}
