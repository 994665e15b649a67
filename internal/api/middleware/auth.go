package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/systemdesignlab/content-api/internal/domain"
	"github.com/systemdesignlab/content-api/internal/session"
)

type contextKey string

const adminKey contextKey = "admin"

// RequireAdmin gates admin mutation routes on a valid session cookie. It
// runs before any body parsing, and a missing cookie, malformed cookie,
// expired token and wrong-secret token all produce the same response so the
// gate never reveals which check failed.
func RequireAdmin(codec *session.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := session.TokenFromRequest(r)
			if token == "" {
				unauthorized(w)
				return
			}

			identity, err := codec.Verify(token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}

// AdminFromContext returns the identity placed by RequireAdmin.
func AdminFromContext(ctx context.Context) (domain.AdminIdentity, bool) {
	identity, ok := ctx.Value(adminKey).(domain.AdminIdentity)
	return identity, ok
}
