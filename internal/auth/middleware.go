package auth

import (
	"context"
	"net/http"
)

type contextKey int

const sessionKey contextKey = 0

// AdminMiddleware refuses non-admin callers before any handler runs.
type AdminMiddleware struct {
	Secret []byte
}

func (m *AdminMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		session, err := VerifySession(r, m.Secret)
		if err != nil || !session.IsAdmin {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"Unauthorized"}`))
			return
		}

		ctx := context.WithValue(r.Context(), sessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionKey).(Session)
	return session, ok
}
