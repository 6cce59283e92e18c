package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const SessionHeader = "X-Session-ID"

type sessionContextKey struct{}

// Session attaches the anonymous cart session to the request. The id comes
// from the X-Session-ID header, then the cookie; a missing or malformed id
// is replaced by a fresh one which is echoed back in both places.
func Session(cookieName string, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			sessionID, ok := sessionFromRequest(r, cookieName)
			if !ok {
				sessionID = uuid.NewString()
				LoggerFromContext(r.Context()).Debug("Issued new cart session", slog.String("sessionId", sessionID))
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			w.Header().Set(SessionHeader, sessionID)

			ctx := context.WithValue(r.Context(), sessionContextKey{}, sessionID)
			ctx = WithLogger(ctx, LoggerFromContext(ctx).With(slog.String("sessionId", sessionID)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromRequest(r *http.Request, cookieName string) (string, bool) {

	if id, err := uuid.Parse(r.Header.Get(SessionHeader)); err == nil {
		return id.String(), true
	}

	if cookie, err := r.Cookie(cookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id.String(), true
		}
	}

	return "", false
}

func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sessionID)
}

func SessionFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionContextKey{}).(string)
	return sessionID, ok && sessionID != ""
}
