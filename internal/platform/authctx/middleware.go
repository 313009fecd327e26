package authctx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"riskdesk/pkg/domain"
	"riskdesk/pkg/platform/httputil"
	"riskdesk/pkg/requestcontext"
)

// Authenticator is satisfied by *Provider.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*Session, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// session in the request context otherwise.
func RequireAuth(auth Authenticator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteJSON(w, http.StatusUnauthorized, httputil.ErrorResponse{
					Error:            "unauthorized",
					ErrorDescription: "Missing or invalid Authorization header",
				})
				return
			}

			session, err := auth.Authenticate(ctx, strings.TrimSpace(token))
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - token rejected",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
		})
	}
}

// DevUserID is the user behind DevSession in a development server.
var DevUserID = domain.UserID(uuid.MustParse("00000000-0000-4000-8000-000000000001"))

// DevSession attaches a fixed session to every request. The server uses it
// in development when no auth secret is configured.
func DevSession(userID domain.UserID) func(http.Handler) http.Handler {
	session := &Session{
		UserID:    userID,
		Email:     "dev@riskdesk.local",
		Role:      "admin",
		ExpiresAt: time.Now().Add(24 * 365 * time.Hour),
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
		})
	}
}
