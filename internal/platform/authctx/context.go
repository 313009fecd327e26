package authctx

import (
	"context"

	"riskdesk/pkg/domain"
)

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored by RequireAuth or DevSession.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// UserID returns the signed-in user, or the nil ID outside an authenticated request.
func UserID(ctx context.Context) domain.UserID {
	if s, ok := SessionFrom(ctx); ok {
		return s.UserID
	}
	return domain.UserID{}
}
