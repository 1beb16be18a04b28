package access

import (
	"context"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
)

type sessionKey struct{}

// ContextWithSession attaches the session to a request context
func ContextWithSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session of the current request, if any
func SessionFromContext(ctx context.Context) (*entity.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*entity.Session)
	return session, ok && session != nil
}
