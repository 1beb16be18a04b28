package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
)

// SessionStore keeps access-gate sessions for the lifetime of the process
type SessionStore interface {
	// Save stores the session until it expires after ttl
	Save(ctx context.Context, session *entity.Session, ttl time.Duration) error

	// Get returns the session for the token, or false when unknown or expired
	Get(ctx context.Context, token string) (*entity.Session, bool)

	// Delete forgets the session; unknown tokens are ignored
	Delete(ctx context.Context, token string)
}
