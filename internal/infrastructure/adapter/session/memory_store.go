package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/persistence"
)

// MemoryStore keeps sessions in process memory; a restart logs everyone out
type MemoryStore struct {
	cache *cache.Cache
}

// NewMemoryStore creates a session store whose expired entries are swept every cleanupInterval
func NewMemoryStore(defaultTTL, cleanupInterval time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: cache.New(defaultTTL, cleanupInterval),
	}
}

var _ persistence.SessionStore = (*MemoryStore)(nil)

// Save stores the session until it expires after ttl; ttl <= 0 uses the default
func (s *MemoryStore) Save(_ context.Context, session *entity.Session, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	s.cache.Set(session.Token, session, ttl)
	return nil
}

// Get returns the session for the token
func (s *MemoryStore) Get(_ context.Context, token string) (*entity.Session, bool) {
	value, found := s.cache.Get(token)
	if !found {
		return nil, false
	}
	session, ok := value.(*entity.Session)
	return session, ok
}

// Delete forgets the session
func (s *MemoryStore) Delete(_ context.Context, token string) {
	s.cache.Delete(token)
}

// Count returns the number of live sessions
func (s *MemoryStore) Count() int {
	return s.cache.ItemCount()
}
