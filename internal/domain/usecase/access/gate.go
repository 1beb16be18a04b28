package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/cheque-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/port/usecase"
)

// ErrSecretNotConfigured is returned when neither a password nor a hash is set
var ErrSecretNotConfigured = errors.New("access secret not configured")

// ResolveSecret returns the bcrypt hash of the shared secret.
// A configured hash wins over a plaintext password.
func ResolveSecret(password, passwordHash string) ([]byte, error) {
	if passwordHash != "" {
		if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
			return nil, fmt.Errorf("invalid password hash: %w", err)
		}
		return []byte(passwordHash), nil
	}
	if password == "" {
		return nil, ErrSecretNotConfigured
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// Gate checks the shared secret and keeps the resulting sessions
type Gate struct {
	secretHash   []byte
	store        persistence.SessionStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	ttl          time.Duration
}

// NewGate creates a new access gate
func NewGate(
	secretHash []byte,
	store persistence.SessionStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	ttl time.Duration,
) *Gate {
	return &Gate{
		secretHash:   secretHash,
		store:        store,
		timeProvider: timeProvider,
		logger:       logger,
		ttl:          ttl,
	}
}

var _ usecase.AccessUseCase = (*Gate)(nil)

// Login compares the password against the secret and opens a session
func (g *Gate) Login(ctx context.Context, password string) (*entity.Session, error) {
	if err := bcrypt.CompareHashAndPassword(g.secretHash, []byte(password)); err != nil {
		g.logger.Warn("Login rejected", map[string]any{
			"error_code": errs.CodeInvalidCredentials,
		})
		return nil, errs.ErrInvalidCredentials
	}

	now := g.timeProvider.Now()
	session := &entity.Session{
		Token:     uuid.NewString(),
		CreatedAt: now,
	}
	if g.ttl > 0 {
		session.ExpiresAt = now.Add(g.ttl)
	}

	if err := g.store.Save(ctx, session, g.ttl); err != nil {
		g.logger.Error("Failed to store session", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrInternalServer, err)
	}

	g.logger.Info("Session opened", map[string]any{
		"expires_at": session.ExpiresAt,
	})
	return session, nil
}

// Authorize resolves the session for a token presented by a request
func (g *Gate) Authorize(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	session, ok := g.store.Get(ctx, token)
	if !ok {
		return nil, errs.ErrUnauthorized
	}

	if session.Expired(g.timeProvider.Now()) {
		g.store.Delete(ctx, token)
		return nil, errs.ErrUnauthorized
	}

	return session, nil
}

// Logout forgets the session; closing an unknown session is not an error
func (g *Gate) Logout(ctx context.Context, token string) error {
	if token == "" {
		return errs.ErrUnauthorized
	}
	g.store.Delete(ctx, token)
	g.logger.Info("Session closed", nil)
	return nil
}
