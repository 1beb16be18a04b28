package usecase

import (
	"context"

	"github.com/amirhossein-jamali/cheque-ledger/internal/domain/entity"
)

// AccessUseCase defines the shared-secret access gate
type AccessUseCase interface {
	// Login checks the shared secret and opens a session
	Login(ctx context.Context, password string) (*entity.Session, error)

	// Authorize resolves a session token presented by a request
	Authorize(ctx context.Context, token string) (*entity.Session, error)

	// Logout closes the session
	Logout(ctx context.Context, token string) error
}
