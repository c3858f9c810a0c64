package out

import (
	"context"

	"gather/internal/modules/session/domain"
)

// TokenStore persists the single session token on disk. Load returns
// apperrors.ErrMissingToken when no session exists.
type TokenStore interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
	Clear(ctx context.Context) error
}

type AuthAPI interface {
	SignUp(ctx context.Context, registration domain.Registration) (domain.Session, error)
	SignIn(ctx context.Context, credentials domain.Credentials) (domain.Session, error)
}
