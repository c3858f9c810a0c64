package out

import (
	"context"

	"gather/internal/modules/profile/domain"
)

// TokenSource yields the persisted bearer token, or
// apperrors.ErrMissingToken when no session exists.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type ProfileAPI interface {
	Fetch(ctx context.Context, token string) (domain.User, error)
	Update(ctx context.Context, token string, draft domain.Draft) (domain.User, error)
	ValidateOldPassword(ctx context.Context, token, oldPassword string) error
}
