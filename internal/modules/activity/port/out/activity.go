package out

import (
	"context"

	"gather/internal/modules/activity/domain"
)

// TokenSource yields the persisted bearer token, or
// apperrors.ErrMissingToken when no session exists.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type ActivityAPI interface {
	List(ctx context.Context, token string, filter domain.Filter) ([]domain.Activity, error)
	Create(ctx context.Context, token string, draft domain.Draft) (domain.Activity, error)
	Update(ctx context.Context, token, id string, draft domain.Draft) (domain.Activity, error)
	Delete(ctx context.Context, token, id string) error
}

// SnapshotStore mirrors the last server response per filter so listings
// survive offline reads.
type SnapshotStore interface {
	ReplaceFilter(ctx context.Context, filter domain.Filter, activities []domain.Activity) error
	Upsert(ctx context.Context, filter domain.Filter, activity domain.Activity) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.Filter) ([]domain.Activity, error)
}
