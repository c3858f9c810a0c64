package in

import (
	"context"

	"gather/internal/modules/activity/dto"
)

type Usecase interface {
	List(ctx context.Context, filter string) ([]dto.ActivityOutput, error)
	ListCached(ctx context.Context, filter string) ([]dto.ActivityOutput, error)
	Create(ctx context.Context, input dto.DraftInput) (dto.ActivityOutput, error)
	Update(ctx context.Context, id string, input dto.DraftInput) (dto.ActivityOutput, error)
	Delete(ctx context.Context, id string) error
}
