package in

import (
	"context"

	"gather/internal/modules/profile/dto"
)

type Usecase interface {
	Show(ctx context.Context) (dto.UserOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.UserOutput, error)
}
