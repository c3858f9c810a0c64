package in

import (
	"context"

	"gather/internal/modules/profile/dto"
	profilein "gather/internal/modules/profile/port/in"
)

type CLIHandler struct {
	usecase profilein.Usecase
}

func NewCLIHandler(usecase profilein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (dto.UserOutput, error) {
	return h.usecase.Show(ctx)
}

func (h CLIHandler) Update(ctx context.Context, firstName, lastName, bio, imagePath, oldPassword, newPassword string) (dto.UserOutput, error) {
	return h.usecase.Update(ctx, dto.UpdateInput{
		FirstName:   firstName,
		LastName:    lastName,
		Bio:         bio,
		ImagePath:   imagePath,
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
}
