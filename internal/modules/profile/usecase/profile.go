package usecase

import (
	"context"

	"gather/internal/modules/profile/domain"
	"gather/internal/modules/profile/dto"
	profilein "gather/internal/modules/profile/port/in"
	"gather/internal/modules/profile/service"
)

type Interactor struct {
	svc *service.ProfileService
}

func NewInteractor(svc *service.ProfileService) profilein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Show(ctx context.Context) (dto.UserOutput, error) {
	user, err := i.svc.Show(ctx)
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func (i *Interactor) Update(ctx context.Context, input dto.UpdateInput) (dto.UserOutput, error) {
	user, err := i.svc.Update(ctx, domain.Draft{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Bio:         input.Bio,
		ImagePath:   input.ImagePath,
		OldPassword: input.OldPassword,
		NewPassword: input.NewPassword,
	})
	if err != nil {
		return dto.UserOutput{}, err
	}
	return toOutput(user), nil
}

func toOutput(u domain.User) dto.UserOutput {
	return dto.UserOutput{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Bio:       u.Bio,
		ImageURL:  u.ImageURL,
	}
}
