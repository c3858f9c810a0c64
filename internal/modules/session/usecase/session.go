package usecase

import (
	"context"

	"gather/internal/modules/session/domain"
	"gather/internal/modules/session/dto"
	sessionin "gather/internal/modules/session/port/in"
	"gather/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) SignUp(ctx context.Context, input dto.SignUpInput) (dto.SessionOutput, error) {
	session, err := i.svc.SignUp(ctx, domain.Registration{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
	})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{Token: session.Token}, nil
}

func (i *Interactor) SignIn(ctx context.Context, input dto.SignInInput) (dto.SessionOutput, error) {
	session, err := i.svc.SignIn(ctx, domain.Credentials{Email: input.Email, Password: input.Password})
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{Token: session.Token}, nil
}

func (i *Interactor) SignOut(ctx context.Context) error {
	return i.svc.SignOut(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.SessionOutput, error) {
	session, err := i.svc.Current(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return dto.SessionOutput{Token: session.Token}, nil
}
