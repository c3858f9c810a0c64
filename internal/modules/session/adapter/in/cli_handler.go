package in

import (
	"context"

	sessiondto "gather/internal/modules/session/dto"
	sessionin "gather/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) SignUp(ctx context.Context, firstName, lastName, email, password string) (sessiondto.SessionOutput, error) {
	return h.usecase.SignUp(ctx, sessiondto.SignUpInput{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})
}

func (h CLIHandler) SignIn(ctx context.Context, email, password string) (sessiondto.SessionOutput, error) {
	return h.usecase.SignIn(ctx, sessiondto.SignInInput{Email: email, Password: password})
}

func (h CLIHandler) SignOut(ctx context.Context) error {
	return h.usecase.SignOut(ctx)
}

func (h CLIHandler) Current(ctx context.Context) (sessiondto.SessionOutput, error) {
	return h.usecase.Current(ctx)
}
