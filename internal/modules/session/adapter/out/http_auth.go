package out

import (
	"context"
	"fmt"

	"gather/internal/modules/session/domain"
	sessionout "gather/internal/modules/session/port/out"
	"gather/internal/platform/rest"
)

// HTTPAuthAPI speaks the backend's signup/signin endpoints. Neither call
// carries a token since both exist to obtain one.
type HTTPAuthAPI struct {
	client *rest.Client
}

func NewHTTPAuthAPI(client *rest.Client) sessionout.AuthAPI {
	return &HTTPAuthAPI{client: client}
}

type signUpPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type signInPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (a *HTTPAuthAPI) SignUp(ctx context.Context, registration domain.Registration) (domain.Session, error) {
	payload := signUpPayload{
		FirstName: registration.FirstName,
		LastName:  registration.LastName,
		Email:     registration.Email,
		Password:  registration.Password,
	}
	resp := tokenResponse{}
	if err := a.client.PostJSON(ctx, "/signup", "", payload, &resp); err != nil {
		return domain.Session{}, fmt.Errorf("sign up: %w", err)
	}
	return domain.Session{Token: resp.Token}, nil
}

func (a *HTTPAuthAPI) SignIn(ctx context.Context, credentials domain.Credentials) (domain.Session, error) {
	payload := signInPayload{Email: credentials.Email, Password: credentials.Password}
	resp := tokenResponse{}
	if err := a.client.PostJSON(ctx, "/signin", "", payload, &resp); err != nil {
		return domain.Session{}, fmt.Errorf("sign in: %w", err)
	}
	return domain.Session{Token: resp.Token}, nil
}
