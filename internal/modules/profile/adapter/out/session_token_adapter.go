package out

import (
	"context"

	profileout "gather/internal/modules/profile/port/out"
	sessionin "gather/internal/modules/session/port/in"
)

// SessionTokenAdapter lets the profile module read the bearer token
// without importing the session module's internals.
type SessionTokenAdapter struct {
	sessions sessionin.Usecase
}

func NewSessionTokenAdapter(sessions sessionin.Usecase) profileout.TokenSource {
	return &SessionTokenAdapter{sessions: sessions}
}

func (a *SessionTokenAdapter) Token(ctx context.Context) (string, error) {
	current, err := a.sessions.Current(ctx)
	if err != nil {
		return "", err
	}
	return current.Token, nil
}
