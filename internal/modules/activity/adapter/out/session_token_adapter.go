package out

import (
	"context"

	activityout "gather/internal/modules/activity/port/out"
	sessionin "gather/internal/modules/session/port/in"
)

// SessionTokenAdapter lets the activity module read the bearer token
// without importing the session module's internals.
type SessionTokenAdapter struct {
	sessions sessionin.Usecase
}

func NewSessionTokenAdapter(sessions sessionin.Usecase) activityout.TokenSource {
	return &SessionTokenAdapter{sessions: sessions}
}

func (a *SessionTokenAdapter) Token(ctx context.Context) (string, error) {
	current, err := a.sessions.Current(ctx)
	if err != nil {
		return "", err
	}
	return current.Token, nil
}
