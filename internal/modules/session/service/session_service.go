package service

import (
	"context"
	"fmt"

	"gather/internal/modules/session/domain"
	sessionout "gather/internal/modules/session/port/out"
	apperrors "gather/internal/platform/errors"
)

type SessionService struct {
	store sessionout.TokenStore
	api   sessionout.AuthAPI
}

func NewSessionService(store sessionout.TokenStore, api sessionout.AuthAPI) *SessionService {
	return &SessionService{store: store, api: api}
}

func (s *SessionService) SignUp(ctx context.Context, registration domain.Registration) (domain.Session, error) {
	if fields := registration.Validate(); len(fields) > 0 {
		return domain.Session{}, &apperrors.ValidationError{Fields: fields}
	}
	session, err := s.api.SignUp(ctx, registration)
	if err != nil {
		return domain.Session{}, err
	}
	if !session.Valid() {
		return domain.Session{}, fmt.Errorf("signup response carried no token")
	}
	if err := s.store.Save(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *SessionService) SignIn(ctx context.Context, credentials domain.Credentials) (domain.Session, error) {
	if fields := credentials.Validate(); len(fields) > 0 {
		return domain.Session{}, &apperrors.ValidationError{Fields: fields}
	}
	session, err := s.api.SignIn(ctx, credentials)
	if err != nil {
		return domain.Session{}, err
	}
	if !session.Valid() {
		return domain.Session{}, fmt.Errorf("signin response carried no token")
	}
	if err := s.store.Save(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (s *SessionService) SignOut(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *SessionService) Current(ctx context.Context) (domain.Session, error) {
	return s.store.Load(ctx)
}
