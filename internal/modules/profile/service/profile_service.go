package service

import (
	"context"
	"errors"

	"gather/internal/modules/profile/domain"
	profileout "gather/internal/modules/profile/port/out"
	apperrors "gather/internal/platform/errors"
)

type ProfileService struct {
	tokens profileout.TokenSource
	api    profileout.ProfileAPI
}

func NewProfileService(tokens profileout.TokenSource, api profileout.ProfileAPI) *ProfileService {
	return &ProfileService{tokens: tokens, api: api}
}

func (s *ProfileService) Show(ctx context.Context) (domain.User, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return domain.User{}, err
	}
	return s.api.Fetch(ctx, token)
}

// Update validates the draft, pre-checks the old password in its own
// round-trip when a password change is requested, then submits. A
// failed pre-check aborts before the update endpoint is contacted.
func (s *ProfileService) Update(ctx context.Context, draft domain.Draft) (domain.User, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return domain.User{}, err
	}
	if fields := draft.Validate(); len(fields) > 0 {
		return domain.User{}, &apperrors.ValidationError{Fields: fields}
	}
	if draft.ChangesPassword() {
		if err := s.api.ValidateOldPassword(ctx, token, draft.OldPassword); err != nil {
			return domain.User{}, asOldPasswordError(err)
		}
	}
	return s.api.Update(ctx, token, draft)
}

// asOldPasswordError maps a pre-check rejection onto the old_password
// field slot so it displays where the value was typed.
func asOldPasswordError(err error) error {
	reqErr := &apperrors.RequestError{}
	if errors.As(err, &reqErr) && reqErr.Status >= 400 && reqErr.Status < 500 {
		message := reqErr.Message
		if message == "" {
			message = "Old password does not match"
		}
		return &apperrors.ValidationError{Fields: map[string]string{"old_password": message}}
	}
	return err
}
