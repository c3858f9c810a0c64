package usecase_test

import (
	"context"
	"errors"
	"testing"

	"gather/internal/modules/profile/domain"
	"gather/internal/modules/profile/dto"
	"gather/internal/modules/profile/service"
	"gather/internal/modules/profile/usecase"
	apperrors "gather/internal/platform/errors"
)

type fakeTokenSource struct {
	token string
	err   error
}

func (f fakeTokenSource) Token(context.Context) (string, error) {
	return f.token, f.err
}

type fakeProfileAPI struct {
	user          domain.User
	precheckErr   error
	fetchCalls    int
	updateCalls   int
	precheckCalls int
	lastDraft     domain.Draft
}

func (f *fakeProfileAPI) Fetch(context.Context, string) (domain.User, error) {
	f.fetchCalls++
	return f.user, nil
}

func (f *fakeProfileAPI) Update(_ context.Context, _ string, draft domain.Draft) (domain.User, error) {
	f.updateCalls++
	f.lastDraft = draft
	return domain.User{FirstName: draft.FirstName, LastName: draft.LastName, Bio: draft.Bio}, nil
}

func (f *fakeProfileAPI) ValidateOldPassword(context.Context, string, string) error {
	f.precheckCalls++
	return f.precheckErr
}

func TestShowShortCircuitsWithoutToken(t *testing.T) {
	t.Parallel()
	api := &fakeProfileAPI{}
	uc := usecase.NewInteractor(service.NewProfileService(fakeTokenSource{err: apperrors.ErrMissingToken}, api))

	if _, err := uc.Show(context.Background()); !errors.Is(err, apperrors.ErrMissingToken) {
		t.Fatalf("expected missing token, got %v", err)
	}
	if api.fetchCalls != 0 {
		t.Fatalf("missing token must not reach the backend")
	}
}

func TestUpdateWithoutPasswordChangeSkipsPrecheck(t *testing.T) {
	t.Parallel()
	api := &fakeProfileAPI{}
	uc := usecase.NewInteractor(service.NewProfileService(fakeTokenSource{token: "tok-1"}, api))

	out, err := uc.Update(context.Background(), dto.UpdateInput{FirstName: "Ana", LastName: "Costa", Bio: "Likes hiking."})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.FirstName != "Ana" || out.Bio != "Likes hiking." {
		t.Fatalf("expected updated record back, got %v", out)
	}
	if api.precheckCalls != 0 {
		t.Fatalf("no password change must skip the pre-check round-trip")
	}
	if api.updateCalls != 1 {
		t.Fatalf("expected exactly one update call, got %d", api.updateCalls)
	}
}

func TestFailedOldPasswordPrecheckAbortsUpdate(t *testing.T) {
	t.Parallel()
	api := &fakeProfileAPI{precheckErr: &apperrors.RequestError{Status: 400, Message: "Old password does not match"}}
	uc := usecase.NewInteractor(service.NewProfileService(fakeTokenSource{token: "tok-1"}, api))

	_, err := uc.Update(context.Background(), dto.UpdateInput{
		FirstName:   "Ana",
		LastName:    "Costa",
		OldPassword: "wrong-old",
		NewPassword: "Abc1#xyz",
	})
	fields, ok := apperrors.FieldErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	if fields["old_password"] != "Old password does not match" {
		t.Fatalf("expected server message in the old_password slot, got %v", fields)
	}
	if api.precheckCalls != 1 || api.updateCalls != 0 {
		t.Fatalf("pre-check failure must abort before the update endpoint, got %d/%d", api.precheckCalls, api.updateCalls)
	}
}

func TestSuccessfulPrecheckSendsBothPasswordFields(t *testing.T) {
	t.Parallel()
	api := &fakeProfileAPI{}
	uc := usecase.NewInteractor(service.NewProfileService(fakeTokenSource{token: "tok-1"}, api))

	if _, err := uc.Update(context.Background(), dto.UpdateInput{
		FirstName:   "Ana",
		LastName:    "Costa",
		OldPassword: "old-secret",
		NewPassword: "Abc1#xyz",
	}); err != nil {
		t.Fatalf("update with password change: %v", err)
	}
	if api.precheckCalls != 1 || api.updateCalls != 1 {
		t.Fatalf("expected pre-check then update, got %d/%d", api.precheckCalls, api.updateCalls)
	}
	if api.lastDraft.OldPassword != "old-secret" || api.lastDraft.NewPassword != "Abc1#xyz" {
		t.Fatalf("expected password pair forwarded, got %+v", api.lastDraft)
	}
}

func TestWeakNewPasswordNeverReachesBackend(t *testing.T) {
	t.Parallel()
	api := &fakeProfileAPI{}
	uc := usecase.NewInteractor(service.NewProfileService(fakeTokenSource{token: "tok-1"}, api))

	_, err := uc.Update(context.Background(), dto.UpdateInput{
		FirstName:   "Ana",
		LastName:    "Costa",
		OldPassword: "old-secret",
		NewPassword: "abc",
	})
	fields, ok := apperrors.FieldErrors(err)
	if !ok || fields["new_password"] == "" {
		t.Fatalf("expected new_password error, got %v", err)
	}
	if api.precheckCalls != 0 || api.updateCalls != 0 {
		t.Fatalf("validation failure must not reach the backend")
	}
}
