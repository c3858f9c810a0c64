package out

import (
	"context"
	"fmt"

	"gather/internal/modules/profile/domain"
	profileout "gather/internal/modules/profile/port/out"
	"gather/internal/platform/rest"
)

type HTTPProfileAPI struct {
	client *rest.Client
}

func NewHTTPProfileAPI(client *rest.Client) profileout.ProfileAPI {
	return &HTTPProfileAPI{client: client}
}

type userPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
}

func (a *HTTPProfileAPI) Fetch(ctx context.Context, token string) (domain.User, error) {
	payload := userPayload{}
	if err := a.client.GetJSON(ctx, "/user", token, &payload); err != nil {
		return domain.User{}, fmt.Errorf("fetch profile: %w", err)
	}
	return fromPayload(payload), nil
}

func (a *HTTPProfileAPI) Update(ctx context.Context, token string, draft domain.Draft) (domain.User, error) {
	form := rest.Form{
		Fields: []rest.Field{
			{Name: "first_name", Value: draft.FirstName},
			{Name: "last_name", Value: draft.LastName},
			{Name: "bio", Value: draft.Bio},
		},
	}
	// Password fields travel only as a pair.
	if draft.ChangesPassword() {
		form.Fields = append(form.Fields,
			rest.Field{Name: "old_password", Value: draft.OldPassword},
			rest.Field{Name: "new_password", Value: draft.NewPassword},
		)
	}
	if draft.ImagePath != "" {
		form.File = &rest.FileAttachment{FieldName: "image", Path: draft.ImagePath}
	}
	payload := userPayload{}
	if err := a.client.SubmitForm(ctx, "PATCH", "/user", token, form, &payload); err != nil {
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}
	return fromPayload(payload), nil
}

func (a *HTTPProfileAPI) ValidateOldPassword(ctx context.Context, token, oldPassword string) error {
	body := map[string]string{"old_password": oldPassword}
	if err := a.client.PostJSON(ctx, "/validate-old-password", token, body, nil); err != nil {
		return fmt.Errorf("validate old password: %w", err)
	}
	return nil
}

func fromPayload(p userPayload) domain.User {
	return domain.User{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
		Bio:       p.Bio,
		ImageURL:  p.Image,
	}
}
