package out

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gather/internal/modules/activity/domain"
	activityout "gather/internal/modules/activity/port/out"
	"gather/internal/platform/rest"
)

// wireDateLayout is what the backend expects and usually emits. Some
// responses carry RFC 3339 instead, so reads accept both.
const wireDateLayout = "2006-01-02 15:04:05"

type HTTPActivityAPI struct {
	client *rest.Client
}

func NewHTTPActivityAPI(client *rest.Client) activityout.ActivityAPI {
	return &HTTPActivityAPI{client: client}
}

type activityPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Owner       string `json:"owner"`
}

func (a *HTTPActivityAPI) List(ctx context.Context, token string, filter domain.Filter) ([]domain.Activity, error) {
	path := "/activities"
	if filter == domain.FilterAll {
		path = "/activities/all"
	}
	payloads := []activityPayload{}
	if err := a.client.GetJSON(ctx, path, token, &payloads); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	activities := make([]domain.Activity, 0, len(payloads))
	for _, p := range payloads {
		activities = append(activities, fromPayload(p))
	}
	return activities, nil
}

func (a *HTTPActivityAPI) Create(ctx context.Context, token string, draft domain.Draft) (domain.Activity, error) {
	payload := activityPayload{}
	if err := a.client.SubmitForm(ctx, "POST", "/activities", token, draftForm(draft), &payload); err != nil {
		return domain.Activity{}, fmt.Errorf("create activity: %w", err)
	}
	return fromPayload(payload), nil
}

func (a *HTTPActivityAPI) Update(ctx context.Context, token, id string, draft domain.Draft) (domain.Activity, error) {
	payload := activityPayload{}
	if err := a.client.SubmitForm(ctx, "PATCH", "/activity/"+id, token, draftForm(draft), &payload); err != nil {
		return domain.Activity{}, fmt.Errorf("update activity: %w", err)
	}
	return fromPayload(payload), nil
}

func (a *HTTPActivityAPI) Delete(ctx context.Context, token, id string) error {
	if err := a.client.Delete(ctx, "/activity/"+id, token); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}
	return nil
}

func draftForm(draft domain.Draft) rest.Form {
	form := rest.Form{
		Fields: []rest.Field{
			{Name: "title", Value: draft.Title},
			{Name: "description", Value: draft.Description},
			{Name: "location", Value: draft.Location},
			{Name: "category", Value: draft.Category},
			{Name: "start_date", Value: wireDate(draft.StartDate)},
			{Name: "end_date", Value: wireDate(draft.EndDate)},
		},
	}
	if draft.ImagePath != "" {
		form.File = &rest.FileAttachment{FieldName: "image", Path: draft.ImagePath}
	}
	return form
}

// wireDate widens a date-only form value to the backend's timestamp
// layout. Values that already carry a time pass through untouched.
func wireDate(value string) string {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(domain.DateLayout, value); err == nil {
		return t.Format(wireDateLayout)
	}
	return value
}

func fromPayload(p activityPayload) domain.Activity {
	return domain.Activity{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		Category:    domain.Category(p.Category),
		ImageURL:    p.Image,
		StartDate:   parseWireDate(p.StartDate),
		EndDate:     parseWireDate(p.EndDate),
		Owner:       p.Owner,
	}
}

func parseWireDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{wireDateLayout, time.RFC3339, domain.DateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
