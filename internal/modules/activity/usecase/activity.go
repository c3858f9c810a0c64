package usecase

import (
	"context"
	"fmt"

	"gather/internal/modules/activity/domain"
	"gather/internal/modules/activity/dto"
	activityin "gather/internal/modules/activity/port/in"
	"gather/internal/modules/activity/service"
)

type Interactor struct {
	svc *service.ActivityService
}

func NewInteractor(svc *service.ActivityService) activityin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, filter string) ([]dto.ActivityOutput, error) {
	f, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}
	activities, err := i.svc.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return toOutputs(activities), nil
}

func (i *Interactor) ListCached(ctx context.Context, filter string) ([]dto.ActivityOutput, error) {
	f, err := parseFilter(filter)
	if err != nil {
		return nil, err
	}
	activities, err := i.svc.ListCached(ctx, f)
	if err != nil {
		return nil, err
	}
	return toOutputs(activities), nil
}

func (i *Interactor) Create(ctx context.Context, input dto.DraftInput) (dto.ActivityOutput, error) {
	created, err := i.svc.Create(ctx, toDraft(input))
	if err != nil {
		return dto.ActivityOutput{}, err
	}
	return toOutput(created), nil
}

func (i *Interactor) Update(ctx context.Context, id string, input dto.DraftInput) (dto.ActivityOutput, error) {
	updated, err := i.svc.Update(ctx, id, toDraft(input))
	if err != nil {
		return dto.ActivityOutput{}, err
	}
	return toOutput(updated), nil
}

func (i *Interactor) Delete(ctx context.Context, id string) error {
	return i.svc.Delete(ctx, id)
}

func parseFilter(filter string) (domain.Filter, error) {
	f := domain.Filter(filter)
	if !f.Valid() {
		return "", fmt.Errorf("unknown filter %q, expected all or mine", filter)
	}
	return f, nil
}

func toDraft(input dto.DraftInput) domain.Draft {
	return domain.Draft{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Category:    input.Category,
		ImagePath:   input.ImagePath,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}
}

func toOutput(a domain.Activity) dto.ActivityOutput {
	out := dto.ActivityOutput{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Location:    a.Location,
		Category:    string(a.Category),
		ImageURL:    a.ImageURL,
		Owner:       a.Owner,
	}
	if !a.StartDate.IsZero() {
		out.StartDate = a.StartDate.Format(domain.DateLayout)
	}
	if !a.EndDate.IsZero() {
		out.EndDate = a.EndDate.Format(domain.DateLayout)
	}
	return out
}

func toOutputs(activities []domain.Activity) []dto.ActivityOutput {
	outs := make([]dto.ActivityOutput, 0, len(activities))
	for _, a := range activities {
		outs = append(outs, toOutput(a))
	}
	return outs
}
