package in

import (
	"context"

	"gather/internal/modules/activity/dto"
	activityin "gather/internal/modules/activity/port/in"
)

type CLIHandler struct {
	usecase activityin.Usecase
}

func NewCLIHandler(usecase activityin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, filter string, cached bool) ([]dto.ActivityOutput, error) {
	if cached {
		return h.usecase.ListCached(ctx, filter)
	}
	return h.usecase.List(ctx, filter)
}

func (h CLIHandler) Create(ctx context.Context, title, description, location, category, imagePath, startDate, endDate string) (dto.ActivityOutput, error) {
	return h.usecase.Create(ctx, dto.DraftInput{
		Title:       title,
		Description: description,
		Location:    location,
		Category:    category,
		ImagePath:   imagePath,
		StartDate:   startDate,
		EndDate:     endDate,
	})
}

func (h CLIHandler) Update(ctx context.Context, id, title, description, location, category, imagePath, startDate, endDate string) (dto.ActivityOutput, error) {
	return h.usecase.Update(ctx, id, dto.DraftInput{
		Title:       title,
		Description: description,
		Location:    location,
		Category:    category,
		ImagePath:   imagePath,
		StartDate:   startDate,
		EndDate:     endDate,
	})
}

func (h CLIHandler) Delete(ctx context.Context, id string) error {
	return h.usecase.Delete(ctx, id)
}
