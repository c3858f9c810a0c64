package service

import (
	"context"

	"gather/internal/modules/activity/domain"
	activityout "gather/internal/modules/activity/port/out"
	"gather/internal/platform/clock"
	apperrors "gather/internal/platform/errors"
)

type ActivityService struct {
	clock    clock.Clock
	tokens   activityout.TokenSource
	api      activityout.ActivityAPI
	snapshot activityout.SnapshotStore
}

func NewActivityService(clk clock.Clock, tokens activityout.TokenSource, api activityout.ActivityAPI, snapshot activityout.SnapshotStore) *ActivityService {
	return &ActivityService{clock: clk, tokens: tokens, api: api, snapshot: snapshot}
}

func (s *ActivityService) List(ctx context.Context, filter domain.Filter) ([]domain.Activity, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}
	activities, err := s.api.List(ctx, token, filter)
	if err != nil {
		return nil, err
	}
	// The snapshot is a cache; a failed write must not mask a successful
	// round-trip.
	_ = s.snapshot.ReplaceFilter(ctx, filter, activities)
	return activities, nil
}

// ListCached serves the last snapshot without touching the network or
// the session token.
func (s *ActivityService) ListCached(ctx context.Context, filter domain.Filter) ([]domain.Activity, error) {
	return s.snapshot.List(ctx, filter)
}

func (s *ActivityService) Create(ctx context.Context, draft domain.Draft) (domain.Activity, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return domain.Activity{}, err
	}
	if fields := draft.Validate(s.clock.Now()); len(fields) > 0 {
		return domain.Activity{}, &apperrors.ValidationError{Fields: fields}
	}
	created, err := s.api.Create(ctx, token, draft)
	if err != nil {
		return domain.Activity{}, err
	}
	_ = s.snapshot.Upsert(ctx, domain.FilterMine, created)
	_ = s.snapshot.Upsert(ctx, domain.FilterAll, created)
	return created, nil
}

func (s *ActivityService) Update(ctx context.Context, id string, draft domain.Draft) (domain.Activity, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return domain.Activity{}, err
	}
	if fields := draft.Validate(s.clock.Now()); len(fields) > 0 {
		return domain.Activity{}, &apperrors.ValidationError{Fields: fields}
	}
	updated, err := s.api.Update(ctx, token, id, draft)
	if err != nil {
		return domain.Activity{}, err
	}
	_ = s.snapshot.Upsert(ctx, domain.FilterMine, updated)
	_ = s.snapshot.Upsert(ctx, domain.FilterAll, updated)
	return updated, nil
}

func (s *ActivityService) Delete(ctx context.Context, id string) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if err := s.api.Delete(ctx, token, id); err != nil {
		return err
	}
	_ = s.snapshot.Remove(ctx, id)
	return nil
}
