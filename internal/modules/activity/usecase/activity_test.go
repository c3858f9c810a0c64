package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gather/internal/modules/activity/domain"
	"gather/internal/modules/activity/dto"
	"gather/internal/modules/activity/service"
	"gather/internal/modules/activity/usecase"
	apperrors "gather/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time { return f.now }

type fakeTokenSource struct {
	token string
	err   error
}

func (f fakeTokenSource) Token(context.Context) (string, error) {
	return f.token, f.err
}

type fakeAPI struct {
	listed      []domain.Activity
	created     domain.Activity
	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	lastToken   string
	lastFilter  domain.Filter
	lastID      string
}

func (f *fakeAPI) List(_ context.Context, token string, filter domain.Filter) ([]domain.Activity, error) {
	f.listCalls++
	f.lastToken = token
	f.lastFilter = filter
	return f.listed, nil
}

func (f *fakeAPI) Create(_ context.Context, token string, draft domain.Draft) (domain.Activity, error) {
	f.createCalls++
	f.lastToken = token
	return f.created, nil
}

func (f *fakeAPI) Update(_ context.Context, token, id string, draft domain.Draft) (domain.Activity, error) {
	f.updateCalls++
	f.lastToken = token
	f.lastID = id
	return domain.Activity{ID: id, Title: draft.Title, Category: domain.Category(draft.Category)}, nil
}

func (f *fakeAPI) Delete(_ context.Context, token, id string) error {
	f.deleteCalls++
	f.lastToken = token
	f.lastID = id
	return nil
}

type memorySnapshot struct {
	byFilter map[domain.Filter][]domain.Activity
	removed  []string
}

func newMemorySnapshot() *memorySnapshot {
	return &memorySnapshot{byFilter: map[domain.Filter][]domain.Activity{}}
}

func (m *memorySnapshot) ReplaceFilter(_ context.Context, filter domain.Filter, activities []domain.Activity) error {
	m.byFilter[filter] = append([]domain.Activity(nil), activities...)
	return nil
}

func (m *memorySnapshot) Upsert(_ context.Context, filter domain.Filter, activity domain.Activity) error {
	m.byFilter[filter] = domain.Prepend(domain.RemoveByID(m.byFilter[filter], activity.ID), activity)
	return nil
}

func (m *memorySnapshot) Remove(_ context.Context, id string) error {
	m.removed = append(m.removed, id)
	for filter, list := range m.byFilter {
		m.byFilter[filter] = domain.RemoveByID(list, id)
	}
	return nil
}

func (m *memorySnapshot) List(_ context.Context, filter domain.Filter) ([]domain.Activity, error) {
	return m.byFilter[filter], nil
}

func validInput() dto.DraftInput {
	return dto.DraftInput{
		Title:       "Evening climb",
		Description: "Bouldering session at the gym, shoes provided.",
		Location:    "Boulder hall",
		Category:    "Indoors",
		ImagePath:   "/tmp/wall.jpg",
		StartDate:   "2026-03-12",
		EndDate:     "2026-03-13",
	}
}

func TestListRoutesFilterAndMirrorsSnapshot(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{listed: []domain.Activity{{ID: "a-1", Title: "Hike"}, {ID: "a-2", Title: "Yoga"}}}
	snapshot := newMemorySnapshot()
	uc := usecase.NewInteractor(service.NewActivityService(
		fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
		fakeTokenSource{token: "tok-1"},
		api,
		snapshot,
	))

	out, err := uc.List(context.Background(), "all")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a-1" {
		t.Fatalf("unexpected listing: %v", out)
	}
	if api.lastFilter != domain.FilterAll || api.lastToken != "tok-1" {
		t.Fatalf("expected all filter with bearer token, got %s / %s", api.lastFilter, api.lastToken)
	}
	if len(snapshot.byFilter[domain.FilterAll]) != 2 {
		t.Fatalf("snapshot must mirror the listing, got %v", snapshot.byFilter)
	}

	cached, err := uc.ListCached(context.Background(), "all")
	if err != nil {
		t.Fatalf("cached list: %v", err)
	}
	if len(cached) != 2 || api.listCalls != 1 {
		t.Fatalf("cached list must not hit the backend, got %d calls", api.listCalls)
	}
}

func TestListRejectsUnknownFilter(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(service.NewActivityService(
		fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
		fakeTokenSource{token: "tok-1"},
		&fakeAPI{},
		newMemorySnapshot(),
	))
	if _, err := uc.List(context.Background(), "theirs"); err == nil {
		t.Fatalf("unknown filter must fail")
	}
}

func TestCreateValidationBlocksBackendCall(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewActivityService(
		fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
		fakeTokenSource{token: "tok-1"},
		api,
		newMemorySnapshot(),
	))

	input := validInput()
	input.Title = "one two three four five"
	input.ImagePath = ""
	_, err := uc.Create(context.Background(), input)
	fields, ok := apperrors.FieldErrors(err)
	if !ok {
		t.Fatalf("expected field errors, got %v", err)
	}
	if fields["title"] == "" || fields["image"] == "" {
		t.Fatalf("expected title and image errors, got %v", fields)
	}
	if api.createCalls != 0 {
		t.Fatalf("validation failure must not reach the backend, got %d calls", api.createCalls)
	}
}

func TestMissingTokenShortCircuits(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{}
	uc := usecase.NewInteractor(service.NewActivityService(
		fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
		fakeTokenSource{err: apperrors.ErrMissingToken},
		api,
		newMemorySnapshot(),
	))

	if _, err := uc.List(context.Background(), "mine"); !errors.Is(err, apperrors.ErrMissingToken) {
		t.Fatalf("expected missing token on list, got %v", err)
	}
	if _, err := uc.Create(context.Background(), validInput()); !errors.Is(err, apperrors.ErrMissingToken) {
		t.Fatalf("expected missing token on create, got %v", err)
	}
	if err := uc.Delete(context.Background(), "a-1"); !errors.Is(err, apperrors.ErrMissingToken) {
		t.Fatalf("expected missing token on delete, got %v", err)
	}
	if api.listCalls+api.createCalls+api.deleteCalls != 0 {
		t.Fatalf("missing token must not reach the backend")
	}
}

func TestCreateAndDeleteKeepSnapshotInStep(t *testing.T) {
	t.Parallel()
	api := &fakeAPI{created: domain.Activity{ID: "a-9", Title: "Evening climb", Category: domain.CategoryIndoors}}
	snapshot := newMemorySnapshot()
	uc := usecase.NewInteractor(service.NewActivityService(
		fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
		fakeTokenSource{token: "tok-1"},
		api,
		snapshot,
	))

	created, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "a-9" {
		t.Fatalf("expected the server record back, got %v", created)
	}
	for _, filter := range []domain.Filter{domain.FilterMine, domain.FilterAll} {
		if len(snapshot.byFilter[filter]) != 1 || snapshot.byFilter[filter][0].ID != "a-9" {
			t.Fatalf("expected snapshot upsert for %s, got %v", filter, snapshot.byFilter)
		}
	}

	if err := uc.Delete(context.Background(), "a-9"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(snapshot.byFilter[domain.FilterMine]) != 0 || len(snapshot.byFilter[domain.FilterAll]) != 0 {
		t.Fatalf("expected snapshot rows removed, got %v", snapshot.byFilter)
	}
}
