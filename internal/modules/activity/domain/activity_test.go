package domain_test

import (
	"strings"
	"testing"
	"time"

	"gather/internal/modules/activity/domain"
)

var today = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func validDraft() domain.Draft {
	return domain.Draft{
		Title:       "Morning trail run",
		Description: "Easy pace along the river, all levels welcome.",
		Location:    "Riverside park",
		Category:    "Outdoors",
		ImagePath:   "/tmp/run.png",
		StartDate:   "2026-03-12",
		EndDate:     "2026-03-12",
	}
}

func TestValidDraftHasNoFieldErrors(t *testing.T) {
	t.Parallel()
	if fields := validDraft().Validate(today); len(fields) != 0 {
		t.Fatalf("expected clean draft, got %v", fields)
	}
}

func TestTitleWordBoundary(t *testing.T) {
	t.Parallel()
	d := validDraft()
	d.Title = "one two three four"
	if fields := d.Validate(today); fields["title"] != "" {
		t.Fatalf("four words must pass, got %q", fields["title"])
	}
	d.Title = "one two three four five"
	if fields := d.Validate(today); fields["title"] != "Title should not exceed 4 words" {
		t.Fatalf("five words must fail, got %q", fields["title"])
	}
}

func TestDescriptionWordBoundary(t *testing.T) {
	t.Parallel()
	d := validDraft()
	d.Description = strings.Repeat("word ", 49)
	if fields := d.Validate(today); fields["description"] != "" {
		t.Fatalf("49 words must pass, got %q", fields["description"])
	}
	d.Description = strings.Repeat("word ", 50)
	if fields := d.Validate(today); fields["description"] == "" {
		t.Fatalf("50 words must fail")
	}
}

func TestStartDateMustNotBeInThePast(t *testing.T) {
	t.Parallel()
	d := validDraft()
	d.StartDate = "2026-03-10" // same day as the clock reading
	if fields := d.Validate(today); fields["start_date"] != "" {
		t.Fatalf("today must pass regardless of wall time, got %q", fields["start_date"])
	}
	d.StartDate = "2026-03-09"
	if fields := d.Validate(today); fields["start_date"] != "Start date should be equal to today or in the future" {
		t.Fatalf("yesterday must fail, got %q", fields["start_date"])
	}
}

func TestEndDateOrdering(t *testing.T) {
	t.Parallel()
	d := validDraft()
	d.StartDate = "2026-03-12"
	d.EndDate = "2026-03-12"
	if fields := d.Validate(today); fields["end_date"] != "" {
		t.Fatalf("equal dates must pass, got %q", fields["end_date"])
	}
	d.EndDate = "2026-03-11"
	if fields := d.Validate(today); fields["end_date"] != "End date should be equal to or after the start date" {
		t.Fatalf("end before start must fail, got %q", fields["end_date"])
	}
}

func TestCategoryMustBeKnown(t *testing.T) {
	t.Parallel()
	d := validDraft()
	d.Category = "Underwater"
	if fields := d.Validate(today); fields["category"] == "" {
		t.Fatalf("unknown category must fail")
	}
	d.Category = ""
	if fields := d.Validate(today); fields["category"] != "Category is required" {
		t.Fatalf("missing category must fail, got %q", fields["category"])
	}
}

func TestEmptyDraftReportsEveryField(t *testing.T) {
	t.Parallel()
	fields := domain.Draft{}.Validate(today)
	for _, key := range []string{"title", "description", "location", "category", "start_date", "end_date", "image"} {
		if fields[key] == "" {
			t.Fatalf("expected error for %s, got %v", key, fields)
		}
	}
}

func TestMalformedDatesReportParseErrorsNotOrdering(t *testing.T) {
	t.Parallel()
	d := validDraft()
	d.StartDate = "12/03/2026"
	d.EndDate = "soon"
	fields := d.Validate(today)
	if fields["start_date"] == "" || fields["end_date"] == "" {
		t.Fatalf("malformed dates must produce field errors, got %v", fields)
	}
}

func TestListMutations(t *testing.T) {
	t.Parallel()
	list := []domain.Activity{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	created := domain.Prepend(list, domain.Activity{ID: "new"})
	if created[0].ID != "new" || len(created) != 4 {
		t.Fatalf("expected new element first, got %v", created)
	}
	if list[0].ID != "a" {
		t.Fatalf("prepend must not mutate the input list")
	}

	replaced := domain.ReplaceByID(list, domain.Activity{ID: "b", Title: "changed"})
	if replaced[1].Title != "changed" || replaced[0].ID != "a" || replaced[2].ID != "c" {
		t.Fatalf("expected in-place replacement preserving order, got %v", replaced)
	}

	removed := domain.RemoveByID(list, "b")
	if len(removed) != 2 || removed[0].ID != "a" || removed[1].ID != "c" {
		t.Fatalf("expected b removed leaving others, got %v", removed)
	}
	if unknown := domain.RemoveByID(list, "zz"); len(unknown) != 3 {
		t.Fatalf("removing an unknown id must be a no-op, got %v", unknown)
	}
}
