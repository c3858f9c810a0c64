package domain

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryOutdoors Category = "Outdoors"
	CategoryIndoors  Category = "Indoors"
	CategoryGeneral  Category = "General"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryOutdoors, CategoryIndoors, CategoryGeneral:
		return true
	}
	return false
}

// Filter selects whose activities to list. The backend exposes the two
// sets on distinct paths, so the zero value is deliberately invalid.
type Filter string

const (
	FilterAll  Filter = "all"
	FilterMine Filter = "mine"
)

func (f Filter) Valid() bool {
	return f == FilterAll || f == FilterMine
}

type Activity struct {
	ID          string
	Title       string
	Description string
	Location    string
	Category    Category
	ImageURL    string
	StartDate   time.Time
	EndDate     time.Time
	Owner       string
}

// Draft holds activity form input before submission. Dates are carried
// as strings so a half-typed value still produces a field error instead
// of a parse panic.
type Draft struct {
	Title       string
	Description string
	Location    string
	Category    string
	ImagePath   string
	StartDate   string
	EndDate     string
}

const DateLayout = "2006-01-02"

const maxTitleWords = 4

const maxDescriptionWords = 49

// Validate checks every field and reports all violations at once. The
// returned map is empty when the draft is ready to submit. today is
// compared date-only so a draft written at 23:59 still passes.
func (d Draft) Validate(today time.Time) map[string]string {
	fields := map[string]string{}

	if strings.TrimSpace(d.Title) == "" {
		fields["title"] = "Title is required"
	} else if WordCount(d.Title) > maxTitleWords {
		fields["title"] = "Title should not exceed 4 words"
	}

	if strings.TrimSpace(d.Description) == "" {
		fields["description"] = "Description is required"
	} else if WordCount(d.Description) > maxDescriptionWords {
		fields["description"] = "Description should not exceed 49 words"
	}

	if strings.TrimSpace(d.Location) == "" {
		fields["location"] = "Location is required"
	}

	if strings.TrimSpace(d.Category) == "" {
		fields["category"] = "Category is required"
	} else if !Category(d.Category).Valid() {
		fields["category"] = "Category must be Outdoors, Indoors or General"
	}

	start, startErr := parseDateField(d.StartDate)
	if strings.TrimSpace(d.StartDate) == "" {
		fields["start_date"] = "Start date is required"
	} else if startErr != nil {
		fields["start_date"] = "Start date must look like 2006-01-02"
	} else if start.Before(dateOnly(today)) {
		fields["start_date"] = "Start date should be equal to today or in the future"
	}

	end, endErr := parseDateField(d.EndDate)
	if strings.TrimSpace(d.EndDate) == "" {
		fields["end_date"] = "End date is required"
	} else if endErr != nil {
		fields["end_date"] = "End date must look like 2006-01-02"
	} else if startErr == nil && end.Before(start) {
		fields["end_date"] = "End date should be equal to or after the start date"
	}

	if strings.TrimSpace(d.ImagePath) == "" {
		fields["image"] = "Image is required"
	}

	return fields
}

func parseDateField(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func WordCount(s string) int {
	return len(strings.Fields(s))
}
