package dto

type DraftInput struct {
	Title       string
	Description string
	Location    string
	Category    string
	ImagePath   string
	StartDate   string
	EndDate     string
}

type ActivityOutput struct {
	ID          string
	Title       string
	Description string
	Location    string
	Category    string
	ImageURL    string
	StartDate   string
	EndDate     string
	Owner       string
}
