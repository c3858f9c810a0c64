package dto

type UpdateInput struct {
	FirstName   string
	LastName    string
	Bio         string
	ImagePath   string
	OldPassword string
	NewPassword string
}

type UserOutput struct {
	FirstName string
	LastName  string
	Email     string
	Bio       string
	ImageURL  string
}
