package dto

type SignUpInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type SignInInput struct {
	Email    string
	Password string
}

type SessionOutput struct {
	Token string
}
