package in

import "context"

// RegisterInput mirrors the registration form. DateOfBirth is an ISO date
// string (2006-01-02).
type RegisterInput struct {
	FirstName    string
	LastName     string
	DateOfBirth  string
	Username     string
	EmailAddress string
	Password     string
	Role         string
}

type RegisterUseCase interface {
	Execute(ctx context.Context, input RegisterInput) error
}
