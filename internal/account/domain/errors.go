package domain

import "errors"

var (
	// ErrUserAlreadyExists username or email already taken.
	ErrUserAlreadyExists = errors.New("user with this username or email already exists")

	// ErrMissingField a required registration field is empty.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidEmail email address fails the format check.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidRole role is not driver or admin.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidDateOfBirth date of birth is absent or not a date.
	ErrInvalidDateOfBirth = errors.New("invalid date of birth")

	// ErrPasswordTooShort password shorter than 8 characters.
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")

	// ErrInvalidCredentials unknown username or wrong password. One error
	// for both so login does not reveal which part failed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountBlocked the account exists but is blocked.
	ErrAccountBlocked = errors.New("account is blocked")
)
