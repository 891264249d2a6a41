package domain

import "time"

// Roles an account may register with.
const (
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

// User is the full account model. Only this module writes users; the
// vehicle service reads username and role through its own trimmed view.
type User struct {
	ID           string    `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	DateOfBirth  time.Time `json:"dateOfBirth" db:"date_of_birth"`
	Username     string    `json:"username" db:"username"`
	EmailAddress string    `json:"emailAddress" db:"email_address"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	IsBlocked    bool      `json:"isBlocked" db:"is_blocked"`
	IsConfirmed  bool      `json:"isConfirmed" db:"is_confirmed"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

func IsValidRole(role string) bool {
	return role == RoleDriver || role == RoleAdmin
}
