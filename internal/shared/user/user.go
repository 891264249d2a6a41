package user

// Roles recognized by the access layer.
const (
	RoleDriver = "driver"
	RoleAdmin  = "admin"
)

// User is the trimmed read model used for owner checks in the vehicle
// service. The full model lives in internal/account/domain.
type User struct {
	Username string
	Role     string // driver | admin | other
}

// IsDriver reports whether a vehicle may be assigned to this user.
func (u *User) IsDriver() bool {
	return u.Role == RoleDriver
}
