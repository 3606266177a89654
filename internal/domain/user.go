package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleDonor UserRole = "donor"
	UserRoleAdmin UserRole = "admin"
)

// User represents a registered account. Zone is the donor's rough locality
// and is snapshotted onto donations at submission time.
type User struct {
	ID           int64
	FullName     string
	Email        string
	Phone        string
	PasswordHash string
	Role         UserRole
	Zone         string
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
