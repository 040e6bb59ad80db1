package domain

import "time"

// Role is the closed set of roles a user can hold. Adding a role means
// extending this set and the Satisfies switch below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// ParseRole maps a raw claim value onto the known role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

// Satisfies reports whether a holder of role r may access a route requiring
// the given role. Admin satisfies every requirement; unknown roles never do.
func (r Role) Satisfies(required Role) bool {
	switch r {
	case RoleAdmin:
		return true
	case RoleUser:
		return required == RoleUser
	default:
		return false
	}
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the request-scoped result of a successful token verification.
// It carries only what the claims assert; it is never persisted.
type Identity struct {
	Subject string
	Role    Role
}
