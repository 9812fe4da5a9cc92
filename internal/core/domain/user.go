package domain

import "strings"

// Role is the closed set of actor roles known to the system.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
	RoleAdmin    Role = "admin"
)

// ParseRole maps a raw form value onto the Role set. The value is trimmed and
// lowercased before matching; ok is false for anything outside the set.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleSeller, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

// User models a row of the users table. Passwords are stored and compared as
// plain text: the workbook is the contract and exact-equality login is the
// documented behavior of the system.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Role     Role   `json:"role"`
}

// Session identifies the authenticated caller for the span of one request.
// It is established by a successful Authenticate call and passed explicitly
// into every guarded operation; there is no process-wide session state.
type Session struct {
	UserID int  `json:"user_id"`
	Role   Role `json:"role"`
}

// Is reports whether the session carries the given role.
func (s Session) Is(r Role) bool { return s.Role == r }

// Owned is implemented by entities whose mutation is restricted to the user
// that created them.
type Owned interface {
	OwnerID() int
}

// Owns is the single ownership predicate applied at every guarded mutation.
func Owns(s Session, o Owned) bool { return s.UserID == o.OwnerID() }
