// Package auth establishes who is calling: it mints and validates bearer
// tokens and carries the resolved identity as an explicit value instead of
// ambient request state.
package auth

// Identity is the acting caller. The zero value is anonymous.
type Identity struct {
	UserID   uint
	Username string
	Email    string
	FullName string
	Roles    []string
}

// Anonymous reports whether no authenticated user is behind the request.
func (i Identity) Anonymous() bool {
	return i.UserID == 0
}

func (i Identity) HasRole(role string) bool {
	for _, r := range i.Roles {
		if r == role {
			return true
		}
	}
	return false
}
