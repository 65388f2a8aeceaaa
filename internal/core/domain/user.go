package domain

const (
	RoleAdmin   = "admin"
	RoleTourist = "user"
	RoleGuide   = "guide"
)

// User models an authenticated actor in the marketplace. Accounts are
// created and owned by the remote API; the gateway only reads them and
// occasionally patches display fields.
type User struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email,omitempty"`
	Role      string   `json:"role"`
	Avatar    string   `json:"avatar,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// Clone returns a deep copy so session snapshots never alias caller state.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	if u.Languages != nil {
		clone.Languages = append([]string(nil), u.Languages...)
	}
	return &clone
}
