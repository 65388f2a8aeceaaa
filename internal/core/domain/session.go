package domain

// View is the top-level dashboard variant selected for a session.
type View string

const (
	ViewAdmin   View = "admin"
	ViewTourist View = "tourist"
	ViewGuide   View = "guide"
)

// Session is the gateway-held snapshot of one browser session's identity.
//
// Invariants:
//   - !IsAuthenticated implies User == nil.
//   - GuideProfile != nil implies User != nil with the guide role, except
//     transiently after Logout, which by observed behaviour does not clear
//     the profile (see SessionStore.Logout).
type Session struct {
	IsAuthenticated bool          `json:"is_authenticated"`
	User            *User         `json:"user,omitempty"`
	GuideProfile    *GuideProfile `json:"guide_profile,omitempty"`
}

// Route classifies an authenticated session into its dashboard view.
//
// Any role other than exactly "admin" or "user" falls through to the guide
// view, including unrecognised roles. That fallback is carried over from
// the original product behaviour and is questionable; callers must check
// IsAuthenticated before routing so unauthenticated sessions never reach
// the fallback.
func (s Session) Route() View {
	switch {
	case s.User != nil && s.User.Role == RoleAdmin:
		return ViewAdmin
	case s.User != nil && s.User.Role == RoleTourist:
		return ViewTourist
	default:
		return ViewGuide
	}
}
