package domain

import "testing"

func TestSession_Route(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    View
	}{
		{
			name:    "admin role routes to admin view",
			session: Session{IsAuthenticated: true, User: &User{Role: RoleAdmin}},
			want:    ViewAdmin,
		},
		{
			name:    "tourist role routes to tourist view",
			session: Session{IsAuthenticated: true, User: &User{Role: RoleTourist}},
			want:    ViewTourist,
		},
		{
			name:    "guide role routes to guide view",
			session: Session{IsAuthenticated: true, User: &User{Role: RoleGuide}},
			want:    ViewGuide,
		},
		{
			name:    "unrecognised role falls through to guide view",
			session: Session{IsAuthenticated: true, User: &User{Role: "moderator"}},
			want:    ViewGuide,
		},
		{
			name:    "nil user falls through to guide view",
			session: Session{},
			want:    ViewGuide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Route(); got != tt.want {
				t.Fatalf("Route() = %q, want %q", got, tt.want)
			}
		})
	}
}
