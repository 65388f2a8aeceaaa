package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

type stubAuthAPI struct {
	registerFn   func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn      func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	logoutErr    error
	logoutCalls  int
	profileCalls int
	profileFn    func(ctx context.Context, credential string) (*domain.User, *domain.GuideProfile, error)
}

func (s *stubAuthAPI) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthAPI) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthAPI) Logout(context.Context, string) error {
	s.logoutCalls++
	return s.logoutErr
}

func (s *stubAuthAPI) Profile(ctx context.Context, credential string) (*domain.User, *domain.GuideProfile, error) {
	s.profileCalls++
	if s.profileFn != nil {
		return s.profileFn(ctx, credential)
	}
	return nil, nil, errors.New("no session")
}

func TestSessionService_Register_RejectsAdminRole(t *testing.T) {
	api := &stubAuthAPI{
		registerFn: func(context.Context, ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("remote register should not be called")
			return nil, nil
		},
	}
	svc := NewSessionService(api, "secret", time.Hour, zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "a@b.com", Password: "longenough", Role: domain.RoleAdmin,
	})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionService_Login_IssuesResumableToken(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(_ context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "pem@example.com" || password != "s3cret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.LoginResult{
				Credential: "connect.sid=xyz",
				User:       testUser(domain.RoleGuide),
				GuideProfile: &domain.GuideProfile{
					ID: "gp1", UserID: "u1", DailyRate: 80,
				},
			}, nil
		},
	}
	svc := NewSessionService(api, "secret", time.Hour, zerolog.Nop())

	started, err := svc.Login(context.Background(), "pem@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !started.Session.IsAuthenticated || started.Session.GuideProfile == nil {
		t.Fatalf("unexpected session: %+v", started.Session)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(started.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		t.Fatalf("expected sid claim, got %v", claims)
	}
	if claims["api_token"] != "connect.sid=xyz" {
		t.Fatalf("expected backend credential in claims, got %v", claims["api_token"])
	}

	// Resuming the fresh session must not trigger a bootstrap fetch.
	snap := svc.Resume(context.Background(), sid, "connect.sid=xyz")
	if !snap.IsAuthenticated {
		t.Fatalf("expected resumed session to stay authenticated")
	}
	if api.profileCalls != 0 {
		t.Fatalf("expected no bootstrap after login, got %d fetches", api.profileCalls)
	}
}

func TestSessionService_Resume_BootstrapsUnknownSidOnce(t *testing.T) {
	api := &stubAuthAPI{
		profileFn: func(_ context.Context, credential string) (*domain.User, *domain.GuideProfile, error) {
			if credential != "connect.sid=restored" {
				t.Fatalf("unexpected credential: %s", credential)
			}
			return testUser(domain.RoleTourist), nil, nil
		},
	}
	svc := NewSessionService(api, "secret", time.Hour, zerolog.Nop())

	snap := svc.Resume(context.Background(), "sid-1", "connect.sid=restored")
	if !snap.IsAuthenticated || snap.User.Role != domain.RoleTourist {
		t.Fatalf("expected recovered tourist session, got %+v", snap)
	}

	svc.Resume(context.Background(), "sid-1", "connect.sid=restored")
	if api.profileCalls != 1 {
		t.Fatalf("expected exactly one bootstrap fetch, got %d", api.profileCalls)
	}
}

func TestSessionService_Resume_FailedBootstrapStaysAnonymous(t *testing.T) {
	api := &stubAuthAPI{}
	svc := NewSessionService(api, "secret", time.Hour, zerolog.Nop())

	snap := svc.Resume(context.Background(), "sid-2", "connect.sid=expired")
	if snap.IsAuthenticated {
		t.Fatalf("expected anonymous session, got %+v", snap)
	}

	// The one bootstrap slot is burnt even on failure.
	svc.Resume(context.Background(), "sid-2", "connect.sid=expired")
	if api.profileCalls != 1 {
		t.Fatalf("expected one fetch, got %d", api.profileCalls)
	}
}

func TestSessionService_Logout_DropsLocalSessionDespiteRemoteFailure(t *testing.T) {
	api := &stubAuthAPI{
		loginFn: func(context.Context, string, string) (*ports.LoginResult, error) {
			return &ports.LoginResult{Credential: "connect.sid=xyz", User: testUser(domain.RoleTourist)}, nil
		},
		logoutErr: errors.New("backend down"),
	}
	svc := NewSessionService(api, "secret", time.Hour, zerolog.Nop())

	started, err := svc.Login(context.Background(), "a@b.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(started.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("token parse failed: %v", err)
	}
	sid := claims["sid"].(string)

	if err := svc.Logout(context.Background(), sid, "connect.sid=xyz"); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}
	if api.logoutCalls != 1 {
		t.Fatalf("expected remote logout attempt, got %d", api.logoutCalls)
	}

	// The sid is gone from the registry, so a resume re-bootstraps (and
	// fails, because the stub has no profile), landing anonymous.
	snap := svc.Resume(context.Background(), sid, "connect.sid=xyz")
	if snap.IsAuthenticated {
		t.Fatalf("expected session to be gone after logout, got %+v", snap)
	}
}
