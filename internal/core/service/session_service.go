package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/trailconnect/web-gateway/internal/api/metrics"
	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// sessionEntry pairs a store with the backend credential that backs it.
// bootstrapOnce guarantees the recovery fetch runs at most once per entry.
type sessionEntry struct {
	store         *SessionStore
	credential    string
	bootstrapOnce sync.Once
}

// SessionService implements ports.SessionManager. It keeps one SessionStore
// per browser session in an in-process registry keyed by session ID, and
// signs the gateway cookie (JWT) that carries the sid and the backend
// credential across requests, so a registry entry can be rebuilt (and
// bootstrapped) after a gateway restart.
type SessionService struct {
	auth      ports.AuthAPI
	bootstrap *Bootstrapper
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

func NewSessionService(auth ports.AuthAPI, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		auth:      auth,
		bootstrap: NewBootstrapper(auth, log),
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		sessions:  make(map[string]*sessionEntry),
	}
}

func (s *SessionService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Email == "" || in.Password == "" || in.Role == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if in.Role != domain.RoleTourist && in.Role != domain.RoleGuide {
		// Admin accounts are provisioned out of band, never via the form.
		return nil, domain.ErrInvalidCredentials
	}
	return s.auth.Register(ctx, in)
}

func (s *SessionService) Login(ctx context.Context, email, password string) (*ports.StartedSession, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	res, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sid := uuid.NewString()
	entry := &sessionEntry{store: NewSessionStore(), credential: res.Credential}
	entry.store.Login(res.User, res.GuideProfile)
	// Login already populated the store; burn the one bootstrap slot.
	entry.bootstrapOnce.Do(func() {})

	s.mu.Lock()
	s.sessions[sid] = entry
	s.mu.Unlock()

	token, err := s.generateToken(sid, res.Credential)
	if err != nil {
		return nil, err
	}

	metrics.SessionsStartedTotal.Inc()
	s.log.Info().Str("user_id", res.User.ID).Str("role", res.User.Role).Msg("session started")

	return &ports.StartedSession{Token: token, Session: entry.store.Snapshot()}, nil
}

// Logout destroys the remote session best-effort and always drops the
// gateway-side store: the user ends up logged out locally even when the
// backend call fails.
func (s *SessionService) Logout(ctx context.Context, sid, credential string) error {
	if err := s.auth.Logout(ctx, credential); err != nil {
		s.log.Warn().Err(err).Msg("remote logout failed, dropping local session anyway")
	}

	s.mu.Lock()
	entry, ok := s.sessions[sid]
	delete(s.sessions, sid)
	s.mu.Unlock()

	if ok {
		entry.store.Logout()
	}
	return nil
}

func (s *SessionService) Resume(ctx context.Context, sid, credential string) domain.Session {
	entry := s.getOrCreate(sid, credential)
	entry.bootstrapOnce.Do(func() {
		s.bootstrap.Run(ctx, entry.store, entry.credential)
	})
	return entry.store.Snapshot()
}

func (s *SessionService) RefreshUser(sid string, user *domain.User) {
	if entry, ok := s.lookup(sid); ok {
		entry.store.ReplaceUser(user)
	}
}

func (s *SessionService) UpdateGuideAvailability(sid string, entries []domain.AvailabilityEntry) {
	if entry, ok := s.lookup(sid); ok {
		entry.store.UpdateGuideAvailability(entries)
	}
}

func (s *SessionService) lookup(sid string) (*sessionEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[sid]
	return entry, ok
}

func (s *SessionService) getOrCreate(sid, credential string) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.sessions[sid]; ok {
		return entry
	}
	entry := &sessionEntry{store: NewSessionStore(), credential: credential}
	s.sessions[sid] = entry
	return entry
}

func (s *SessionService) generateToken(sid, credential string) (string, error) {
	claims := jwt.MapClaims{
		"sid":       sid,
		"api_token": credential,
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
