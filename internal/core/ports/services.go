package ports

import (
	"context"
	"time"

	"github.com/trailconnect/web-gateway/internal/core/domain"
)

// Actor identifies the caller of a service operation, derived from the
// session snapshot by the transport layer.
type Actor struct {
	UserID         string
	Role           string
	GuideProfileID string // empty unless the caller has a guide profile
}

// StartedSession is returned by SessionManager.Login: the signed gateway
// cookie value plus the freshly authenticated snapshot.
type StartedSession struct {
	Token   string
	Session domain.Session
}

// SessionManager owns the per-browser-session stores: creation at login,
// recovery (bootstrap) on resume, and the explicit mutations the UI can
// trigger. All snapshot reads are copies; mutations are last-write-wins
// over the whole session slice.
type SessionManager interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*StartedSession, error)
	// Logout tells the remote API to destroy the session (best effort) and
	// drops the gateway-side store.
	Logout(ctx context.Context, sid, credential string) error
	// Resume returns the current snapshot for sid, running the one-time
	// bootstrap fetch first if the store was never populated. A failing
	// bootstrap leaves the snapshot at its unauthenticated zero value.
	Resume(ctx context.Context, sid, credential string) domain.Session
	// RefreshUser replaces the session's user snapshot after a profile
	// update. No-op for unknown sids.
	RefreshUser(sid string, user *domain.User)
	// UpdateGuideAvailability replaces the session profile's availability.
	// Silent no-op when the session has no guide profile.
	UpdateGuideAvailability(sid string, entries []domain.AvailabilityEntry)
}

// GuideDirectory is the use-case surface for guide discovery and guide
// profile management.
type GuideDirectory interface {
	List(ctx context.Context, credential string, filter ListGuidesFilter) (*GuideList, error)
	Get(ctx context.Context, credential, id string) (*domain.Guide, error)
	ReplaceAvailability(ctx context.Context, actor Actor, credential, guideID string, entries []domain.AvailabilityEntry) (*domain.GuideProfile, error)
	Verify(ctx context.Context, actor Actor, credential, guideID string) error
	Reject(ctx context.Context, actor Actor, credential, guideID, reason string) error
}

// TrekCatalog is the use-case surface for trek templates and regions.
// Reads are public; writes require the admin role.
type TrekCatalog interface {
	ListTemplates(ctx context.Context, credential string) ([]domain.TrekTemplate, error)
	CreateTemplate(ctx context.Context, actor Actor, credential string, in TrekTemplateInput) (*domain.TrekTemplate, error)
	UpdateTemplate(ctx context.Context, actor Actor, credential, id string, in TrekTemplateInput) (*domain.TrekTemplate, error)
	DeleteTemplate(ctx context.Context, actor Actor, credential, id string) error
	ListRegions(ctx context.Context, credential string) ([]domain.Region, error)
	CreateRegion(ctx context.Context, actor Actor, credential, name string) (*domain.Region, error)
	DeleteRegion(ctx context.Context, actor Actor, credential, id string) error
}

// AccountService handles user display-field updates.
type AccountService interface {
	// UpdateProfile patches the given user. Callers may only patch
	// themselves unless they hold the admin role.
	UpdateProfile(ctx context.Context, actor Actor, credential, userID string, in UpdateUserInput) (*domain.User, error)
}

// EstimateInput is a booking intent to be priced.
type EstimateInput struct {
	GuideID   string
	StartDate time.Time
	EndDate   time.Time
	Services  []string // optional service codes from the static catalog
}

// Estimator prices a booking intent from already-fetched guide data.
// Pure arithmetic: no booking is created anywhere.
type Estimator interface {
	Estimate(ctx context.Context, credential string, in EstimateInput) (*domain.PriceBreakdown, error)
}
