package service

import (
	"testing"
	"time"

	"github.com/trailconnect/web-gateway/internal/core/domain"
)

func testUser(role string) *domain.User {
	return &domain.User{ID: "u1", FirstName: "Pem", LastName: "Sherpa", Role: role}
}

func testProfile() *domain.GuideProfile {
	return &domain.GuideProfile{
		ID:        "gp1",
		UserID:    "u1",
		DailyRate: 90,
		Availability: []domain.AvailabilityEntry{
			{Status: domain.AvailabilityAvailable},
		},
	}
}

func TestSessionStore_InitialState(t *testing.T) {
	store := NewSessionStore()
	snap := store.Snapshot()

	if snap.IsAuthenticated || snap.User != nil || snap.GuideProfile != nil {
		t.Fatalf("expected zero-value session, got %+v", snap)
	}
}

func TestSessionStore_LoginThenLogout(t *testing.T) {
	store := NewSessionStore()
	store.Login(testUser(domain.RoleGuide), testProfile())

	snap := store.Snapshot()
	if !snap.IsAuthenticated || snap.User == nil || snap.GuideProfile == nil {
		t.Fatalf("expected authenticated guide session, got %+v", snap)
	}

	store.Logout()
	snap = store.Snapshot()
	if snap.IsAuthenticated || snap.User != nil {
		t.Fatalf("expected user cleared after logout, got %+v", snap)
	}
	// Observed behaviour: logout leaves the guide profile in place.
	if snap.GuideProfile == nil {
		t.Fatalf("expected guide profile to survive logout")
	}
}

func TestSessionStore_SecondLoginReplacesFirstWholesale(t *testing.T) {
	store := NewSessionStore()
	store.Login(testUser(domain.RoleGuide), testProfile())

	second := &domain.User{ID: "u2", FirstName: "Dawa", Role: domain.RoleTourist}
	store.Login(second, nil)

	snap := store.Snapshot()
	if !snap.IsAuthenticated || snap.User == nil || snap.User.ID != "u2" {
		t.Fatalf("expected only the second login's user, got %+v", snap.User)
	}
	if snap.User.Role != domain.RoleTourist {
		t.Fatalf("first login's role leaked through: %+v", snap.User)
	}
	// Unlike logout, a fresh login replaces the guide profile too.
	if snap.GuideProfile != nil {
		t.Fatalf("expected first login's profile to be dropped, got %+v", snap.GuideProfile)
	}
}

func TestSessionStore_SnapshotIsDeepCopy(t *testing.T) {
	store := NewSessionStore()
	store.Login(testUser(domain.RoleGuide), testProfile())

	snap := store.Snapshot()
	snap.User.FirstName = "changed"
	snap.GuideProfile.Availability[0].Status = domain.AvailabilityBooked

	fresh := store.Snapshot()
	if fresh.User.FirstName != "Pem" {
		t.Fatalf("snapshot mutation leaked into store user")
	}
	if fresh.GuideProfile.Availability[0].Status != domain.AvailabilityAvailable {
		t.Fatalf("snapshot mutation leaked into store availability")
	}
}

func TestSessionStore_UpdateGuideAvailability_ReplacesWholesale(t *testing.T) {
	store := NewSessionStore()
	store.Login(testUser(domain.RoleGuide), testProfile())

	first := []domain.AvailabilityEntry{
		{StartDate: time.Now(), Status: domain.AvailabilityBooked},
		{StartDate: time.Now(), Status: domain.AvailabilityAvailable},
	}
	second := []domain.AvailabilityEntry{
		{StartDate: time.Now(), Status: domain.AvailabilityUnavailable},
	}

	store.UpdateGuideAvailability(first)
	store.UpdateGuideAvailability(second)

	snap := store.Snapshot()
	if len(snap.GuideProfile.Availability) != 1 {
		t.Fatalf("expected last write to win, got %d entries", len(snap.GuideProfile.Availability))
	}
	if snap.GuideProfile.Availability[0].Status != domain.AvailabilityUnavailable {
		t.Fatalf("unexpected surviving entry: %+v", snap.GuideProfile.Availability[0])
	}
}

func TestSessionStore_UpdateGuideAvailability_NoProfileIsNoop(t *testing.T) {
	store := NewSessionStore()
	store.Login(testUser(domain.RoleTourist), nil)

	store.UpdateGuideAvailability([]domain.AvailabilityEntry{{Status: domain.AvailabilityBooked}})

	snap := store.Snapshot()
	if snap.GuideProfile != nil {
		t.Fatalf("expected no profile to appear, got %+v", snap.GuideProfile)
	}
}

func TestSessionStore_ReplaceUser_RequiresAuthentication(t *testing.T) {
	store := NewSessionStore()
	store.ReplaceUser(testUser(domain.RoleTourist))

	if snap := store.Snapshot(); snap.User != nil {
		t.Fatalf("expected replace on anonymous store to be a no-op")
	}

	store.Login(testUser(domain.RoleTourist), nil)
	updated := testUser(domain.RoleTourist)
	updated.FirstName = "Dawa"
	store.ReplaceUser(updated)

	if snap := store.Snapshot(); snap.User.FirstName != "Dawa" {
		t.Fatalf("expected user replaced, got %+v", snap.User)
	}
}

func TestSessionStore_LoginIfGeneration(t *testing.T) {
	store := NewSessionStore()
	gen := store.Generation()

	if !store.loginIfGeneration(gen, testUser(domain.RoleTourist), nil) {
		t.Fatalf("expected login to apply on untouched store")
	}

	// A later attempt against the old generation must be dropped.
	if store.loginIfGeneration(gen, testUser(domain.RoleAdmin), nil) {
		t.Fatalf("expected stale login to be dropped")
	}
	if snap := store.Snapshot(); snap.User.Role != domain.RoleTourist {
		t.Fatalf("stale login overwrote the session: %+v", snap.User)
	}
}
