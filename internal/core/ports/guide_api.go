package ports

import (
	"context"
	"fmt"

	"github.com/trailconnect/web-gateway/internal/core/domain"
)

// ListGuidesFilter carries all query parameters for guide discovery.
type ListGuidesFilter struct {
	Region    string  // optional: region slug
	Search    string  // optional: partial match on name
	Verified  *bool   // optional: filter by verification state (nil = both)
	MinRating float64 // optional: avg_rating >= MinRating
	Page      int     // 1-based
	Limit     int     // rows per page (capped at 50 by the service)
}

// CacheKey derives a deterministic directory-cache key from the filter.
// Every field participates so distinct queries never share an entry.
func (f ListGuidesFilter) CacheKey() string {
	verified := "any"
	if f.Verified != nil {
		verified = fmt.Sprintf("%t", *f.Verified)
	}
	return fmt.Sprintf("guides:%s:%s:%s:%.1f:%d:%d", f.Region, f.Search, verified, f.MinRating, f.Page, f.Limit)
}

// GuideList is one page of directory results plus pagination data.
type GuideList struct {
	Items      []domain.Guide
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// GuideAPI wraps the remote API's guide endpoints.
type GuideAPI interface {
	List(ctx context.Context, credential string, filter ListGuidesFilter) (*GuideList, error)
	Get(ctx context.Context, credential, id string) (*domain.Guide, error)
	// ReplaceAvailability submits the full availability array; the remote
	// API replaces the stored calendar wholesale (no merge).
	ReplaceAvailability(ctx context.Context, credential, id string, entries []domain.AvailabilityEntry) (*domain.GuideProfile, error)
	Verify(ctx context.Context, credential, id string) error
	Reject(ctx context.Context, credential, id, reason string) error
}
