package ports

import (
	"context"

	"github.com/trailconnect/web-gateway/internal/core/domain"
)

// DirectoryCache holds short-lived copies of discovery data so hot listing
// pages do not hit the remote API on every render. Implementations degrade
// to a miss on any storage error; callers never fail on cache trouble.
type DirectoryCache interface {
	GetGuideList(ctx context.Context, key string) (*GuideList, bool)
	SetGuideList(ctx context.Context, key string, list *GuideList) error

	GetRegions(ctx context.Context) ([]domain.Region, bool)
	SetRegions(ctx context.Context, regions []domain.Region) error
}
