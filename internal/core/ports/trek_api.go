package ports

import (
	"context"

	"github.com/trailconnect/web-gateway/internal/core/domain"
)

// TrekTemplateInput carries the writable fields of a trek template.
type TrekTemplateInput struct {
	Name         string
	RegionID     string
	DurationDays int
	Difficulty   string
	MaxAltitudeM int
	Description  string
}

// TrekAPI wraps the remote API's trek template and region endpoints.
type TrekAPI interface {
	ListTemplates(ctx context.Context, credential string) ([]domain.TrekTemplate, error)
	CreateTemplate(ctx context.Context, credential string, in TrekTemplateInput) (*domain.TrekTemplate, error)
	UpdateTemplate(ctx context.Context, credential, id string, in TrekTemplateInput) (*domain.TrekTemplate, error)
	DeleteTemplate(ctx context.Context, credential, id string) error

	ListRegions(ctx context.Context, credential string) ([]domain.Region, error)
	CreateRegion(ctx context.Context, credential, name string) (*domain.Region, error)
	DeleteRegion(ctx context.Context, credential, id string) error
}
