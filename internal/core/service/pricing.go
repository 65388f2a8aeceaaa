package service

import (
	"context"
	"math"

	"github.com/trailconnect/web-gateway/internal/api/metrics"
	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// PricingService implements ports.Estimator. The estimate is display-only
// arithmetic over fetched guide data and the static optional-service
// catalog; the authoritative price is settled server-side when a booking
// is actually placed.
type PricingService struct {
	guides ports.GuideAPI
}

func NewPricingService(guides ports.GuideAPI) *PricingService {
	return &PricingService{guides: guides}
}

func (s *PricingService) Estimate(ctx context.Context, credential string, in ports.EstimateInput) (*domain.PriceBreakdown, error) {
	days := domain.TripDays(in.StartDate, in.EndDate)
	if days == 0 {
		return nil, domain.ErrInvalidDateRange
	}

	guide, err := s.guides.Get(ctx, credential, in.GuideID)
	if err != nil {
		return nil, err
	}
	if guide.Profile.DailyRate <= 0 {
		return nil, domain.ErrInvalidDailyRate
	}

	breakdown := &domain.PriceBreakdown{
		Days:          days,
		DailyRate:     guide.Profile.DailyRate,
		GuideSubtotal: roundCents(guide.Profile.DailyRate * float64(days)),
		Currency:      domain.Currency,
	}

	servicesTotal := 0.0
	for _, code := range in.Services {
		svc, ok := domain.OptionalServiceByCode(code)
		if !ok {
			return nil, domain.ErrUnknownService
		}
		amount := svc.Rate
		if svc.PerDay {
			amount = svc.Rate * float64(days)
		}
		amount = roundCents(amount)
		servicesTotal += amount
		breakdown.Services = append(breakdown.Services, domain.PriceLine{
			Code:   svc.Code,
			Label:  svc.Label,
			Amount: amount,
		})
	}

	breakdown.PlatformFee = roundCents((breakdown.GuideSubtotal + servicesTotal) * domain.PlatformFeeRate)
	breakdown.Total = roundCents(breakdown.GuideSubtotal + servicesTotal + breakdown.PlatformFee)

	metrics.EstimatesComputedTotal.Inc()
	return breakdown, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
