package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

type stubEstimator struct {
	estimateFn func(ctx context.Context, credential string, in ports.EstimateInput) (*domain.PriceBreakdown, error)
}

func (s *stubEstimator) Estimate(ctx context.Context, credential string, in ports.EstimateInput) (*domain.PriceBreakdown, error) {
	return s.estimateFn(ctx, credential, in)
}

func TestBookingHandler_Estimate(t *testing.T) {
	stub := &stubEstimator{
		estimateFn: func(_ context.Context, _ string, in ports.EstimateInput) (*domain.PriceBreakdown, error) {
			if in.GuideID != "gp1" || len(in.Services) != 2 {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.StartDate.Format(dateLayout) != "2026-03-10" {
				t.Fatalf("start date not parsed: %v", in.StartDate)
			}
			return &domain.PriceBreakdown{
				Days: 5, DailyRate: 100, GuideSubtotal: 500,
				Services: []domain.PriceLine{
					{Code: "porter", Label: "Porter", Amount: 125},
					{Code: "permits", Label: "Permit assistance", Amount: 40},
				},
				PlatformFee: 66.5, Total: 731.5, Currency: "USD",
			}, nil
		},
	}
	h := NewBookingHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/bookings/estimate",
		`{"guide_id":"gp1","start_date":"2026-03-10","end_date":"2026-03-14","services":["porter","permits"]}`)

	if err := h.Estimate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp estimateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 731.5 || resp.Days != 5 || len(resp.Services) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestBookingHandler_Estimate_RejectsBadPayloads(t *testing.T) {
	h := NewBookingHandler(&stubEstimator{
		estimateFn: func(context.Context, string, ports.EstimateInput) (*domain.PriceBreakdown, error) {
			t.Fatalf("estimator should not be called")
			return nil, nil
		},
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed date", `{"guide_id":"gp1","start_date":"next tuesday","end_date":"2026-03-14"}`, http.StatusUnprocessableEntity},
		{"unknown service code", `{"guide_id":"gp1","start_date":"2026-03-10","end_date":"2026-03-14","services":["yeti"]}`, http.StatusUnprocessableEntity},
		{"missing guide", `{"start_date":"2026-03-10","end_date":"2026-03-14"}`, http.StatusUnprocessableEntity},
		{"not json", `not-json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newJSONContext(t, http.MethodPost, "/bookings/estimate", tt.body)
			err := h.Estimate(c)
			code := rec.Code
			if err != nil {
				c.Echo().HTTPErrorHandler(err, c)
				code = rec.Code
			}
			if code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, code)
			}
		})
	}
}

func TestBookingHandler_Services(t *testing.T) {
	h := NewBookingHandler(&stubEstimator{})

	c, rec := newJSONContext(t, http.MethodGet, "/bookings/services", "")
	if err := h.Services(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp serviceCatalogResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != len(domain.OptionalServices) {
		t.Fatalf("expected full catalog, got %d entries", len(resp.Data))
	}
}
