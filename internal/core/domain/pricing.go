package domain

import "time"

// Currency used across the marketplace. Guide daily rates are stored in USD
// by the remote API, so estimates are computed in USD too.
const Currency = "USD"

// PlatformFeeRate is the marketplace commission applied on top of the
// guide subtotal and optional services.
const PlatformFeeRate = 0.10

// OptionalService is an add-on a tourist can attach to a booking intent.
// The catalog is static display data; the authoritative charge is settled
// by the payment processor server-side.
type OptionalService struct {
	Code   string  `json:"code"`
	Label  string  `json:"label"`
	Rate   float64 `json:"rate"`
	PerDay bool    `json:"per_day"`
}

// OptionalServices is the catalog offered on the booking-intent form.
var OptionalServices = []OptionalService{
	{Code: "porter", Label: "Porter", Rate: 25, PerDay: true},
	{Code: "cook", Label: "Cook & meals", Rate: 20, PerDay: true},
	{Code: "gear", Label: "Gear rental", Rate: 15, PerDay: true},
	{Code: "permits", Label: "Permit assistance", Rate: 40, PerDay: false},
	{Code: "pickup", Label: "Airport pickup", Rate: 30, PerDay: false},
}

// OptionalServiceByCode looks up a catalog entry; ok is false for codes
// not in the catalog.
func OptionalServiceByCode(code string) (OptionalService, bool) {
	for _, s := range OptionalServices {
		if s.Code == code {
			return s, true
		}
	}
	return OptionalService{}, false
}

// PriceLine is a single row of the pricing breakdown.
type PriceLine struct {
	Code   string  `json:"code"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// PriceBreakdown is the full client-side estimate for a booking intent.
type PriceBreakdown struct {
	Days          int         `json:"days"`
	DailyRate     float64     `json:"daily_rate"`
	GuideSubtotal float64     `json:"guide_subtotal"`
	Services      []PriceLine `json:"services"`
	PlatformFee   float64     `json:"platform_fee"`
	Total         float64     `json:"total"`
	Currency      string      `json:"currency"`
}

// TripDays counts trek days including both the start and end date.
// Same-day trips count as one day. Returns 0 when end precedes start.
func TripDays(start, end time.Time) int {
	s := start.Truncate(24 * time.Hour)
	e := end.Truncate(24 * time.Hour)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
