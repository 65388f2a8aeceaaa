package domain

// TrekTemplate is a reusable trek itinerary managed by administrators.
type TrekTemplate struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RegionID     string `json:"region_id"`
	DurationDays int    `json:"duration_days"`
	Difficulty   string `json:"difficulty"`
	MaxAltitudeM int    `json:"max_altitude_m,omitempty"`
	Description  string `json:"description,omitempty"`
}
