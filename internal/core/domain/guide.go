package domain

import "time"

// AvailabilityStatus is the state of a single calendar window.
type AvailabilityStatus string

const (
	AvailabilityAvailable   AvailabilityStatus = "available"
	AvailabilityBooked      AvailabilityStatus = "booked"
	AvailabilityUnavailable AvailabilityStatus = "unavailable"
)

// AvailabilityEntry is one window in a guide's calendar. The remote API
// treats the availability array as a whole: updates replace it, never merge.
type AvailabilityEntry struct {
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	Status    AvailabilityStatus `json:"status"`
}

// Region is a trekking region a guide can claim expertise in.
type Region struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GuideProfile carries the guide-specific data attached to a user with the
// guide role. Verification, ratings, and review counts are computed by the
// remote API; the gateway only renders them.
type GuideProfile struct {
	ID                string              `json:"id"`
	UserID            string              `json:"user_id"`
	DailyRate         float64             `json:"daily_rate"`
	YearsOfExperience int                 `json:"years_of_experience"`
	ExpertiseRegions  []Region            `json:"expertise_regions"`
	Verified          bool                `json:"verified"`
	AvgRating         float64             `json:"avg_rating"`
	ReviewCount       int                 `json:"review_count"`
	Availability      []AvailabilityEntry `json:"availability"`
}

// Clone returns a deep copy of the profile.
func (p *GuideProfile) Clone() *GuideProfile {
	if p == nil {
		return nil
	}
	clone := *p
	if p.ExpertiseRegions != nil {
		clone.ExpertiseRegions = append([]Region(nil), p.ExpertiseRegions...)
	}
	if p.Availability != nil {
		clone.Availability = append([]AvailabilityEntry(nil), p.Availability...)
	}
	return &clone
}

// BookedDays sums the length of every booked window, counting both
// endpoints. Used for the guide dashboard's earnings projection.
func (p *GuideProfile) BookedDays() int {
	if p == nil {
		return 0
	}
	days := 0
	for _, e := range p.Availability {
		if e.Status != AvailabilityBooked {
			continue
		}
		if d := TripDays(e.StartDate, e.EndDate); d > 0 {
			days += d
		}
	}
	return days
}

// Guide is the directory view of a guide: public user fields plus profile.
type Guide struct {
	User    User         `json:"user"`
	Profile GuideProfile `json:"profile"`
}
