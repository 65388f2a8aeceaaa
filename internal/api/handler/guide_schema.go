package handler

type userResponse struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email,omitempty"`
	Role      string   `json:"role"`
	Avatar    string   `json:"avatar,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

type regionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Calendar windows travel as plain dates; the remote API's timestamps
// are normalised to midnight UTC on the way in and out.
type availabilityEntryRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
	Status    string `json:"status"     validate:"required,oneof=available booked unavailable"`
}

type availabilityEntryResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

type updateAvailabilityRequest struct {
	Availability []availabilityEntryRequest `json:"availability" validate:"dive"`
}

type rejectGuideRequest struct {
	Reason string `json:"reason"`
}

type guideProfileResponse struct {
	ID                string                      `json:"id"`
	UserID            string                      `json:"user_id"`
	DailyRate         float64                     `json:"daily_rate"`
	YearsOfExperience int                         `json:"years_of_experience"`
	ExpertiseRegions  []regionResponse            `json:"expertise_regions"`
	Verified          bool                        `json:"verified"`
	AvgRating         float64                     `json:"avg_rating"`
	ReviewCount       int                         `json:"review_count"`
	Availability      []availabilityEntryResponse `json:"availability"`
}

type guideResponse struct {
	User    userResponse         `json:"user"`
	Profile guideProfileResponse `json:"profile"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listGuidesResponse struct {
	Data       []guideResponse    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
