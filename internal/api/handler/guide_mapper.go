package handler

import (
	"time"

	"github.com/trailconnect/web-gateway/internal/core/domain"
)

const dateLayout = "2006-01-02"

func toUserResponse(policy *ImagePolicy, u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    policy.Sanitize(u.Avatar),
		Bio:       u.Bio,
		Languages: u.Languages,
	}
}

func toAvailabilityResponse(entries []domain.AvailabilityEntry) []availabilityEntryResponse {
	out := make([]availabilityEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, availabilityEntryResponse{
			StartDate: e.StartDate.Format(dateLayout),
			EndDate:   e.EndDate.Format(dateLayout),
			Status:    string(e.Status),
		})
	}
	return out
}

func toGuideProfileResponse(p *domain.GuideProfile) *guideProfileResponse {
	if p == nil {
		return nil
	}
	regions := make([]regionResponse, 0, len(p.ExpertiseRegions))
	for _, r := range p.ExpertiseRegions {
		regions = append(regions, regionResponse(r))
	}
	return &guideProfileResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		DailyRate:         p.DailyRate,
		YearsOfExperience: p.YearsOfExperience,
		ExpertiseRegions:  regions,
		Verified:          p.Verified,
		AvgRating:         p.AvgRating,
		ReviewCount:       p.ReviewCount,
		Availability:      toAvailabilityResponse(p.Availability),
	}
}

func toGuideResponse(policy *ImagePolicy, g domain.Guide) guideResponse {
	return guideResponse{
		User:    *toUserResponse(policy, &g.User),
		Profile: *toGuideProfileResponse(&g.Profile),
	}
}

// toSessionResponse resolves the dashboard view for authenticated
// sessions; anonymous sessions carry no view at all.
func toSessionResponse(policy *ImagePolicy, s domain.Session) sessionResponse {
	resp := sessionResponse{IsAuthenticated: s.IsAuthenticated}
	if s.IsAuthenticated {
		resp.View = string(s.Route())
	}
	resp.User = toUserResponse(policy, s.User)
	resp.GuideProfile = toGuideProfileResponse(s.GuideProfile)
	return resp
}

// parseAvailability maps calendar windows from the wire format. Dates
// were already shape-checked by the validator, so a parse failure here
// would be a programming error; it still surfaces as a zero time rather
// than a panic.
func parseAvailability(entries []availabilityEntryRequest) []domain.AvailabilityEntry {
	out := make([]domain.AvailabilityEntry, 0, len(entries))
	for _, e := range entries {
		start, _ := time.Parse(dateLayout, e.StartDate)
		end, _ := time.Parse(dateLayout, e.EndDate)
		out = append(out, domain.AvailabilityEntry{
			StartDate: start,
			EndDate:   end,
			Status:    domain.AvailabilityStatus(e.Status),
		})
	}
	return out
}
