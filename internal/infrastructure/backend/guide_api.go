package backend

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// GuideAPI implements ports.GuideAPI against /guides/*.
type GuideAPI struct {
	client *Client
}

func NewGuideAPI(client *Client) *GuideAPI {
	return &GuideAPI{client: client}
}

type guideListEnvelope struct {
	Data       []domain.Guide `json:"data"`
	Pagination struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int   `json:"total_pages"`
	} `json:"pagination"`
}

func (g *GuideAPI) List(ctx context.Context, credential string, filter ports.ListGuidesFilter) (*ports.GuideList, error) {
	q := url.Values{}
	if filter.Region != "" {
		q.Set("region", filter.Region)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Verified != nil {
		q.Set("verified", strconv.FormatBool(*filter.Verified))
	}
	if filter.MinRating > 0 {
		q.Set("min_rating", strconv.FormatFloat(filter.MinRating, 'f', 1, 64))
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}

	path := "/guides"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var envelope guideListEnvelope
	if err := g.client.get(ctx, "guides.list", path, credential, &envelope); err != nil {
		return nil, err
	}
	return &ports.GuideList{
		Items:      envelope.Data,
		Total:      envelope.Pagination.Total,
		Page:       envelope.Pagination.Page,
		Limit:      envelope.Pagination.Limit,
		TotalPages: envelope.Pagination.TotalPages,
	}, nil
}

func (g *GuideAPI) Get(ctx context.Context, credential, id string) (*domain.Guide, error) {
	var guide domain.Guide
	if err := g.client.get(ctx, "guides.get", "/guides/"+url.PathEscape(id), credential, &guide); err != nil {
		return nil, mapNotFound(err, domain.ErrGuideNotFound)
	}
	return &guide, nil
}

func (g *GuideAPI) ReplaceAvailability(ctx context.Context, credential, id string, entries []domain.AvailabilityEntry) (*domain.GuideProfile, error) {
	payload := struct {
		Availability []domain.AvailabilityEntry `json:"availability"`
	}{Availability: entries}

	var profile domain.GuideProfile
	path := fmt.Sprintf("/guides/%s/availability", url.PathEscape(id))
	if err := g.client.patch(ctx, "guides.availability", path, credential, payload, &profile); err != nil {
		return nil, mapNotFound(err, domain.ErrGuideNotFound)
	}
	return &profile, nil
}

func (g *GuideAPI) Verify(ctx context.Context, credential, id string) error {
	path := fmt.Sprintf("/guides/%s/verify", url.PathEscape(id))
	if err := g.client.post(ctx, "guides.verify", path, credential, nil, nil); err != nil {
		return mapNotFound(err, domain.ErrGuideNotFound)
	}
	return nil
}

func (g *GuideAPI) Reject(ctx context.Context, credential, id, reason string) error {
	payload := struct {
		Reason string `json:"reason,omitempty"`
	}{Reason: reason}

	path := fmt.Sprintf("/guides/%s/reject", url.PathEscape(id))
	if err := g.client.post(ctx, "guides.reject", path, credential, payload, nil); err != nil {
		return mapNotFound(err, domain.ErrGuideNotFound)
	}
	return nil
}
