package backend

import (
	"context"
	"net/url"

	"github.com/trailconnect/web-gateway/internal/core/domain"
	"github.com/trailconnect/web-gateway/internal/core/ports"
)

// TrekAPI implements ports.TrekAPI against /treks/*.
type TrekAPI struct {
	client *Client
}

func NewTrekAPI(client *Client) *TrekAPI {
	return &TrekAPI{client: client}
}

type templatePayload struct {
	Name         string `json:"name"`
	RegionID     string `json:"region_id"`
	DurationDays int    `json:"duration_days"`
	Difficulty   string `json:"difficulty"`
	MaxAltitudeM int    `json:"max_altitude_m,omitempty"`
	Description  string `json:"description,omitempty"`
}

func toTemplatePayload(in ports.TrekTemplateInput) templatePayload {
	return templatePayload{
		Name:         in.Name,
		RegionID:     in.RegionID,
		DurationDays: in.DurationDays,
		Difficulty:   in.Difficulty,
		MaxAltitudeM: in.MaxAltitudeM,
		Description:  in.Description,
	}
}

func (t *TrekAPI) ListTemplates(ctx context.Context, credential string) ([]domain.TrekTemplate, error) {
	var envelope struct {
		Data []domain.TrekTemplate `json:"data"`
	}
	if err := t.client.get(ctx, "treks.templates.list", "/treks/templates", credential, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (t *TrekAPI) CreateTemplate(ctx context.Context, credential string, in ports.TrekTemplateInput) (*domain.TrekTemplate, error) {
	var tpl domain.TrekTemplate
	if err := t.client.post(ctx, "treks.templates.create", "/treks/templates", credential, toTemplatePayload(in), &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (t *TrekAPI) UpdateTemplate(ctx context.Context, credential, id string, in ports.TrekTemplateInput) (*domain.TrekTemplate, error) {
	var tpl domain.TrekTemplate
	path := "/treks/templates/" + url.PathEscape(id)
	if err := t.client.put(ctx, "treks.templates.update", path, credential, toTemplatePayload(in), &tpl); err != nil {
		return nil, mapNotFound(err, domain.ErrTrekNotFound)
	}
	return &tpl, nil
}

func (t *TrekAPI) DeleteTemplate(ctx context.Context, credential, id string) error {
	path := "/treks/templates/" + url.PathEscape(id)
	if err := t.client.delete(ctx, "treks.templates.delete", path, credential); err != nil {
		return mapNotFound(err, domain.ErrTrekNotFound)
	}
	return nil
}

func (t *TrekAPI) ListRegions(ctx context.Context, credential string) ([]domain.Region, error) {
	var envelope struct {
		Data []domain.Region `json:"data"`
	}
	if err := t.client.get(ctx, "treks.regions.list", "/treks/regions", credential, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

func (t *TrekAPI) CreateRegion(ctx context.Context, credential, name string) (*domain.Region, error) {
	payload := struct {
		Name string `json:"name"`
	}{Name: name}

	var region domain.Region
	if err := t.client.post(ctx, "treks.regions.create", "/treks/regions", credential, payload, &region); err != nil {
		return nil, err
	}
	return &region, nil
}

func (t *TrekAPI) DeleteRegion(ctx context.Context, credential, id string) error {
	return t.client.delete(ctx, "treks.regions.delete", "/treks/regions/"+url.PathEscape(id), credential)
}
