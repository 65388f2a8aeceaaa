package handler

type trekTemplateRequest struct {
	Name         string `json:"name"          validate:"required"`
	RegionID     string `json:"region_id"     validate:"required"`
	DurationDays int    `json:"duration_days" validate:"required,gte=1"`
	Difficulty   string `json:"difficulty"    validate:"required,oneof=easy moderate challenging strenuous"`
	MaxAltitudeM int    `json:"max_altitude_m" validate:"gte=0"`
	Description  string `json:"description"`
}

type trekTemplateResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	RegionID     string `json:"region_id"`
	DurationDays int    `json:"duration_days"`
	Difficulty   string `json:"difficulty"`
	MaxAltitudeM int    `json:"max_altitude_m,omitempty"`
	Description  string `json:"description,omitempty"`
}

type createRegionRequest struct {
	Name string `json:"name" validate:"required,min=2"`
}

type listTemplatesResponse struct {
	Data []trekTemplateResponse `json:"data"`
}

type listRegionsResponse struct {
	Data []regionResponse `json:"data"`
}
