package types

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: manifest not found: /opt/manga/config/models.json
	Error string `json:"error" example:"manifest not found: /opt/manga/config/models.json"`
	// HTTP status code.
	// example: 503
	Code int `json:"code" example:"503"`
}

// ModelsResponse is returned by GET /models.
type ModelsResponse struct {
	Report
	// Number of assets that passed validation.
	// example: 3
	PresentCount int `json:"present_count" example:"3"`
	// Number of assets that failed validation.
	// example: 1
	MissingCount int `json:"missing_count" example:"1"`
}

// NewModelsResponse wraps r with its summary counts.
func NewModelsResponse(r *Report) ModelsResponse {
	present, missing := r.Summary()
	return ModelsResponse{Report: *r, PresentCount: present, MissingCount: missing}
}

// Estimate is the shot/keyframe estimate for a synopsis.
type Estimate struct {
	// example: 250
	Words int `json:"words" example:"250"`
	// example: 3
	Shots int `json:"shots" example:"3"`
	// example: 9
	Keyframes int `json:"keyframes" example:"9"`
	// example: 90
	DurationSeconds int `json:"duration_seconds" example:"90"`
}
