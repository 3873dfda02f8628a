package handler

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// ParseRequest represents the parse request body.
type ParseRequest struct {
	RawText string `json:"raw_text" binding:"required" example:"BMW 320d 2019, 85000 km, 21500 EUR, Munich..."`
}

// SetActiveProviderRequest represents the active-provider change request body.
type SetActiveProviderRequest struct {
	Provider string `json:"provider" binding:"required" example:"gemini"`
}
