package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"bananadb/internal/ai"
	"bananadb/internal/domain"
	"bananadb/internal/middleware"
	"bananadb/internal/service"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain and parse-pipeline errors to HTTP
// status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var httpErr *ai.HTTPError
	var allFailed *domain.AllSubmissionsFailedError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already registered"
	case errors.Is(err, domain.ErrInvalidYearRange):
		return http.StatusBadRequest, "INVALID_YEAR_RANGE", "year range start must not exceed end"
	case errors.Is(err, domain.ErrInvalidEngineRange):
		return http.StatusBadRequest, "INVALID_ENGINE_RANGE", "engine capacity range start must not exceed end"
	case errors.Is(err, domain.ErrUnknownProvider):
		return http.StatusBadRequest, "UNKNOWN_PROVIDER", "unknown AI provider"
	case errors.Is(err, domain.ErrDuplicateListing):
		return http.StatusConflict, "DUPLICATE_LISTING", "listing already exists"
	case errors.As(err, &allFailed):
		return http.StatusUnprocessableEntity, "ALL_SUBMISSIONS_FAILED", allFailed.Error()
	case errors.Is(err, ai.ErrConfigFetch):
		return http.StatusInternalServerError, "CONFIG_FETCH_FAILED", "failed to load AI provider configuration"
	case errors.Is(err, ai.ErrMissingCredential):
		return http.StatusBadRequest, "MISSING_CREDENTIAL", "AI provider API key is not configured"
	case errors.As(err, &httpErr):
		return http.StatusBadGateway, "PROVIDER_ERROR", httpErr.Error()
	case errors.Is(err, ai.ErrEmptyResponse):
		return http.StatusBadGateway, "EMPTY_RESPONSE", "AI provider returned an empty response"
	case errors.Is(err, ai.ErrMalformedResponse):
		return http.StatusUnprocessableEntity, "MALFORMED_RESPONSE", "failed to parse AI response"
	case errors.Is(err, ai.ErrNoValidListings):
		return http.StatusUnprocessableEntity, "NO_VALID_LISTINGS", "no valid listings found in response"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// extractClaims pulls the authenticated user's claims from the request
// context. Returns false if auth context is missing (error response
// already written).
func extractClaims(c *gin.Context) (*service.Claims, bool) {
	claims, err := middleware.GetClaims(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return nil, false
	}
	return claims, true
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
