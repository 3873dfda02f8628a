package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bananadb/internal/domain"
	"bananadb/internal/service"
)

// SettingsHandler handles admin AI provider configuration endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetAll handles GET /api/v1/admin/settings
// @Summary      All provider settings
// @Description  Returns the active provider and each provider's stored configuration; API keys are reported as set/unset only
// @Tags         settings
// @Produce      json
// @Success      200 {object} APIResponse{data=service.AllSettings}
// @Failure      401 {object} APIResponse
// @Failure      403 {object} APIResponse
// @Security     BearerAuth
// @Router       /admin/settings [get]
func (h *SettingsHandler) GetAll(c *gin.Context) {
	settings, err := h.settingsService.GetAll(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, settings)
}

// UpdateProvider handles PUT /api/v1/admin/settings/providers/:provider
func (h *SettingsHandler) UpdateProvider(c *gin.Context) {
	provider := domain.AIProvider(c.Param("provider"))

	var input service.ProviderSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.settingsService.UpdateProvider(c.Request.Context(), provider, input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "provider settings updated"})
}

// SetActiveProvider handles PUT /api/v1/admin/settings/provider
func (h *SettingsHandler) SetActiveProvider(c *gin.Context) {
	var input struct {
		Provider domain.AIProvider `json:"provider" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.settingsService.SetActiveProvider(c.Request.Context(), input.Provider); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "active provider updated"})
}

// Status handles GET /api/v1/admin/settings/status
// @Summary      Provider configuration status
// @Description  Checks each provider's key and prompt presence with concurrent lookups
// @Tags         settings
// @Produce      json
// @Success      200 {object} APIResponse{data=[]service.ProviderStatus}
// @Failure      401 {object} APIResponse
// @Failure      403 {object} APIResponse
// @Security     BearerAuth
// @Router       /admin/settings/status [get]
func (h *SettingsHandler) Status(c *gin.Context) {
	statuses, err := h.settingsService.Status(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, statuses)
}
