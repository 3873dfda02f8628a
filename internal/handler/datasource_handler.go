package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bananadb/internal/service"
)

// DataSourceHandler handles data-source reference table endpoints.
type DataSourceHandler struct {
	dataSourceService service.DataSourceService
}

// NewDataSourceHandler creates a new DataSourceHandler.
func NewDataSourceHandler(dataSourceService service.DataSourceService) *DataSourceHandler {
	return &DataSourceHandler{dataSourceService: dataSourceService}
}

// List handles GET /api/v1/datasources
func (h *DataSourceHandler) List(c *gin.Context) {
	sources, err := h.dataSourceService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, sources)
}

// Create handles POST /api/v1/admin/datasources
func (h *DataSourceHandler) Create(c *gin.Context) {
	var input service.CreateDataSourceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	source, err := h.dataSourceService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, source)
}

// Delete handles DELETE /api/v1/admin/datasources/:id
func (h *DataSourceHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid data source id")
		return
	}

	if err := h.dataSourceService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "data source deleted"})
}
