package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bananadb/internal/export"
	"bananadb/internal/service"
)

// ListingHandler handles listing parse, review and persistence endpoints.
type ListingHandler struct {
	listingService service.ListingService
	parseService   service.ParseService
	projectService service.ProjectService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listingService service.ListingService, parseService service.ParseService, projectService service.ProjectService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
		parseService:   parseService,
		projectService: projectService,
	}
}

// List handles GET /api/v1/listings
func (h *ListingHandler) List(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	projectID, ok := optionalProjectID(c)
	if !ok {
		return
	}

	listings, err := h.listingService.List(c.Request.Context(), claims, projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, listings)
}

// Parse handles POST /api/v1/listings/parse
// @Summary      Parse raw listing text
// @Description  Sends pasted listing text to the configured AI provider and returns extracted listings for review
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        request body ParseRequest true "Raw scraped text"
// @Success      200 {object} APIResponse{data=[]domain.ParsedCarListing}
// @Failure      400 {object} APIResponse
// @Failure      422 {object} APIResponse
// @Failure      502 {object} APIResponse
// @Security     BearerAuth
// @Router       /listings/parse [post]
func (h *ListingHandler) Parse(c *gin.Context) {
	var input struct {
		RawText string `json:"raw_text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	listings, err := h.parseService.Parse(c.Request.Context(), input.RawText)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, listings)
}

// Submit handles POST /api/v1/listings/submit
// @Summary      Submit reviewed listings
// @Description  Persists the reviewed batch one listing at a time; duplicates and per-item failures are reported without aborting the batch
// @Tags         listings
// @Accept       json
// @Produce      json
// @Param        request body service.SubmitInput true "Listings, source tag, and optional project"
// @Success      200 {object} APIResponse{data=service.SubmitResult}
// @Failure      400 {object} APIResponse
// @Failure      422 {object} APIResponse
// @Security     BearerAuth
// @Router       /listings/submit [post]
func (h *ListingHandler) Submit(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	var input service.SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.listingService.Submit(c.Request.Context(), claims, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Update handles PUT /api/v1/listings/:id
func (h *ListingHandler) Update(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid listing id")
		return
	}

	var input service.UpdateListingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	record, err := h.listingService.Update(c.Request.Context(), claims, listingID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, record)
}

// Delete handles DELETE /api/v1/listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid listing id")
		return
	}

	if err := h.listingService.Delete(c.Request.Context(), claims, listingID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "listing deleted"})
}

// Export handles GET /api/v1/listings/export?format=csv|xlsx&project_id=...
// @Summary      Export listings
// @Description  Downloads the review table as CSV (UTF-8 BOM) or an XLSX workbook, optionally scoped to one project
// @Tags         listings
// @Produce      text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format query string false "csv or xlsx" default(csv)
// @Param        project_id query string false "Project UUID"
// @Success      200 {file} file
// @Failure      400 {object} APIResponse
// @Security     BearerAuth
// @Router       /listings/export [get]
func (h *ListingHandler) Export(c *gin.Context) {
	claims, ok := extractClaims(c)
	if !ok {
		return
	}

	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "format must be csv or xlsx")
		return
	}

	projectID, ok := optionalProjectID(c)
	if !ok {
		return
	}

	listings, err := h.listingService.List(c.Request.Context(), claims, projectID)
	if err != nil {
		HandleError(c, err)
		return
	}

	baseName := "listings"
	if projectID != nil {
		project, err := h.projectService.GetByID(c.Request.Context(), claims, *projectID)
		if err != nil {
			HandleError(c, err)
			return
		}
		baseName = service.DisplayName(project)
	}

	if format == "xlsx" {
		filename := export.BuildFilename(baseName, "xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		if err := export.WriteXLSX(c.Writer, listings); err != nil {
			HandleError(c, err)
		}
		return
	}

	filename := export.BuildFilename(baseName, "csv")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Writer.WriteHeader(http.StatusOK)
	if _, err := c.Writer.Write(export.BOM); err != nil {
		return
	}

	w := export.NewCSVWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteListings(listings); err != nil {
		return
	}
	w.Flush()
}

// optionalProjectID parses the project_id query parameter if present.
// A malformed value writes a 400 and returns ok=false.
func optionalProjectID(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("project_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid project_id")
		return nil, false
	}
	return &id, true
}
