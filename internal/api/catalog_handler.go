package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/timesheet-api/internal/calendar"
	"github.com/timesheet-api/internal/service"
)

// CatalogHandler handles roster, project catalog and week list reads
type CatalogHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(services *service.Services, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		services: services,
		log:      log.With().Str("handler", "catalog").Logger(),
	}
}

// ListEmployees handles GET /v1/employees
func (h *CatalogHandler) ListEmployees(c *gin.Context) {
	employees, err := h.services.Employee.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"employees": employees})
}

// ListWeeks handles GET /v1/weeks, returning the selectable weeks most
// recent first
func (h *CatalogHandler) ListWeeks(c *gin.Context) {
	weeks := calendar.SelectableWeeks(time.Now())
	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

// GetProjects handles GET /v1/projects, returning the catalog both flat
// and grouped by type
func (h *CatalogHandler) GetProjects(c *gin.Context) {
	catalog, err := h.services.Catalog.Projects(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": catalog.All,
		"grouped":  catalog.Grouped,
	})
}
