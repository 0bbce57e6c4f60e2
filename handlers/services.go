package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"calmfix/models"
	"calmfix/services/catalog"
	"calmfix/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves services, professionals and location presets.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
	Now        func() time.Time
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc, Logger: logger, Now: time.Now}
}

// GetServices handles GET /api/services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.CatalogSvc.ListServices()})
}

// QuoteService handles POST /api/services.
func (h *CatalogHandler) QuoteService(c *gin.Context) {
	var req models.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	quote, err := h.CatalogSvc.QuoteService(req.ServiceID, req.Urgency, h.Now())
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found", "")
			return
		}
		h.Logger.Error("QuoteService: failed to quote", zap.String("serviceID", req.ServiceID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to quote service", err.Error())
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GetProfessionals handles GET /api/professionals?service=&location=.
// location is accepted for client compatibility; every professional serves every location.
func (h *CatalogHandler) GetProfessionals(c *gin.Context) {
	service := c.Query("service")
	c.JSON(http.StatusOK, gin.H{"professionals": h.CatalogSvc.ListProfessionals(service)})
}

// GetProfessional handles GET /api/professionals/:id.
func (h *CatalogHandler) GetProfessional(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid professional id", err.Error())
		return
	}
	pro, err := h.CatalogSvc.GetProfessional(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProfessionalNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Professional not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch professional", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"professional": pro})
}

// GetLocations handles GET /api/locations.
func (h *CatalogHandler) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"locations": h.CatalogSvc.ListLocations()})
}
