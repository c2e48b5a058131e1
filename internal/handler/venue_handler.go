package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jengzang/olympics-access-go/internal/service"
	"github.com/jengzang/olympics-access-go/pkg/response"
)

// Default search radius for /venues/near, in meters
const defaultNearRadius = 5000.0

// VenueHandler handles HTTP requests for the venue catalog
type VenueHandler struct {
	service *service.VenueService
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(service *service.VenueService) *VenueHandler {
	return &VenueHandler{service: service}
}

// List handles GET /api/v1/venues
func (h *VenueHandler) List(c *gin.Context) {
	venues := h.service.List()
	response.Success(c, gin.H{
		"data":  venues,
		"count": len(venues),
	})
}

// Near handles GET /api/v1/venues/near
func (h *VenueHandler) Near(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid lat parameter", err)
		return
	}

	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid lon parameter", err)
		return
	}

	radius := defaultNearRadius
	if s := c.Query("radius_m"); s != "" {
		radius, err = strconv.ParseFloat(s, 64)
		if err != nil || radius <= 0 {
			response.Error(c, http.StatusBadRequest, "Invalid radius_m parameter", err)
			return
		}
	}

	venues := h.service.Near(lat, lon, radius)
	response.Success(c, gin.H{
		"data":  venues,
		"count": len(venues),
	})
}
