package service

import (
	"github.com/jengzang/olympics-access-go/internal/catalog"
	"github.com/jengzang/olympics-access-go/internal/models"
)

// VenueService handles business logic for the venue catalog
type VenueService struct {
	catalog *catalog.Catalog
}

// NewVenueService creates a new venue service
func NewVenueService(c *catalog.Catalog) *VenueService {
	return &VenueService{catalog: c}
}

// List returns all venues
func (s *VenueService) List() []models.Venue {
	return s.catalog.Venues()
}

// Near returns venues within radiusMeters of a point
func (s *VenueService) Near(lat, lon, radiusMeters float64) []models.Venue {
	return s.catalog.Near(lat, lon, radiusMeters)
}
