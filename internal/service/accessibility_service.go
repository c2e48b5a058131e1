package service

import (
	"context"
	"log"

	"github.com/jengzang/olympics-access-go/internal/catalog"
	"github.com/jengzang/olympics-access-go/internal/models"
	"github.com/jengzang/olympics-access-go/internal/viz"
)

// Fetcher abstracts the remote accessibility compute service
type Fetcher interface {
	Fetch(ctx context.Context, codes []string, travelTime int, travelMode string, resolution int) ([]models.AccessibilityRow, error)
}

// QueryRecorder persists successful queries for the history API
type QueryRecorder interface {
	Record(codes []string, travelTime int, travelMode string, resolution, rowCount int, maxCount float64) (*models.QueryLogEntry, error)
}

// AccessibilityService drives one dashboard update cycle: resolve the
// selected venue names, fetch accessibility rows from the remote service and
// build the render layers. Stateless across invocations.
type AccessibilityService struct {
	catalog  *catalog.Catalog
	fetcher  Fetcher
	recorder QueryRecorder
}

// NewAccessibilityService creates a new accessibility service. recorder may
// be nil when history is disabled.
func NewAccessibilityService(c *catalog.Catalog, fetcher Fetcher, recorder QueryRecorder) *AccessibilityService {
	return &AccessibilityService{catalog: c, fetcher: fetcher, recorder: recorder}
}

// Run executes one query cycle. On any failure the caller's previously
// rendered state is left untouched; the error carries the user-facing cause.
func (s *AccessibilityService) Run(ctx context.Context, params models.QueryParams) (*models.RenderResult, error) {
	if len(params.Venues) == 0 {
		return nil, viz.ErrNoSelection
	}

	codes := make([]string, 0, len(params.Venues))
	for _, name := range params.Venues {
		code, err := s.catalog.LookupCode(name)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}

	venues, err := s.catalog.VenuesByName(params.Venues)
	if err != nil {
		return nil, err
	}

	rows, err := s.fetcher.Fetch(ctx, codes, params.TravelTime, params.TravelMode, params.Resolution)
	if err != nil {
		return nil, err
	}

	result, err := viz.Build(rows, venues)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		// History is best-effort; a failed insert must not fail the render
		if _, err := s.recorder.Record(codes, params.TravelTime, params.TravelMode, params.Resolution, len(rows), result.HexLayer.MaxCount); err != nil {
			log.Printf("Failed to record query history: %v", err)
		}
	}

	return &result, nil
}
