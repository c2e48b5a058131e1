package models

import "fmt"

// Travel modes understood by the remote isochrone service
const (
	ModeAuto       = "auto"
	ModePedestrian = "pedestrian"
	ModeBike       = "bike"
)

// Defaults applied when the client omits a parameter
const (
	DefaultTravelTime = 5
	DefaultResolution = 11
)

// QueryParams holds one accessibility query as selected in the dashboard
// sidebar. Venues carries display names; the service resolves them to codes.
type QueryParams struct {
	Venues     []string `form:"venues" json:"venues"`
	TravelTime int      `form:"travel_time" json:"travel_time"`
	TravelMode string   `form:"travel_mode" json:"travel_mode"`
	Resolution int      `form:"resolution" json:"resolution"`
}

// ApplyDefaults fills unset optional fields
func (p *QueryParams) ApplyDefaults() {
	if p.TravelTime == 0 {
		p.TravelTime = DefaultTravelTime
	}
	if p.TravelMode == "" {
		p.TravelMode = ModeAuto
	}
	if p.Resolution == 0 {
		p.Resolution = DefaultResolution
	}
}

// Validate checks parameter ranges. Venue selection is checked separately so
// the handler can report it as a user-facing validation message.
func (p *QueryParams) Validate() error {
	if p.TravelTime < 1 || p.TravelTime > 60 {
		return fmt.Errorf("travel_time must be between 1 and 60 minutes, got %d", p.TravelTime)
	}
	switch p.TravelMode {
	case ModeAuto, ModePedestrian, ModeBike:
	default:
		return fmt.Errorf("travel_mode must be one of auto, pedestrian, bike, got %q", p.TravelMode)
	}
	if p.Resolution < 1 {
		return fmt.Errorf("resolution must be positive, got %d", p.Resolution)
	}
	return nil
}

// AccessibilityRow is one hex cell returned by the remote service.
// StadiumName is optional and only used for the map tooltip.
type AccessibilityRow struct {
	CellID      string  `json:"cell_id"`
	Count       float64 `json:"cnt"`
	StadiumName string  `json:"stadium_name,omitempty"`
}
