package models

// Layer kinds consumed by the deck.gl frontend
const (
	LayerKindHex   = "hex"
	LayerKindPoint = "point"
)

// Rendering constants carried over from the deck.gl layer configuration.
// Radius is in the renderer's units (meters at ground level).
const (
	HexElevationScale = 20
	PointRadius       = 200
	ViewZoom          = 11
	ViewPitch         = 20
)

// PointColor is the fixed RGBA fill for venue markers
var PointColor = [4]int{200, 30, 0, 160}

// HexCell is one renderable hexagon: the raw count plus derived visual
// attributes (elevation, fill color on a red-yellow ramp)
type HexCell struct {
	CellID      string  `json:"cell_id"`
	Count       float64 `json:"cnt"`
	StadiumName string  `json:"stadium_name,omitempty"`
	Elevation   float64 `json:"elevation"`
	Color       [3]int  `json:"color"` // RGB, red at max density
}

// HexLayer describes the extruded hex-bin layer
type HexLayer struct {
	Kind           string    `json:"kind"` // always "hex"
	Cells          []HexCell `json:"cells"`
	MaxCount       float64   `json:"max_count"`
	ElevationScale int       `json:"elevation_scale"`
	Extruded       bool      `json:"extruded"`
	Pickable       bool      `json:"pickable"`
}

// VenuePoint is one venue marker
type VenuePoint struct {
	Name      string  `json:"name"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// PointLayer describes the venue scatter layer
type PointLayer struct {
	Kind     string       `json:"kind"` // always "point"
	Points   []VenuePoint `json:"points"`
	Color    [4]int       `json:"color"` // RGBA
	Radius   int          `json:"radius"`
	Pickable bool         `json:"pickable"`
}

// ViewState holds the initial camera for the map renderer
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
	Pitch     int     `json:"pitch"`
}

// RenderResult bundles everything one dashboard update needs
type RenderResult struct {
	HexLayer   HexLayer   `json:"hex_layer"`
	PointLayer PointLayer `json:"point_layer"`
	ViewState  ViewState  `json:"view_state"`
}
