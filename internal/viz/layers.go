package viz

import (
	"errors"
	"math"

	"github.com/jengzang/olympics-access-go/internal/models"
	"github.com/jengzang/olympics-access-go/internal/spatial"
)

// ErrNoSelection is returned when Build is called with no selected venues;
// the view-state center is undefined in that case
var ErrNoSelection = errors.New("no venues selected")

// Build turns raw accessibility rows and the selected venues into the three
// descriptors a map render needs. Pure and deterministic: no I/O, same
// inputs always produce the same output.
func Build(rows []models.AccessibilityRow, venues []models.Venue) (models.RenderResult, error) {
	if len(venues) == 0 {
		return models.RenderResult{}, ErrNoSelection
	}

	var maxCount float64
	for _, row := range rows {
		if row.Count > maxCount {
			maxCount = row.Count
		}
	}

	cells := make([]models.HexCell, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, models.HexCell{
			CellID:      row.CellID,
			Count:       row.Count,
			StadiumName: row.StadiumName,
			Elevation:   row.Count,
			Color:       rampColor(row.Count, maxCount),
		})
	}

	points := make([]models.VenuePoint, 0, len(venues))
	for _, v := range venues {
		points = append(points, models.VenuePoint{
			Name:      v.Name,
			Longitude: v.Longitude,
			Latitude:  v.Latitude,
		})
	}

	lat, lon := spatial.MeanCenter(venues)

	return models.RenderResult{
		HexLayer: models.HexLayer{
			Kind:           models.LayerKindHex,
			Cells:          cells,
			MaxCount:       maxCount,
			ElevationScale: models.HexElevationScale,
			Extruded:       true,
			Pickable:       true,
		},
		PointLayer: models.PointLayer{
			Kind:     models.LayerKindPoint,
			Points:   points,
			Color:    models.PointColor,
			Radius:   models.PointRadius,
			Pickable: true,
		},
		ViewState: models.ViewState{
			Latitude:  lat,
			Longitude: lon,
			Zoom:      models.ViewZoom,
			Pitch:     models.ViewPitch,
		},
	}, nil
}

// rampColor maps a count onto the red-yellow ramp: red at max density,
// yellow at zero. A zero maxCount means every cell is at the low end.
func rampColor(count, maxCount float64) [3]int {
	var ratio float64
	if maxCount > 0 {
		ratio = count / maxCount
	}
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	green := int(math.Round(255 * (1 - ratio)))
	return [3]int{255, green, 0}
}
