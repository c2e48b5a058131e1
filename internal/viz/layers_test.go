package viz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/olympics-access-go/internal/models"
)

var stadeA = models.Venue{Name: "Stade A", Code: "STA", Latitude: 48.8, Longitude: 2.3}

func TestBuild_Scenario(t *testing.T) {
	rows := []models.AccessibilityRow{
		{CellID: "ABC123", Count: 10},
		{CellID: "DEF456", Count: 5},
	}

	result, err := Build(rows, []models.Venue{stadeA})
	require.NoError(t, err)

	hex := result.HexLayer
	assert.Equal(t, models.LayerKindHex, hex.Kind)
	assert.Equal(t, 10.0, hex.MaxCount)
	assert.True(t, hex.Extruded)
	assert.True(t, hex.Pickable)
	assert.Equal(t, models.HexElevationScale, hex.ElevationScale)

	require.Len(t, hex.Cells, 2)
	assert.Equal(t, [3]int{255, 0, 0}, hex.Cells[0].Color)
	assert.Equal(t, 10.0, hex.Cells[0].Elevation)
	assert.Equal(t, [3]int{255, 128, 0}, hex.Cells[1].Color)
	assert.Equal(t, 5.0, hex.Cells[1].Elevation)

	point := result.PointLayer
	assert.Equal(t, models.LayerKindPoint, point.Kind)
	assert.Equal(t, [4]int{200, 30, 0, 160}, point.Color)
	assert.Equal(t, 200, point.Radius)
	assert.True(t, point.Pickable)
	require.Len(t, point.Points, 1)
	assert.Equal(t, 2.3, point.Points[0].Longitude)
	assert.Equal(t, 48.8, point.Points[0].Latitude)

	view := result.ViewState
	assert.Equal(t, 48.8, view.Latitude)
	assert.Equal(t, 2.3, view.Longitude)
	assert.Equal(t, 11, view.Zoom)
	assert.Equal(t, 20, view.Pitch)
}

func TestBuild_Deterministic(t *testing.T) {
	rows := []models.AccessibilityRow{
		{CellID: "ABC123", Count: 7, StadiumName: "Stade A"},
		{CellID: "DEF456", Count: 3},
	}
	venues := []models.Venue{stadeA}

	first, err := Build(rows, venues)
	require.NoError(t, err)
	second, err := Build(rows, venues)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_ColorBoundaries(t *testing.T) {
	t.Run("all cells at max", func(t *testing.T) {
		rows := []models.AccessibilityRow{
			{CellID: "A", Count: 4},
			{CellID: "B", Count: 4},
		}
		result, err := Build(rows, []models.Venue{stadeA})
		require.NoError(t, err)
		for _, cell := range result.HexLayer.Cells {
			assert.Equal(t, 0, cell.Color[1], "green channel at max density")
		}
	})

	t.Run("zero count below max", func(t *testing.T) {
		rows := []models.AccessibilityRow{
			{CellID: "A", Count: 4},
			{CellID: "B", Count: 0},
		}
		result, err := Build(rows, []models.Venue{stadeA})
		require.NoError(t, err)
		assert.Equal(t, 255, result.HexLayer.Cells[1].Color[1], "green channel at zero count")
	})

	t.Run("all counts zero", func(t *testing.T) {
		// max_count == 0 must not divide by zero
		rows := []models.AccessibilityRow{
			{CellID: "A", Count: 0},
			{CellID: "B", Count: 0},
		}
		result, err := Build(rows, []models.Venue{stadeA})
		require.NoError(t, err)
		assert.Equal(t, 0.0, result.HexLayer.MaxCount)
		for _, cell := range result.HexLayer.Cells {
			assert.Equal(t, [3]int{255, 255, 0}, cell.Color)
			assert.Equal(t, 0.0, cell.Elevation)
		}
	})
}

func TestBuild_NoSelection(t *testing.T) {
	rows := []models.AccessibilityRow{{CellID: "A", Count: 1}}
	_, err := Build(rows, nil)
	assert.True(t, errors.Is(err, ErrNoSelection))
}

func TestBuild_ViewStateMeanCenter(t *testing.T) {
	venues := []models.Venue{
		{Name: "A", Latitude: 48.0, Longitude: 2.0},
		{Name: "B", Latitude: 50.0, Longitude: 3.0},
	}
	result, err := Build(nil, venues)
	require.NoError(t, err)
	assert.InDelta(t, 49.0, result.ViewState.Latitude, 1e-9)
	assert.InDelta(t, 2.5, result.ViewState.Longitude, 1e-9)
}
