package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/olympics-access-go/internal/catalog"
	"github.com/jengzang/olympics-access-go/internal/isochrone"
	"github.com/jengzang/olympics-access-go/internal/models"
	"github.com/jengzang/olympics-access-go/internal/viz"
)

type fakeFetcher struct {
	rows     []models.AccessibilityRow
	err      error
	gotCodes []string
	gotTime  int
	gotMode  string
	gotRes   int
}

func (f *fakeFetcher) Fetch(_ context.Context, codes []string, travelTime int, travelMode string, resolution int) ([]models.AccessibilityRow, error) {
	f.gotCodes = codes
	f.gotTime = travelTime
	f.gotMode = travelMode
	f.gotRes = resolution
	return f.rows, f.err
}

type fakeRecorder struct {
	entries []*models.QueryLogEntry
	err     error
}

func (r *fakeRecorder) Record(codes []string, travelTime int, travelMode string, resolution, rowCount int, maxCount float64) (*models.QueryLogEntry, error) {
	if r.err != nil {
		return nil, r.err
	}
	entry := &models.QueryLogEntry{
		VenueCodes: codes,
		TravelTime: travelTime,
		TravelMode: travelMode,
		Resolution: resolution,
		RowCount:   rowCount,
		MaxCount:   maxCount,
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "venues.csv")
	require.NoError(t, os.WriteFile(path, []byte("Nom_Site,Code_Site,latitude,longitude\nStade A,STA,48.8,2.3\n"), 0o644))
	c, err := catalog.Load(path)
	require.NoError(t, err)
	return c
}

func stadeAParams() models.QueryParams {
	return models.QueryParams{
		Venues:     []string{"Stade A"},
		TravelTime: 5,
		TravelMode: models.ModeAuto,
		Resolution: models.DefaultResolution,
	}
}

func TestRun_Scenario(t *testing.T) {
	fetcher := &fakeFetcher{rows: []models.AccessibilityRow{
		{CellID: "ABC123", Count: 10},
		{CellID: "DEF456", Count: 5},
	}}
	recorder := &fakeRecorder{}
	svc := NewAccessibilityService(testCatalog(t), fetcher, recorder)

	result, err := svc.Run(context.Background(), stadeAParams())
	require.NoError(t, err)

	// Venue names were resolved to codes before the remote call
	assert.Equal(t, []string{"STA"}, fetcher.gotCodes)
	assert.Equal(t, 5, fetcher.gotTime)
	assert.Equal(t, "auto", fetcher.gotMode)
	assert.Equal(t, 11, fetcher.gotRes)

	assert.Equal(t, 10.0, result.HexLayer.MaxCount)
	assert.Equal(t, [3]int{255, 0, 0}, result.HexLayer.Cells[0].Color)
	assert.Equal(t, [3]int{255, 128, 0}, result.HexLayer.Cells[1].Color)
	assert.Equal(t, 48.8, result.ViewState.Latitude)
	assert.Equal(t, 2.3, result.ViewState.Longitude)

	// The successful query was recorded
	require.Len(t, recorder.entries, 1)
	assert.Equal(t, []string{"STA"}, recorder.entries[0].VenueCodes)
	assert.Equal(t, 2, recorder.entries[0].RowCount)
	assert.Equal(t, 10.0, recorder.entries[0].MaxCount)
}

func TestRun_NoSelection(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := NewAccessibilityService(testCatalog(t), fetcher, nil)

	params := stadeAParams()
	params.Venues = nil
	_, err := svc.Run(context.Background(), params)
	assert.True(t, errors.Is(err, viz.ErrNoSelection))
	assert.Nil(t, fetcher.gotCodes, "no remote call without a selection")
}

func TestRun_UnknownVenue(t *testing.T) {
	svc := NewAccessibilityService(testCatalog(t), &fakeFetcher{}, nil)

	params := stadeAParams()
	params.Venues = []string{"Stade Inconnu"}
	_, err := svc.Run(context.Background(), params)
	assert.True(t, errors.Is(err, catalog.ErrNotFound))
}

func TestRun_FetchErrorPropagates(t *testing.T) {
	fetchErr := &isochrone.RemoteServiceError{Status: 500, Body: "boom"}
	recorder := &fakeRecorder{}
	svc := NewAccessibilityService(testCatalog(t), &fakeFetcher{err: fetchErr}, recorder)

	_, err := svc.Run(context.Background(), stadeAParams())
	var remoteErr *isochrone.RemoteServiceError
	require.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, 500, remoteErr.Status)
	assert.Empty(t, recorder.entries, "failed queries are not recorded")
}

func TestRun_RecorderFailureDoesNotFailRender(t *testing.T) {
	fetcher := &fakeFetcher{rows: []models.AccessibilityRow{{CellID: "A", Count: 1}}}
	recorder := &fakeRecorder{err: errors.New("disk full")}
	svc := NewAccessibilityService(testCatalog(t), fetcher, recorder)

	result, err := svc.Run(context.Background(), stadeAParams())
	require.NoError(t, err)
	assert.Len(t, result.HexLayer.Cells, 1)
}
