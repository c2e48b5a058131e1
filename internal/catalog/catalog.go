package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jengzang/olympics-access-go/internal/models"
	"github.com/jengzang/olympics-access-go/internal/spatial"
)

// ErrNotFound is returned when a venue name is not in the catalog
var ErrNotFound = errors.New("venue not found")

// Columns the venue table must provide
var requiredColumns = []string{"Nom_Site", "Code_Site", "latitude", "longitude"}

// Catalog exposes the static venue table. It is loaded once at startup and
// never mutated afterwards.
type Catalog struct {
	venues     []models.Venue
	codeByName map[string]string
}

// Load reads the venue CSV and builds the catalog. A missing file, missing
// required column, unparsable coordinate or duplicate name/code fails the
// load; callers treat that as fatal.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open venue table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse venue table: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("venue table %s has no data rows", path)
	}

	// Resolve required columns from the header row
	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("venue table missing required column %q", name)
		}
	}

	c := &Catalog{codeByName: make(map[string]string)}
	seenCodes := make(map[string]bool)
	for i, row := range records[1:] {
		name := row[col["Nom_Site"]]
		code := row[col["Code_Site"]]
		lat, err := strconv.ParseFloat(row[col["latitude"]], 64)
		if err != nil {
			return nil, fmt.Errorf("venue table row %d: invalid latitude %q", i+2, row[col["latitude"]])
		}
		lon, err := strconv.ParseFloat(row[col["longitude"]], 64)
		if err != nil {
			return nil, fmt.Errorf("venue table row %d: invalid longitude %q", i+2, row[col["longitude"]])
		}

		if _, dup := c.codeByName[name]; dup {
			return nil, fmt.Errorf("venue table row %d: duplicate venue name %q", i+2, name)
		}
		if seenCodes[code] {
			return nil, fmt.Errorf("venue table row %d: duplicate venue code %q", i+2, code)
		}
		seenCodes[code] = true

		c.codeByName[name] = code
		c.venues = append(c.venues, models.Venue{
			Name:      name,
			Code:      code,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return c, nil
}

// Venues returns all venues in table order
func (c *Catalog) Venues() []models.Venue {
	return c.venues
}

// LookupCode resolves a venue name to its site code
func (c *Catalog) LookupCode(name string) (string, error) {
	code, ok := c.codeByName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return code, nil
}

// VenuesByName resolves a list of venue names to their records,
// preserving the selection order
func (c *Catalog) VenuesByName(names []string) ([]models.Venue, error) {
	byName := make(map[string]models.Venue, len(c.venues))
	for _, v := range c.venues {
		byName[v.Name] = v
	}

	selected := make([]models.Venue, 0, len(names))
	for _, name := range names {
		v, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
		}
		selected = append(selected, v)
	}
	return selected, nil
}

// Near returns venues within radiusMeters of the given point
func (c *Catalog) Near(lat, lon, radiusMeters float64) []models.Venue {
	var near []models.Venue
	for _, v := range c.venues {
		if spatial.HaversineDistance(lat, lon, v.Latitude, v.Longitude) <= radiusMeters {
			near = append(near, v)
		}
	}
	return near
}
