package models

import "time"

// QueryLogEntry records one successful accessibility query for the
// history API. VenueCodes is stored comma-joined in sqlite.
type QueryLogEntry struct {
	ID         string    `json:"id" db:"id"`
	VenueCodes []string  `json:"venue_codes" db:"venue_codes"`
	TravelTime int       `json:"travel_time" db:"travel_time"`
	TravelMode string    `json:"travel_mode" db:"travel_mode"`
	Resolution int       `json:"resolution" db:"resolution"`
	RowCount   int       `json:"row_count" db:"row_count"`
	MaxCount   float64   `json:"max_count" db:"max_count"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
