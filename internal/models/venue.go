package models

// Venue represents an Olympic venue from the static venue table
type Venue struct {
	Name      string  `json:"name"`      // Display name (Nom_Site)
	Code      string  `json:"code"`      // Short site code (Code_Site)
	Latitude  float64 `json:"latitude"`  // WGS84
	Longitude float64 `json:"longitude"` // WGS84
}
