package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default endpoint of the Fused isochrone/hex-aggregation service
const defaultIsochroneURL = "https://www.fused.io/server/v1/realtime-shared/ee28781f18bbb5369441e13c90a3e2ca7af582f266fdfd9edc4c56ca05321830/run/file"

// Config holds the application configuration
type Config struct {
	Port           string
	VenuesPath     string
	IsochroneURL   string
	RequestTimeout time.Duration
	DBPath         string
	JWTSecret      string
	AdminKey       string
	WebDir         string
}

// Load reads configuration from the environment, with a .env file as
// fallback for local development
func Load() *Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	venuesPath := os.Getenv("VENUES_PATH")
	if venuesPath == "" {
		venuesPath = "./data/venues/2024_paris_iso.csv"
	}

	isochroneURL := os.Getenv("ISOCHRONE_URL")
	if isochroneURL == "" {
		isochroneURL = defaultIsochroneURL
	}

	timeout := 15 * time.Second
	if s := os.Getenv("REQUEST_TIMEOUT_SECONDS"); s != "" {
		if secs, err := strconv.Atoi(s); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/queries.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	adminKey := os.Getenv("ADMIN_KEY")
	if adminKey == "" {
		adminKey = "admin"
	}

	webDir := os.Getenv("WEB_DIR")
	if webDir == "" {
		webDir = "./web"
	}

	return &Config{
		Port:           port,
		VenuesPath:     venuesPath,
		IsochroneURL:   isochroneURL,
		RequestTimeout: timeout,
		DBPath:         dbPath,
		JWTSecret:      jwtSecret,
		AdminKey:       adminKey,
		WebDir:         webDir,
	}
}
