package main

import (
	"log"

	"github.com/jengzang/olympics-access-go/internal/api"
	"github.com/jengzang/olympics-access-go/internal/catalog"
	"github.com/jengzang/olympics-access-go/internal/config"
	"github.com/jengzang/olympics-access-go/internal/database"
	"github.com/jengzang/olympics-access-go/internal/handler"
	"github.com/jengzang/olympics-access-go/internal/isochrone"
	"github.com/jengzang/olympics-access-go/internal/repository"
	"github.com/jengzang/olympics-access-go/internal/service"
)

func main() {
	cfg := config.Load()

	// The venue table is required before the dashboard can serve anything
	venueCatalog, err := catalog.Load(cfg.VenuesPath)
	if err != nil {
		log.Fatal("Failed to load venue catalog: ", err)
	}
	log.Printf("Loaded %d venues from %s", len(venueCatalog.Venues()), cfg.VenuesPath)

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}
	defer db.Close()

	queryRepo := repository.NewQueryRepository(db)
	client := isochrone.NewClient(cfg.IsochroneURL, cfg.RequestTimeout)

	handlers := api.Handlers{
		Venue:         handler.NewVenueHandler(service.NewVenueService(venueCatalog)),
		Accessibility: handler.NewAccessibilityHandler(service.NewAccessibilityService(venueCatalog, client, queryRepo)),
		Query:         handler.NewQueryHandler(queryRepo),
		Auth:          handler.NewAuthHandler(cfg.AdminKey, cfg.JWTSecret),
	}

	router := api.SetupRouter(cfg, handlers)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
