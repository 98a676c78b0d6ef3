package app

import (
	"log"

	"shopmap/internal/config"
	"shopmap/internal/database"
	"shopmap/internal/geocode"
	"shopmap/internal/repository"
	"shopmap/internal/service"
	"shopmap/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service, geocode.Client) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	// external geocoding collaborator
	geocoder := geocode.NewOverpassClient(cfg)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, geocoder)

	return db, repo, services, geocoder
}
