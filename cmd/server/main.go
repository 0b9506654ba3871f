package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/fallswatch/journal-backend-go/internal/api"
	"github.com/fallswatch/journal-backend-go/internal/catalog"
	"github.com/fallswatch/journal-backend-go/internal/config"
	"github.com/fallswatch/journal-backend-go/internal/database"
	"github.com/fallswatch/journal-backend-go/internal/handler"
	"github.com/fallswatch/journal-backend-go/internal/repository"
	"github.com/fallswatch/journal-backend-go/internal/service"
	"github.com/fallswatch/journal-backend-go/pkg/logger"
)

func main() {
	// .env is optional; the environment wins either way.
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	// The catalog is parsed once and read-only from here on. A malformed
	// bundled asset is a packaging defect, so failing to load is fatal.
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Fatal("Failed to load catalog:", err)
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	visits := repository.NewVisitRepository(db, zlog)
	visitService := service.NewVisitService(visits)
	cardService := service.NewCardService(cat, visits, zlog)
	detailService := service.NewDetailService(visits, cfg.MapsAPIKey, zlog)

	router := api.SetupRouter(api.Handlers{
		Waterfalls: handler.NewWaterfallHandler(cat, cardService),
		Details:    handler.NewDetailHandler(detailService),
		Visits:     handler.NewVisitHandler(visitService),
	}, zlog)

	zlog.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("db_path", cfg.DBPath),
		zap.Int("catalog_entries", cat.Len()),
	)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
