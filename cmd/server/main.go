package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/engagement-api/configs"
	"github.com/maheshrc27/engagement-api/internal/api"
	"github.com/maheshrc27/engagement-api/internal/repository"
	"github.com/maheshrc27/engagement-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	if cfg.AutoMigrate {
		if err := repository.EnsureSchema(context.Background(), db); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
	}

	postRepo := repository.NewEngagementPostRepository(db)
	productRepo := repository.NewProductRepository(db)
	mappingRepo := repository.NewProductMappingRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	contentRepo := repository.NewPostContentRepository(db)

	var store service.ObjectStore
	if cfg.R2.Enabled() {
		r2, err := service.NewR2Service(context.Background(), cfg.R2)
		if err != nil {
			log.Fatalf("Failed to configure object storage: %v", err)
		}
		store = r2
	} else {
		slog.Info("object storage disabled, product image uploads will be rejected")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "engagement"),
	)

	app := api.NewServer(api.Dependencies{
		Posts:       service.NewPostService(postRepo, productRepo, mappingRepo, contentRepo),
		Products:    service.NewProductService(productRepo),
		Collections: service.NewCollectionService(collectionRepo),
		Analytics:   service.NewAnalyticsService(postRepo, productRepo, mappingRepo),
		Assets:      service.NewAssetService(store),
		DB:          db,
		Registry:    registry,
		CorsOrigins: cfg.CorsAllowOrigins,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
