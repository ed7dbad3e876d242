package main // Entry point package

import (
	"context"
	"log" // Logging library
	"os"
	"time"

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/DiveshR/property-booking-api/internal/config"
	"github.com/DiveshR/property-booking-api/internal/database"
	"github.com/DiveshR/property-booking-api/internal/geocoder"
	"github.com/DiveshR/property-booking-api/internal/handler"
	"github.com/DiveshR/property-booking-api/internal/middleware"
	"github.com/DiveshR/property-booking-api/internal/queue"
	"github.com/DiveshR/property-booking-api/internal/repository"
	"github.com/DiveshR/property-booking-api/internal/router"
	"github.com/DiveshR/property-booking-api/internal/service"
)

func main() {
	// Load .env if present; in containers configuration comes from real
	// environment variables and the file is simply absent.
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Seed reference data (roles, countries, cities, geoobjects, admin)
	// when requested. All statements are INSERT IGNORE so reruns are safe.
	if os.Getenv("SEED_DATA") == "true" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := database.Seed(ctx, db, cfg.BcryptCost); err != nil {
			log.Fatalf("seed: %v", err)
		}
		cancel()
	}

	// Repositories
	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	props := repository.NewPropertyRepo(db)
	bookings := repository.NewBookingRepo(db)
	geo := repository.NewGeoRepo(db)

	// Services
	reg := service.NewRegistrationService(users, cfg)
	listings := service.NewPropertyService(
		props,
		geo,
		geocoder.NewClient(cfg.GeocoderBaseURL, cfg.GeocoderAPIKey),
		cfg.IsTesting(), // skip geocoding entirely in the testing env
	)

	// Handlers
	authH := handler.NewAuthHandler(cfg, reg, users, tokens)
	ownerH := handler.NewOwnerHandler(props, listings)
	userH := handler.NewUserHandler(bookings, props)
	publicH := handler.NewPublicHandler(props, geo)

	e := echo.New() // Create Echo instance

	// Optional Redis-backed middleware. When Redis is unreachable the
	// client is nil and both middlewares degrade to pass-through.
	rdb := config.NewRedisClient()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cacheMW := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e) // health check
	router.RegisterAuth(e, authH, cfg.JWTSecret)
	router.RegisterOwner(e, ownerH, cfg.JWTSecret)
	router.RegisterUser(e, userH, cfg.JWTSecret)
	router.RegisterPublic(e, publicH, cacheMW)

	// Consume property.listed and booking.created events in the
	// background. The consumer reconnects on broker failures and never
	// takes the HTTP server down with it.
	go func() {
		if err := queue.StartEventConsumer(); err != nil {
			log.Printf("event consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}
