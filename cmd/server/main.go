package main

import (
	"log"
	"net/http"
	"os"

	_ "placeshare/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"placeshare/internal/auth"
	"placeshare/internal/cache"
	"placeshare/internal/config"
	"placeshare/internal/db"
	"placeshare/internal/geocode"
	"placeshare/internal/handler"
	"placeshare/internal/model"
	"placeshare/internal/repository"
	"placeshare/internal/router"
	"placeshare/internal/service"
)

// @title PlaceShare API
// @version 1.0
// @description Share-places API: user accounts and geocoded places with atomic place/owner bookkeeping.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		for _, table := range []interface{}{&model.Place{}, &model.User{}} {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(&model.User{}, &model.Place{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	placeRepo := repository.NewPlaceRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	txManager := repository.NewTxManager(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	geocoder := geocode.NewHTTPGeocoder(cfg.GeocoderURL, cfg.GeocoderTimeout)
	placeService := service.NewPlaceService(placeRepo, userRepo, geocoder, txManager)
	userService := service.NewUserService(userRepo, jwtService, tokenStore)

	// Initialize handlers
	placeHandler := handler.NewPlaceHandler(placeService)
	userHandler := handler.NewUserHandler(userService, cfg.UploadDir)

	// Register routes
	router.Register(e, cfg, placeHandler, userHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
