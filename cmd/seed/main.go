package main

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"placeshare/internal/config"
	"placeshare/internal/db"
	"placeshare/internal/model"
	"placeshare/internal/repository"
)

type seedUser struct {
	ID       uuid.UUID
	Username string
	Email    string
	Password string
}

type seedPlace struct {
	Title       string
	Description string
	Address     string
	Lat         string
	Lng         string
	Creator     uuid.UUID
}

var demoUsers = []seedUser{
	{
		ID:       uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Username: "max",
		Email:    "max@example.com",
		Password: "password123",
	},
	{
		ID:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Username: "julie",
		Email:    "julie@example.com",
		Password: "password123",
	},
}

var demoPlaces = []seedPlace{
	{
		Title:       "Empire State Building",
		Description: "One of the most famous skyscrapers in the world",
		Address:     "20 W 34th St, New York, NY 10001",
		Lat:         "40.7484405",
		Lng:         "-73.9856644",
		Creator:     demoUsers[0].ID,
	},
	{
		Title:       "Brooklyn Bridge",
		Description: "A hybrid cable-stayed suspension bridge",
		Address:     "Brooklyn Bridge, New York, NY 10038",
		Lat:         "40.7061927",
		Lng:         "-73.9968926",
		Creator:     demoUsers[1].ID,
	},
}

// Seeds demo users and places. Coordinates are fixed so the seed never
// depends on the geocoder; place rows and owner back-references are written
// through the same transaction manager the server uses, keeping the
// cross-entity invariant intact.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Place{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	txManager := repository.NewTxManager(gormDB)
	ctx := context.Background()

	created := 0
	for _, u := range demoUsers {
		existing, err := userRepo.FindByEmail(ctx, u.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check user %s: %v", u.Email, err)
		}
		if existing != nil {
			log.Printf("User %s already present, skipping", u.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), 10)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", u.Email, err)
		}
		user := &model.User{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: string(hash),
			Places:       datatypes.JSONSlice[uuid.UUID]{},
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Email, err)
		}
		created++
	}
	log.Printf("Users created: %d", created)

	seeded := 0
	for _, p := range demoPlaces {
		lat, err := decimal.NewFromString(p.Lat)
		if err != nil {
			log.Fatalf("Invalid latitude for %q: %v", p.Title, err)
		}
		lng, err := decimal.NewFromString(p.Lng)
		if err != nil {
			log.Fatalf("Invalid longitude for %q: %v", p.Title, err)
		}

		place := &model.Place{
			Title:       p.Title,
			Description: p.Description,
			Address:     p.Address,
			Location:    model.Location{Lat: lat, Lng: lng},
			CreatorID:   p.Creator,
		}

		err = txManager.WithTransaction(ctx, func(ctx context.Context, places repository.PlaceRepository, users repository.UserRepository) error {
			if err := places.Create(ctx, place); err != nil {
				return err
			}
			return users.AddPlaceRef(ctx, p.Creator, place.ID)
		})
		if err != nil {
			log.Fatalf("Failed to seed place %q: %v", p.Title, err)
		}
		seeded++
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Places created: %d", seeded)
}
