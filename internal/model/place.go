package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Location is a geocoded coordinate pair. Coordinates are derived from the
// place address by the geocoder and are never user-supplied.
type Location struct {
	Lat decimal.Decimal `json:"lat" gorm:"type:decimal(10,7);not null"`
	Lng decimal.Decimal `json:"lng" gorm:"type:decimal(10,7);not null"`
}

// Place represents a shared point of interest owned by exactly one user.
type Place struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Address     string    `json:"address" gorm:"size:512;not null"`
	Location    Location  `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	Image       string    `json:"image" gorm:"size:1024"`
	CreatorID   uuid.UUID `json:"creator" gorm:"type:char(36);not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Place) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
