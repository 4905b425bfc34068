package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User represents an account that can own places.
//
// Places is an ordered list of owned place ids kept as a JSON column. It is a
// back-reference only: the user row tracks membership, it does not own the
// place rows' lifetime. The list and the place rows change together inside a
// single transaction driven by the place service.
type User struct {
	ID           uuid.UUID                      `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string                         `json:"username" gorm:"size:255;not null"`
	Email        string                         `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string                         `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Image        string                         `json:"image" gorm:"size:1024"`
	Places       datatypes.JSONSlice[uuid.UUID] `json:"places" gorm:"type:json"`
	CreatedAt    time.Time                      `json:"created_at"`
	UpdatedAt    time.Time                      `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
