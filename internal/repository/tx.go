package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a function with transaction-scoped repositories. The place
// row and the owner's back-reference list live in different tables, so the
// atomic unit spans both repositories: either every write inside fn is
// committed or none is observable.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context, places PlaceRepository, users UserRepository) error) error
}

type gormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a TxManager over a GORM connection.
func NewTxManager(db *gorm.DB) TxManager {
	return &gormTxManager{db: db}
}

func (m *gormTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context, places PlaceRepository, users UserRepository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewPlaceRepository(tx), NewUserRepository(tx))
	})
}
