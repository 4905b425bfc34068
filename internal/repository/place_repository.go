package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"placeshare/internal/model"
)

// PlaceRepository defines place persistence operations. Create and Delete
// take part in the cross-entity transaction and are called on
// transaction-scoped instances obtained through TxManager.
type PlaceRepository interface {
	Create(ctx context.Context, place *model.Place) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error)
	FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Place, error)
	UpdateFields(ctx context.Context, id uuid.UUID, title, description string) (*model.Place, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository builds a GORM-backed place repository.
func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

func (r *placeRepository) Create(ctx context.Context, place *model.Place) error {
	return r.db.WithContext(ctx).Create(place).Error
}

func (r *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	var place model.Place
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&place).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Place, error) {
	var places []model.Place
	if err := r.db.WithContext(ctx).Where("creator_id = ?", creatorID).
		Order("created_at").Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

// UpdateFields writes title and description on a single place row. A missing
// row surfaces as gorm.ErrRecordNotFound, distinct from a failed write.
func (r *placeRepository) UpdateFields(ctx context.Context, id uuid.UUID, title, description string) (*model.Place, error) {
	var place model.Place
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&place).Error; err != nil {
		return nil, err
	}

	place.Title = title
	place.Description = description
	if err := r.db.WithContext(ctx).Model(&place).
		Updates(map[string]interface{}{"title": title, "description": description}).Error; err != nil {
		return nil, err
	}
	return &place, nil
}

func (r *placeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Place{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
