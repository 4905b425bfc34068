package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"placeshare/internal/model"
)

// UserRepository defines user persistence operations. AddPlaceRef and
// RemovePlaceRef mutate the owned-place back-reference list and are called on
// transaction-scoped instances obtained through TxManager, in the same
// transaction as the corresponding place write.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	AddPlaceRef(ctx context.Context, userID, placeID uuid.UUID) error
	RemovePlaceRef(ctx context.Context, userID, placeID uuid.UUID) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users with the credential column excluded from the
// projection.
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Omit("password_hash").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AddPlaceRef appends placeID to the user's place list under a row lock.
// Appending an id that is already present is a no-op.
func (r *userRepository) AddPlaceRef(ctx context.Context, userID, placeID uuid.UUID) error {
	user, err := r.findByIDForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	refs := withPlaceRef(user.Places, placeID)
	return r.updateRefs(ctx, userID, refs)
}

// RemovePlaceRef pulls placeID from the user's place list under a row lock.
// Removing an absent id is a no-op.
func (r *userRepository) RemovePlaceRef(ctx context.Context, userID, placeID uuid.UUID) error {
	user, err := r.findByIDForUpdate(ctx, userID)
	if err != nil {
		return err
	}
	refs := withoutPlaceRef(user.Places, placeID)
	return r.updateRefs(ctx, userID, refs)
}

func (r *userRepository) findByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) updateRefs(ctx context.Context, userID uuid.UUID, refs []uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Update("places", datatypes.JSONSlice[uuid.UUID](refs)).Error
}

// withPlaceRef returns refs with id appended, deduplicating repeat appends.
func withPlaceRef(refs []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, ref := range refs {
		if ref == id {
			return refs
		}
	}
	return append(append([]uuid.UUID{}, refs...), id)
}

// withoutPlaceRef returns refs with id removed, preserving order.
func withoutPlaceRef(refs []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(refs))
	for _, ref := range refs {
		if ref != id {
			out = append(out, ref)
		}
	}
	return out
}
