package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "placeshare/internal/errors"
	"placeshare/internal/geocode"
	"placeshare/internal/model"
	"placeshare/internal/repository"
)

// defaultPlaceImage is attached to every created place until image upload for
// places ships.
const defaultPlaceImage = "https://cropper.watch.aetnd.com/public-content-aetn.video.aetnd.com/video-thumbnails/AETN-History_VMS/21/202/tdih-may01-HD.jpg?w=1440"

// CreatePlaceInput carries the validated fields of a place creation request.
// Location is never part of the input, it is derived from Address.
type CreatePlaceInput struct {
	Title       string
	Description string
	Address     string
	Creator     uuid.UUID
}

// PlaceService coordinates place reads and the cross-entity writes. Creating
// or deleting a place touches two rows owned by different repositories (the
// place itself and the creator's place list); both writes happen inside one
// transaction so readers never observe one without the other.
type PlaceService interface {
	GetPlace(ctx context.Context, id uuid.UUID) (*model.Place, error)
	GetPlacesByUser(ctx context.Context, userID uuid.UUID) ([]model.Place, error)
	CreatePlace(ctx context.Context, in CreatePlaceInput) (*model.Place, error)
	UpdatePlace(ctx context.Context, id uuid.UUID, title, description string) (*model.Place, error)
	DeletePlace(ctx context.Context, id uuid.UUID) error
}

type placeService struct {
	placeRepo repository.PlaceRepository
	userRepo  repository.UserRepository
	geocoder  geocode.Geocoder
	tx        repository.TxManager
}

// NewPlaceService creates a new place service.
func NewPlaceService(
	placeRepo repository.PlaceRepository,
	userRepo repository.UserRepository,
	geocoder geocode.Geocoder,
	tx repository.TxManager,
) PlaceService {
	return &placeService{
		placeRepo: placeRepo,
		userRepo:  userRepo,
		geocoder:  geocoder,
		tx:        tx,
	}
}

// GetPlace retrieves a single place by id.
func (s *placeService) GetPlace(ctx context.Context, id uuid.UUID) (*model.Place, error) {
	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("find place: %w", err)
	}
	return place, nil
}

// GetPlacesByUser retrieves all places owned by a user. A missing user is an
// error; an existing user with no places yields an empty slice.
func (s *placeService) GetPlacesByUser(ctx context.Context, userID uuid.UUID) ([]model.Place, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	places, err := s.placeRepo.FindByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find places by creator: %w", err)
	}
	if places == nil {
		places = []model.Place{}
	}
	return places, nil
}

// CreatePlace resolves the address, verifies the creator exists, then inserts
// the place and appends its id to the creator's place list in one transaction.
//
// Both pre-checks run before the transaction opens: a geocoder outage or an
// unknown creator must fail without any write, and a slow external call must
// never hold a transaction open.
func (s *placeService) CreatePlace(ctx context.Context, in CreatePlaceInput) (*model.Place, error) {
	location, err := s.geocoder.Resolve(ctx, in.Address)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, in.Creator); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthorizedCreator
		}
		return nil, fmt.Errorf("find creator: %w", err)
	}

	place := &model.Place{
		Title:       in.Title,
		Description: in.Description,
		Address:     in.Address,
		Location:    location,
		Image:       defaultPlaceImage,
		CreatorID:   in.Creator,
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, places repository.PlaceRepository, users repository.UserRepository) error {
		if err := places.Create(ctx, place); err != nil {
			return err
		}
		return users.AddPlaceRef(ctx, in.Creator, place.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrTransactionFailed, err)
	}

	return place, nil
}

// UpdatePlace writes title and description on a single row. No transaction is
// needed: the owner's place list is untouched.
func (s *placeService) UpdatePlace(ctx context.Context, id uuid.UUID, title, description string) (*model.Place, error) {
	place, err := s.placeRepo.UpdateFields(ctx, id, title, description)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("update place: %w", err)
	}
	return place, nil
}

// DeletePlace removes the place row and pulls its id from the creator's place
// list in one transaction, mirroring CreatePlace.
func (s *placeService) DeletePlace(ctx context.Context, id uuid.UUID) error {
	place, err := s.placeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlaceNotFound
		}
		return fmt.Errorf("find place: %w", err)
	}

	err = s.tx.WithTransaction(ctx, func(ctx context.Context, places repository.PlaceRepository, users repository.UserRepository) error {
		if err := places.Delete(ctx, id); err != nil {
			return err
		}
		return users.RemovePlaceRef(ctx, place.CreatorID, id)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrTransactionFailed, err)
	}

	return nil
}
