package services

import (
	"context"
	"errors"

	"estateBack/internal/models"
)

// FavoriteStore is the engagement ledger. InsertFavorite must surface a
// store-level uniqueness violation as models.ErrFavoriteExists; everything
// the toggle guarantees under races hangs on that.
type FavoriteStore interface {
	InsertFavorite(ctx context.Context, userID, propertyID int) error
	DeleteFavorite(ctx context.Context, userID, propertyID int) (bool, error)
	HasFavorite(ctx context.Context, userID, propertyID int) (bool, error)
}

type FavoriteService struct {
	FavoriteRepo FavoriteStore
}

// ToggleFavorite flips the favorite state for the (viewer, property) pair
// and reports the resulting liked state. Two sequential toggles return to
// the original state. A concurrent insert that loses to the unique
// constraint means the pair became liked concurrently, which is reported
// as liked rather than as an error.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, viewer models.Viewer, propertyID int) (bool, error) {
	if !canPerform(opToggleFavorite, viewer) {
		return false, models.ErrPermissionDenied
	}

	liked, err := s.FavoriteRepo.HasFavorite(ctx, viewer.UserID, propertyID)
	if err != nil {
		return false, err
	}
	if liked {
		if _, err := s.FavoriteRepo.DeleteFavorite(ctx, viewer.UserID, propertyID); err != nil {
			return false, err
		}
		return false, nil
	}

	err = s.FavoriteRepo.InsertFavorite(ctx, viewer.UserID, propertyID)
	if errors.Is(err, models.ErrFavoriteExists) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
