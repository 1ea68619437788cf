package repositories

import (
	"context"
	"database/sql"

	"estateBack/internal/models"
)

type FavoriteRepository struct {
	DB *sql.DB
}

// InsertFavorite creates the (user, property) ledger row. A concurrent
// insert for the same pair loses to the unique constraint and comes back as
// models.ErrFavoriteExists; the caller decides what that means.
func (r *FavoriteRepository) InsertFavorite(ctx context.Context, userID, propertyID int) error {
	query := `INSERT INTO favorites (user_id, property_id) VALUES ($1, $2)`
	_, err := r.DB.ExecContext(ctx, query, userID, propertyID)
	if isUniqueViolation(err) {
		return models.ErrFavoriteExists
	}
	if isForeignKeyViolation(err) {
		return models.ErrPropertyNotFound
	}
	return err
}

func (r *FavoriteRepository) DeleteFavorite(ctx context.Context, userID, propertyID int) (bool, error) {
	query := `DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`
	result, err := r.DB.ExecContext(ctx, query, userID, propertyID)
	if err != nil {
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *FavoriteRepository) HasFavorite(ctx context.Context, userID, propertyID int) (bool, error) {
	query := `SELECT COUNT(*) FROM favorites WHERE user_id = $1 AND property_id = $2`
	var count int
	err := r.DB.QueryRowContext(ctx, query, userID, propertyID).Scan(&count)
	return count > 0, err
}
