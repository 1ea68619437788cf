package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"estateBack/internal/models"
)

type PropertyRepository struct {
	DB *sql.DB
}

// propertyColumns is the shared select list for enriched property reads.
// favorites_count is always the live row count and liked_by_me comes from
// the viewer join; neither is ever stored on the property row.
const propertyColumns = `
	p.id, p.title, p.description, p.price, p.location, p.images, p.status, p.owner_id, p.created_at,
	(SELECT COUNT(*) FROM favorites f WHERE f.property_id = p.id) AS favorites_count,
	(vf.property_id IS NOT NULL) AS liked_by_me`

func (r *PropertyRepository) CreateProperty(ctx context.Context, p models.Property) (int, error) {
	if p.ImageURL == nil {
		p.ImageURL = []string{}
	}
	images, err := json.Marshal(p.ImageURL)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO properties (title, description, price, location, images, status, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	var id int
	err = r.DB.QueryRowContext(ctx, query,
		p.Title, p.Description, p.Price, p.Location,
		images, p.Status, p.OwnerID, p.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PropertyRepository) GetPropertyByID(ctx context.Context, id, viewerID int) (models.Property, error) {
	query := `
		SELECT ` + propertyColumns + `
		FROM properties p
		LEFT JOIN favorites vf ON vf.property_id = p.id AND vf.user_id = $2
		WHERE p.id = $1
	`
	p, err := scanProperty(r.DB.QueryRowContext(ctx, query, id, viewerID))
	if err == sql.ErrNoRows {
		return models.Property{}, models.ErrPropertyNotFound
	}
	if err != nil {
		return models.Property{}, err
	}
	return p, nil
}

func (r *PropertyRepository) UpdatePropertyFields(ctx context.Context, p models.Property) error {
	if p.ImageURL == nil {
		p.ImageURL = []string{}
	}
	images, err := json.Marshal(p.ImageURL)
	if err != nil {
		return err
	}

	query := `
		UPDATE properties
		SET title = $1, description = $2, price = $3, location = $4, images = $5
		WHERE id = $6
	`
	result, err := r.DB.ExecContext(ctx, query,
		p.Title, p.Description, p.Price, p.Location, images, p.ID,
	)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) UpdatePropertyStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE properties SET status = $1 WHERE id = $2`
	result, err := r.DB.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrPropertyNotFound
	}
	return nil
}

// FindPage returns one page of properties visible under scope, newest
// first with the id as tiebreaker so paging stays stable under concurrent
// inserts. viewerID feeds the liked_by_me join; zero matches nothing.
func (r *PropertyRepository) FindPage(ctx context.Context, scope models.PropertyScope, viewerID, limit, offset int) ([]models.Property, error) {
	args := []interface{}{viewerID}
	query := `
		SELECT ` + propertyColumns + `
		FROM properties p
		LEFT JOIN favorites vf ON vf.property_id = p.id AND vf.user_id = $1
	`
	if conditions := scopeConditions(scope, &args); len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.created_at DESC, p.id DESC"

	args = append(args, limit, offset)
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []models.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return properties, nil
}

// Count counts the rows matching scope. It must build the same filter
// expression as FindPage so totals and page contents never disagree.
func (r *PropertyRepository) Count(ctx context.Context, scope models.PropertyScope) (int, error) {
	var args []interface{}
	query := `SELECT COUNT(*) FROM properties p`
	if conditions := scopeConditions(scope, &args); len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// scopeConditions translates a visibility scope into WHERE conditions,
// appending bind values to args. A None scope matches no rows at all.
func scopeConditions(scope models.PropertyScope, args *[]interface{}) []string {
	if scope.None {
		return []string{"FALSE"}
	}

	var conditions []string
	if scope.OwnerID != nil {
		*args = append(*args, *scope.OwnerID)
		conditions = append(conditions, fmt.Sprintf("p.owner_id = $%d", len(*args)))
	}
	if len(scope.Statuses) > 0 {
		placeholders := make([]string, 0, len(scope.Statuses))
		for _, status := range scope.Statuses {
			*args = append(*args, status)
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(*args)))
		}
		conditions = append(conditions, fmt.Sprintf("p.status IN (%s)", strings.Join(placeholders, ", ")))
	}
	return conditions
}

func scanProperty(row interface{ Scan(...interface{}) error }) (models.Property, error) {
	var p models.Property
	var images []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price, &p.Location,
		&images, &p.Status, &p.OwnerID, &p.CreatedAt,
		&p.FavoritesCount, &p.LikedByMe,
	)
	if err != nil {
		return models.Property{}, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.ImageURL); err != nil {
			return models.Property{}, err
		}
	}
	if p.ImageURL == nil {
		p.ImageURL = []string{}
	}
	return p, nil
}
