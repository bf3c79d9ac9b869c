package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"newsroom-backend/internal/domains/ad/model"
)

type postgresAdRepository struct {
	db *pgxpool.Pool
}

// NewPostgresAdRepository creates a new PostgreSQL ad repository
func NewPostgresAdRepository(db *pgxpool.Pool) RepositoryInterface {
	return &postgresAdRepository{db: db}
}

func (r *postgresAdRepository) ListActive(ctx context.Context, categorySlug string) ([]model.Ad, error) {
	query := `
		SELECT a.id, a.title, a.image_url, a.target_url, a.size,
		       a.category_id, c.name, a.is_active, a.display_order,
		       a.created_at, a.updated_at
		FROM ads a
		LEFT JOIN categories c ON c.id = a.category_id
		WHERE a.is_active = TRUE`

	args := []interface{}{}
	if categorySlug != "" {
		query += ` AND c.slug = $1`
		args = append(args, categorySlug)
	}
	query += ` ORDER BY a.display_order ASC, a.created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active ads: %w", err)
	}
	defer rows.Close()

	var ads []model.Ad
	for rows.Next() {
		var a model.Ad
		if err := rows.Scan(
			&a.ID, &a.Title, &a.ImageURL, &a.TargetURL, &a.Size,
			&a.CategoryID, &a.CategoryName, &a.IsActive, &a.DisplayOrder,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ad: %w", err)
		}
		ads = append(ads, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ads: %w", err)
	}

	return ads, nil
}
