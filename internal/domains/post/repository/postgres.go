package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"newsroom-backend/internal/domains/post/model"
	"newsroom-backend/internal/shared/utils"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

const postColumns = `
	p.id, p.title, p.slug, p.content, p.excerpt, p.featured_image,
	p.tags, p.status, p.views_count, p.is_featured,
	p.created_at, p.updated_at,
	c.id, c.name, c.slug
`

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Slug,
		&post.Content,
		&post.Excerpt,
		&post.FeaturedImage,
		&post.Tags,
		&post.Status,
		&post.ViewsCount,
		&post.IsFeatured,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.Category.ID,
		&post.Category.Name,
		&post.Category.Slug,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func collectPosts(rows pgx.Rows) ([]model.Post, error) {
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}

// =====================================================
// SINGLE POST
// =====================================================

func (r *postgresPostRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE p.slug = $1 AND p.status = $2
	`, postColumns)

	post, err := scanPost(r.pool.QueryRow(ctx, query, slug, model.StatusPublished))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// =====================================================
// LISTING
// =====================================================

func (r *postgresPostRepository) List(ctx context.Context, req model.ListPostsRequest) ([]model.Post, int, error) {
	clauses := []string{"p.status = $1"}
	args := []interface{}{model.StatusPublished}

	if req.Category != "" {
		args = append(args, req.Category)
		clauses = append(clauses, fmt.Sprintf("c.slug = $%d", len(args)))
	}
	if req.Featured != nil {
		args = append(args, *req.Featured)
		clauses = append(clauses, fmt.Sprintf("p.is_featured = $%d", len(args)))
	}
	if req.Search != "" {
		args = append(args, "%"+req.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf(
			"(%s)",
			utils.JoinWithOr([]string{
				fmt.Sprintf("p.title ILIKE $%d", n),
				fmt.Sprintf("p.content ILIKE $%d", n),
				fmt.Sprintf("p.tags ILIKE $%d", n),
			}),
		))
	}

	where := utils.JoinWithAnd(clauses)

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE %s
	`, where)

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	orderBy := orderingToSQL(req.Ordering)
	args = append(args, req.Limit, (req.Page-1)*req.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, postColumns, where, orderBy, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	posts, err := collectPosts(rows)
	if err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// orderingToSQL maps the request ordering field to a safe ORDER BY
// clause. The value is validated against a fixed set before reaching
// here; the default covers anything unexpected.
func orderingToSQL(ordering string) string {
	switch ordering {
	case "created_at":
		return "p.created_at ASC"
	case "views_count":
		return "p.views_count ASC"
	case "-views_count":
		return "p.views_count DESC"
	default:
		return "p.created_at DESC"
	}
}

func (r *postgresPostRepository) ListByCategorySlug(ctx context.Context, slug string) ([]model.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE c.slug = $1 AND p.status = $2
		ORDER BY p.created_at DESC
	`, postColumns)

	rows, err := r.pool.Query(ctx, query, slug, model.StatusPublished)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by category: %w", err)
	}

	return collectPosts(rows)
}

func (r *postgresPostRepository) ListFeatured(ctx context.Context, limit int) ([]model.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE p.is_featured = TRUE AND p.status = $1
		ORDER BY p.created_at DESC
		LIMIT $2
	`, postColumns)

	rows, err := r.pool.Query(ctx, query, model.StatusPublished, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured posts: %w", err)
	}

	return collectPosts(rows)
}

// =====================================================
// RELATED-POST TIERS
// =====================================================

func (r *postgresPostRepository) ListByCategoryID(ctx context.Context, categoryID, excludeID uuid.UUID, limit int) ([]model.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE p.category_id = $1 AND p.status = $2 AND p.id <> $3
		ORDER BY p.created_at DESC
		LIMIT $4
	`, postColumns)

	rows, err := r.pool.Query(ctx, query, categoryID, model.StatusPublished, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by category id: %w", err)
	}

	return collectPosts(rows)
}

func (r *postgresPostRepository) ListByTagTokens(ctx context.Context, tokens []string, excludeIDs []uuid.UUID, limit int) ([]model.Post, error) {
	if len(tokens) == 0 {
		return []model.Post{}, nil
	}

	// One ILIKE clause per token, OR-ed together
	args := []interface{}{model.StatusPublished, pq.Array(excludeIDs)}
	tagClauses := make([]string, 0, len(tokens))
	for _, token := range tokens {
		args = append(args, "%"+token+"%")
		tagClauses = append(tagClauses, fmt.Sprintf("p.tags ILIKE $%d", len(args)))
	}

	args = append(args, limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE p.status = $1
		  AND NOT (p.id = ANY($2))
		  AND (%s)
		ORDER BY p.created_at DESC
		LIMIT $%d
	`, postColumns, utils.JoinWithOr(tagClauses), len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by tags: %w", err)
	}

	return collectPosts(rows)
}

func (r *postgresPostRepository) ListLatest(ctx context.Context, limit int, excludeIDs []uuid.UUID) ([]model.Post, error) {
	// An empty exclusion list must become an empty array, not NULL:
	// ANY(NULL) would filter every row out.
	if excludeIDs == nil {
		excludeIDs = []uuid.UUID{}
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE p.status = $1 AND NOT (p.id = ANY($2))
		ORDER BY p.created_at DESC
		LIMIT $3
	`, postColumns)

	rows, err := r.pool.Query(ctx, query, model.StatusPublished, pq.Array(excludeIDs), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest posts: %w", err)
	}

	return collectPosts(rows)
}

// =====================================================
// ADJACENT NAVIGATION
// =====================================================

func (r *postgresPostRepository) GetPreviousPublished(ctx context.Context, createdAt time.Time) (*model.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE p.status = $1 AND p.created_at < $2
		ORDER BY p.created_at DESC
		LIMIT 1
	`, postColumns)

	post, err := scanPost(r.pool.QueryRow(ctx, query, model.StatusPublished, createdAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get previous post: %w", err)
	}

	return post, nil
}

func (r *postgresPostRepository) GetNextPublished(ctx context.Context, createdAt time.Time) (*model.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN categories c ON c.id = p.category_id
		WHERE p.status = $1 AND p.created_at > $2
		ORDER BY p.created_at ASC
		LIMIT 1
	`, postColumns)

	post, err := scanPost(r.pool.QueryRow(ctx, query, model.StatusPublished, createdAt))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get next post: %w", err)
	}

	return post, nil
}

// =====================================================
// VIEW COUNTER
// =====================================================

func (r *postgresPostRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE posts SET views_count = views_count + 1 WHERE id = $1`

	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}

	return nil
}
