package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsroom-backend/internal/domains/comment/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	query := `
		INSERT INTO comments (
			id, post_id, parent_id,
			author_id, author_handle,
			name, email, content,
			approved, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		comment.ID,
		comment.PostID,
		comment.ParentID,
		comment.AuthorID,
		comment.AuthorHandle,
		comment.Name,
		comment.Email,
		comment.Content,
		comment.Approved,
		comment.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `
		SELECT
			id, post_id, parent_id,
			author_id, author_handle,
			name, email, content,
			approved, created_at
		FROM comments
		WHERE id = $1
	`

	comment := &model.Comment{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.ParentID,
		&comment.AuthorID,
		&comment.AuthorHandle,
		&comment.Name,
		&comment.Email,
		&comment.Content,
		&comment.Approved,
		&comment.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepository) ListApprovedByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	// Ordered newest-first; the same ordering applies at every depth of
	// the assembled tree.
	query := `
		SELECT
			id, post_id, parent_id,
			author_id, author_handle,
			name, email, content,
			approved, created_at
		FROM comments
		WHERE post_id = $1 AND approved = TRUE
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(
			&c.ID,
			&c.PostID,
			&c.ParentID,
			&c.AuthorID,
			&c.AuthorHandle,
			&c.Name,
			&c.Email,
			&c.Content,
			&c.Approved,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}

func (r *postgresCommentRepository) PostExists(ctx context.Context, postID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, postID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check post existence: %w", err)
	}

	return exists, nil
}
