package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsroom-backend/internal/domains/newsletter/model"
	"newsroom-backend/pkg/database"
)

const subscriptionColumns = `id, email, is_active, subscribed_at, updated_at`

type postgresNewsletterRepository struct {
	db *pgxpool.Pool
}

// NewPostgresNewsletterRepository creates a new PostgreSQL newsletter repository
func NewPostgresNewsletterRepository(db *pgxpool.Pool) RepositoryInterface {
	return &postgresNewsletterRepository{db: db}
}

func scanSubscription(row pgx.Row) (*model.Subscription, error) {
	var s model.Subscription
	err := row.Scan(&s.ID, &s.Email, &s.IsActive, &s.SubscribedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresNewsletterRepository) GetByEmail(ctx context.Context, email string) (*model.Subscription, error) {
	// Uniqueness is reconciled case-insensitively even though the
	// storage constraint on email is case-sensitive.
	query := `
		SELECT ` + subscriptionColumns + `
		FROM newsletter_subscriptions
		WHERE LOWER(email) = LOWER($1)`

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription by email: %w", err)
	}

	return sub, nil
}

func (r *postgresNewsletterRepository) Create(ctx context.Context, email string) (*model.Subscription, error) {
	query := `
		INSERT INTO newsletter_subscriptions (id, email, is_active, subscribed_at, updated_at)
		VALUES ($1, $2, TRUE, NOW(), NOW())
		RETURNING ` + subscriptionColumns

	sub, err := scanSubscription(r.db.QueryRow(ctx, query, uuid.New(), email))
	if err != nil {
		// Error code 23505 = unique_violation
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, model.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return sub, nil
}

func (r *postgresNewsletterRepository) Reactivate(ctx context.Context, id uuid.UUID) (*model.Subscription, error) {
	return database.WithTransactionResult(ctx, r.db, func(tx pgx.Tx) (*model.Subscription, error) {
		// Step 1: Lock the row so concurrent reconciliations serialize
		var current bool
		err := tx.QueryRow(ctx, `
			SELECT is_active
			FROM newsletter_subscriptions
			WHERE id = $1
			FOR UPDATE`, id).Scan(&current)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrSubscriptionNotFound
			}
			return nil, fmt.Errorf("failed to lock subscription: %w", err)
		}

		// Step 2: Flip to active
		sub, err := scanSubscription(tx.QueryRow(ctx, `
			UPDATE newsletter_subscriptions
			SET is_active = TRUE, updated_at = NOW()
			WHERE id = $1
			RETURNING `+subscriptionColumns, id))
		if err != nil {
			return nil, fmt.Errorf("failed to reactivate subscription: %w", err)
		}

		return sub, nil
	})
}
