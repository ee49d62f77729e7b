package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, subject, email, name, avatar_url, provider, subscription, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var provider string
	var subscription []byte
	err := row.Scan(&u.ID, &u.Subject, &u.Email, &u.Name, &u.AvatarURL, &provider, &subscription, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Provider = domain.Provider(provider)
	if len(subscription) > 0 {
		var sub domain.Subscription
		if err := json.Unmarshal(subscription, &sub); err != nil {
			return nil, fmt.Errorf("failed to decode subscription: %w", err)
		}
		u.Subscription = &sub
	}
	return &u, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(id string) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetBySubject retrieves a user by identity-provider subject
func (r *UserRepository) GetBySubject(subject string) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE subject = $1`, subject)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// CreateOrGetBySubject returns the existing user for subject or inserts a
// new one. ON CONFLICT DO NOTHING keeps the first write authoritative
// when two sign-in callbacks race.
func (r *UserRepository) CreateOrGetBySubject(subject, email string, name, avatarURL *string, provider domain.Provider) (*domain.User, error) {
	ctx := context.Background()

	now := time.Now().UTC()
	var subscription []byte
	if provider != domain.ProviderGuest {
		var err error
		subscription, err = json.Marshal(domain.NewTrialSubscription(now))
		if err != nil {
			return nil, fmt.Errorf("failed to encode subscription: %w", err)
		}
	}

	row := r.pool.QueryRow(ctx,
		`INSERT INTO users (id, subject, email, name, avatar_url, provider, subscription, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		 ON CONFLICT (subject) DO NOTHING
		 RETURNING `+userColumns,
		uuid.New().String(), subject, email, name, avatarURL, string(provider), subscription, now)

	user, err := scanUser(row)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Conflict: the user already exists
	return r.GetBySubject(subject)
}

// UpdateName updates a user's display name
func (r *UserRepository) UpdateName(subject string, name string) (*domain.User, error) {
	row := r.pool.QueryRow(context.Background(),
		`UPDATE users SET name = $2, updated_at = now() WHERE subject = $1 RETURNING `+userColumns,
		subject, name)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateSubscription replaces a user's subscription descriptor
func (r *UserRepository) UpdateSubscription(id string, sub *domain.Subscription) (*domain.User, error) {
	var subscription []byte
	if sub != nil {
		var err error
		subscription, err = json.Marshal(sub)
		if err != nil {
			return nil, fmt.Errorf("failed to encode subscription: %w", err)
		}
	}

	row := r.pool.QueryRow(context.Background(),
		`UPDATE users SET subscription = $2, updated_at = now() WHERE id = $1 RETURNING `+userColumns,
		id, subscription)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
