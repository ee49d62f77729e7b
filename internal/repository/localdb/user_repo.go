package localdb

import (
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// UserRepository implements domain.UserRepository over the file store
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(id string) (*domain.User, error) {
	users, err := readAll[*domain.User](r.db, colUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// GetBySubject retrieves a user by identity-provider subject
func (r *UserRepository) GetBySubject(subject string) (*domain.User, error) {
	users, err := readAll[*domain.User](r.db, colUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Subject == subject {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// CreateOrGetBySubject returns the existing record for subject or creates
// one. First write wins; the trial window is computed once here and is
// read-only afterward except via UpdateSubscription.
func (r *UserRepository) CreateOrGetBySubject(subject, email string, name, avatarURL *string, provider domain.Provider) (*domain.User, error) {
	if existing, err := r.GetBySubject(subject); err == nil {
		return existing, nil
	} else if err != domain.ErrUserNotFound {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:        r.db.NewID(),
		Subject:   subject,
		Email:     email,
		Name:      name,
		AvatarURL: avatarURL,
		Provider:  provider,
		CreatedAt: now,
		UpdatedAt: now,
	}
	// Guests stay on the free plan; everyone else starts a trial
	if provider != domain.ProviderGuest {
		user.Subscription = domain.NewTrialSubscription(now)
	}

	if err := appendRecord(r.db, colUsers, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateName updates a user's display name
func (r *UserRepository) UpdateName(subject string, name string) (*domain.User, error) {
	users, err := readAll[*domain.User](r.db, colUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Subject == subject {
			u.Name = &name
			u.UpdatedAt = time.Now().UTC()
			if err := replaceAll(r.db, colUsers, users); err != nil {
				return nil, err
			}
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// UpdateSubscription replaces a user's subscription descriptor
func (r *UserRepository) UpdateSubscription(id string, sub *domain.Subscription) (*domain.User, error) {
	users, err := readAll[*domain.User](r.db, colUsers)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			u.Subscription = sub
			u.UpdatedAt = time.Now().UTC()
			if err := replaceAll(r.db, colUsers, users); err != nil {
				return nil, err
			}
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
