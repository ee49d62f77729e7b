package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// AutomationRepository implements domain.AutomationRepository using PostgreSQL
type AutomationRepository struct {
	docs docStore
}

// NewAutomationRepository creates a new AutomationRepository
func NewAutomationRepository(pool *pgxpool.Pool) *AutomationRepository {
	return &AutomationRepository{docs: docStore{pool: pool, table: "automations"}}
}

// GetByID retrieves an automation by id
func (r *AutomationRepository) GetByID(id string) (*domain.Automation, error) {
	var automation domain.Automation
	err := r.docs.get(context.Background(), id, &automation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAutomationNotFound
		}
		return nil, err
	}
	return &automation, nil
}

// ListByOwner retrieves all automations owned by a user, newest first
func (r *AutomationRepository) ListByOwner(ownerID string) ([]*domain.Automation, error) {
	var automations []*domain.Automation
	err := r.docs.listByOwner(context.Background(), ownerID, func(raw []byte) error {
		var automation domain.Automation
		if err := json.Unmarshal(raw, &automation); err != nil {
			return err
		}
		automations = append(automations, &automation)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return automations, nil
}

// Create creates a new automation
func (r *AutomationRepository) Create(automation *domain.Automation) (*domain.Automation, error) {
	if err := automation.Validate(); err != nil {
		return nil, err
	}
	rec := *automation
	rec.ID = uuid.New().String()
	if rec.Status == "" {
		rec.Status = domain.AutomationInactive
	}
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	if err := r.docs.insert(context.Background(), rec.ID, rec.OwnerID, rec.CreatedAt, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update updates an existing automation
func (r *AutomationRepository) Update(automation *domain.Automation) (*domain.Automation, error) {
	if err := automation.Validate(); err != nil {
		return nil, err
	}
	existing, err := r.GetByID(automation.ID)
	if err != nil {
		return nil, err
	}
	rec := *automation
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	ok, err := r.docs.update(context.Background(), rec.ID, &rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAutomationNotFound
	}
	return &rec, nil
}

// Delete deletes an automation by id
func (r *AutomationRepository) Delete(id string) error {
	return r.docs.delete(context.Background(), id)
}
