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

// GrowthRepository implements domain.GrowthRepository using PostgreSQL
type GrowthRepository struct {
	docs docStore
}

// NewGrowthRepository creates a new GrowthRepository
func NewGrowthRepository(pool *pgxpool.Pool) *GrowthRepository {
	return &GrowthRepository{docs: docStore{pool: pool, table: "growth_plans"}}
}

// GetByID retrieves a growth plan by id
func (r *GrowthRepository) GetByID(id string) (*domain.GrowthPlan, error) {
	var plan domain.GrowthPlan
	err := r.docs.get(context.Background(), id, &plan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGrowthPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// ListByOwner retrieves all growth plans owned by a user, newest first
func (r *GrowthRepository) ListByOwner(ownerID string) ([]*domain.GrowthPlan, error) {
	var plans []*domain.GrowthPlan
	err := r.docs.listByOwner(context.Background(), ownerID, func(raw []byte) error {
		var plan domain.GrowthPlan
		if err := json.Unmarshal(raw, &plan); err != nil {
			return err
		}
		plans = append(plans, &plan)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// Create creates a new growth plan
func (r *GrowthRepository) Create(plan *domain.GrowthPlan) (*domain.GrowthPlan, error) {
	rec := *plan
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	if err := r.docs.insert(context.Background(), rec.ID, rec.OwnerID, rec.CreatedAt, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update updates an existing growth plan
func (r *GrowthRepository) Update(plan *domain.GrowthPlan) (*domain.GrowthPlan, error) {
	existing, err := r.GetByID(plan.ID)
	if err != nil {
		return nil, err
	}
	rec := *plan
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	ok, err := r.docs.update(context.Background(), rec.ID, &rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrGrowthPlanNotFound
	}
	return &rec, nil
}

// Delete deletes a growth plan by id
func (r *GrowthRepository) Delete(id string) error {
	return r.docs.delete(context.Background(), id)
}
