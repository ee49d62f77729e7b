package localdb

import (
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// GrowthRepository implements domain.GrowthRepository over the file store
type GrowthRepository struct {
	db *DB
}

// NewGrowthRepository creates a new GrowthRepository
func NewGrowthRepository(db *DB) *GrowthRepository {
	return &GrowthRepository{db: db}
}

func growthID(p *domain.GrowthPlan) string     { return p.ID }
func growthOwner(p *domain.GrowthPlan) string  { return p.OwnerID }
func growthAge(p *domain.GrowthPlan) time.Time { return p.CreatedAt }

// GetByID retrieves a growth plan by id
func (r *GrowthRepository) GetByID(id string) (*domain.GrowthPlan, error) {
	return findByID(r.db, colGrowthPlans, id, growthID, domain.ErrGrowthPlanNotFound)
}

// ListByOwner retrieves all growth plans owned by a user, newest first
func (r *GrowthRepository) ListByOwner(ownerID string) ([]*domain.GrowthPlan, error) {
	return listByOwner(r.db, colGrowthPlans, ownerID, growthOwner, growthAge)
}

// Create creates a new growth plan
func (r *GrowthRepository) Create(plan *domain.GrowthPlan) (*domain.GrowthPlan, error) {
	rec := *plan
	rec.ID = r.db.NewID()
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	if err := appendRecord(r.db, colGrowthPlans, &rec); err != nil {
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
	if err := replaceByID(r.db, colGrowthPlans, rec.ID, &rec, growthID, domain.ErrGrowthPlanNotFound); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete deletes a growth plan by id
func (r *GrowthRepository) Delete(id string) error {
	return deleteByID(r.db, colGrowthPlans, id, growthID)
}
