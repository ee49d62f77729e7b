package localdb

import (
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// AutomationRepository implements domain.AutomationRepository over the file store
type AutomationRepository struct {
	db *DB
}

// NewAutomationRepository creates a new AutomationRepository
func NewAutomationRepository(db *DB) *AutomationRepository {
	return &AutomationRepository{db: db}
}

func automationID(a *domain.Automation) string     { return a.ID }
func automationOwner(a *domain.Automation) string  { return a.OwnerID }
func automationAge(a *domain.Automation) time.Time { return a.CreatedAt }

// GetByID retrieves an automation by id
func (r *AutomationRepository) GetByID(id string) (*domain.Automation, error) {
	return findByID(r.db, colAutomations, id, automationID, domain.ErrAutomationNotFound)
}

// ListByOwner retrieves all automations owned by a user, newest first
func (r *AutomationRepository) ListByOwner(ownerID string) ([]*domain.Automation, error) {
	return listByOwner(r.db, colAutomations, ownerID, automationOwner, automationAge)
}

// Create creates a new automation. New automations start inactive.
func (r *AutomationRepository) Create(automation *domain.Automation) (*domain.Automation, error) {
	if err := automation.Validate(); err != nil {
		return nil, err
	}
	rec := *automation
	rec.ID = r.db.NewID()
	if rec.Status == "" {
		rec.Status = domain.AutomationInactive
	}
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	if err := appendRecord(r.db, colAutomations, &rec); err != nil {
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
	if err := replaceByID(r.db, colAutomations, rec.ID, &rec, automationID, domain.ErrAutomationNotFound); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete deletes an automation by id
func (r *AutomationRepository) Delete(id string) error {
	return deleteByID(r.db, colAutomations, id, automationID)
}
