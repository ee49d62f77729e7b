package localdb

import (
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// SWOTRepository implements domain.SWOTRepository over the file store
type SWOTRepository struct {
	db *DB
}

// NewSWOTRepository creates a new SWOTRepository
func NewSWOTRepository(db *DB) *SWOTRepository {
	return &SWOTRepository{db: db}
}

func swotID(a *domain.SWOTAnalysis) string     { return a.ID }
func swotOwner(a *domain.SWOTAnalysis) string  { return a.OwnerID }
func swotAge(a *domain.SWOTAnalysis) time.Time { return a.CreatedAt }

// GetByID retrieves a SWOT analysis by id
func (r *SWOTRepository) GetByID(id string) (*domain.SWOTAnalysis, error) {
	return findByID(r.db, colSWOT, id, swotID, domain.ErrAnalysisNotFound)
}

// ListByOwner retrieves all SWOT analyses owned by a user, newest first
func (r *SWOTRepository) ListByOwner(ownerID string) ([]*domain.SWOTAnalysis, error) {
	return listByOwner(r.db, colSWOT, ownerID, swotOwner, swotAge)
}

// Create creates a new SWOT analysis
func (r *SWOTRepository) Create(analysis *domain.SWOTAnalysis) (*domain.SWOTAnalysis, error) {
	rec := *analysis
	rec.ID = r.db.NewID()
	rec.CreatedAt = time.Now().UTC()
	if err := appendRecord(r.db, colSWOT, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete deletes a SWOT analysis by id
func (r *SWOTRepository) Delete(id string) error {
	return deleteByID(r.db, colSWOT, id, swotID)
}
