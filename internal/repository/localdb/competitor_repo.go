package localdb

import (
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// CompetitorRepository implements domain.CompetitorRepository over the file store
type CompetitorRepository struct {
	db *DB
}

// NewCompetitorRepository creates a new CompetitorRepository
func NewCompetitorRepository(db *DB) *CompetitorRepository {
	return &CompetitorRepository{db: db}
}

func competitorID(a *domain.CompetitorAnalysis) string     { return a.ID }
func competitorOwner(a *domain.CompetitorAnalysis) string  { return a.OwnerID }
func competitorAge(a *domain.CompetitorAnalysis) time.Time { return a.CreatedAt }

// GetByID retrieves a competitor analysis by id
func (r *CompetitorRepository) GetByID(id string) (*domain.CompetitorAnalysis, error) {
	return findByID(r.db, colCompetitors, id, competitorID, domain.ErrAnalysisNotFound)
}

// ListByOwner retrieves all competitor analyses owned by a user, newest first
func (r *CompetitorRepository) ListByOwner(ownerID string) ([]*domain.CompetitorAnalysis, error) {
	return listByOwner(r.db, colCompetitors, ownerID, competitorOwner, competitorAge)
}

// Create creates a new competitor analysis
func (r *CompetitorRepository) Create(analysis *domain.CompetitorAnalysis) (*domain.CompetitorAnalysis, error) {
	rec := *analysis
	rec.ID = r.db.NewID()
	rec.CreatedAt = time.Now().UTC()
	if err := appendRecord(r.db, colCompetitors, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete deletes a competitor analysis by id
func (r *CompetitorRepository) Delete(id string) error {
	return deleteByID(r.db, colCompetitors, id, competitorID)
}
