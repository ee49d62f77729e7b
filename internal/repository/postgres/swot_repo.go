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

// SWOTRepository implements domain.SWOTRepository using PostgreSQL
type SWOTRepository struct {
	docs docStore
}

// NewSWOTRepository creates a new SWOTRepository
func NewSWOTRepository(pool *pgxpool.Pool) *SWOTRepository {
	return &SWOTRepository{docs: docStore{pool: pool, table: "swot_analyses"}}
}

// GetByID retrieves a SWOT analysis by id
func (r *SWOTRepository) GetByID(id string) (*domain.SWOTAnalysis, error) {
	var analysis domain.SWOTAnalysis
	err := r.docs.get(context.Background(), id, &analysis)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnalysisNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

// ListByOwner retrieves all SWOT analyses owned by a user, newest first
func (r *SWOTRepository) ListByOwner(ownerID string) ([]*domain.SWOTAnalysis, error) {
	var analyses []*domain.SWOTAnalysis
	err := r.docs.listByOwner(context.Background(), ownerID, func(raw []byte) error {
		var analysis domain.SWOTAnalysis
		if err := json.Unmarshal(raw, &analysis); err != nil {
			return err
		}
		analyses = append(analyses, &analysis)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return analyses, nil
}

// Create creates a new SWOT analysis
func (r *SWOTRepository) Create(analysis *domain.SWOTAnalysis) (*domain.SWOTAnalysis, error) {
	rec := *analysis
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	if err := r.docs.insert(context.Background(), rec.ID, rec.OwnerID, rec.CreatedAt, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete deletes a SWOT analysis by id
func (r *SWOTRepository) Delete(id string) error {
	return r.docs.delete(context.Background(), id)
}
