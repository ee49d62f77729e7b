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

// CompetitorRepository implements domain.CompetitorRepository using PostgreSQL
type CompetitorRepository struct {
	docs docStore
}

// NewCompetitorRepository creates a new CompetitorRepository
func NewCompetitorRepository(pool *pgxpool.Pool) *CompetitorRepository {
	return &CompetitorRepository{docs: docStore{pool: pool, table: "competitor_analyses"}}
}

// GetByID retrieves a competitor analysis by id
func (r *CompetitorRepository) GetByID(id string) (*domain.CompetitorAnalysis, error) {
	var analysis domain.CompetitorAnalysis
	err := r.docs.get(context.Background(), id, &analysis)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAnalysisNotFound
		}
		return nil, err
	}
	return &analysis, nil
}

// ListByOwner retrieves all competitor analyses owned by a user, newest first
func (r *CompetitorRepository) ListByOwner(ownerID string) ([]*domain.CompetitorAnalysis, error) {
	var analyses []*domain.CompetitorAnalysis
	err := r.docs.listByOwner(context.Background(), ownerID, func(raw []byte) error {
		var analysis domain.CompetitorAnalysis
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

// Create creates a new competitor analysis
func (r *CompetitorRepository) Create(analysis *domain.CompetitorAnalysis) (*domain.CompetitorAnalysis, error) {
	rec := *analysis
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	if err := r.docs.insert(context.Background(), rec.ID, rec.OwnerID, rec.CreatedAt, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete deletes a competitor analysis by id
func (r *CompetitorRepository) Delete(id string) error {
	return r.docs.delete(context.Background(), id)
}
