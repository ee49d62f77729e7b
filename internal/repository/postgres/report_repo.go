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

// ReportRepository implements domain.ReportRepository using PostgreSQL
type ReportRepository struct {
	docs docStore
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{docs: docStore{pool: pool, table: "reports"}}
}

// GetByID retrieves a report by id
func (r *ReportRepository) GetByID(id string) (*domain.Report, error) {
	var report domain.Report
	err := r.docs.get(context.Background(), id, &report)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// ListByOwner retrieves all reports owned by a user, newest first
func (r *ReportRepository) ListByOwner(ownerID string) ([]*domain.Report, error) {
	var reports []*domain.Report
	err := r.docs.listByOwner(context.Background(), ownerID, func(raw []byte) error {
		var report domain.Report
		if err := json.Unmarshal(raw, &report); err != nil {
			return err
		}
		reports = append(reports, &report)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Create creates a new report
func (r *ReportRepository) Create(report *domain.Report) (*domain.Report, error) {
	rec := *report
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	if err := r.docs.insert(context.Background(), rec.ID, rec.OwnerID, rec.CreatedAt, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update updates an existing report
func (r *ReportRepository) Update(report *domain.Report) (*domain.Report, error) {
	existing, err := r.GetByID(report.ID)
	if err != nil {
		return nil, err
	}
	rec := *report
	rec.CreatedAt = existing.CreatedAt
	rec.UpdatedAt = time.Now().UTC()
	ok, err := r.docs.update(context.Background(), rec.ID, &rec)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrReportNotFound
	}
	return &rec, nil
}

// Delete deletes a report by id
func (r *ReportRepository) Delete(id string) error {
	return r.docs.delete(context.Background(), id)
}
