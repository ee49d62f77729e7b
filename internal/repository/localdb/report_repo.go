package localdb

import (
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// ReportRepository implements domain.ReportRepository over the file store
type ReportRepository struct {
	db *DB
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func reportID(r *domain.Report) string     { return r.ID }
func reportOwner(r *domain.Report) string  { return r.OwnerID }
func reportAge(r *domain.Report) time.Time { return r.CreatedAt }

// GetByID retrieves a report by id
func (r *ReportRepository) GetByID(id string) (*domain.Report, error) {
	return findByID(r.db, colReports, id, reportID, domain.ErrReportNotFound)
}

// ListByOwner retrieves all reports owned by a user, newest first
func (r *ReportRepository) ListByOwner(ownerID string) ([]*domain.Report, error) {
	return listByOwner(r.db, colReports, ownerID, reportOwner, reportAge)
}

// Create creates a new report
func (r *ReportRepository) Create(report *domain.Report) (*domain.Report, error) {
	rec := *report
	rec.ID = r.db.NewID()
	rec.CreatedAt = time.Now().UTC()
	if err := appendRecord(r.db, colReports, &rec); err != nil {
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
	if err := replaceByID(r.db, colReports, rec.ID, &rec, reportID, domain.ErrReportNotFound); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete deletes a report by id
func (r *ReportRepository) Delete(id string) error {
	return deleteByID(r.db, colReports, id, reportID)
}
