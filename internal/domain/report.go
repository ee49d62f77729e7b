package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportType classifies a report
type ReportType string

const (
	ReportSales       ReportType = "sales"
	ReportRevenue     ReportType = "revenue"
	ReportPerformance ReportType = "performance"
	ReportCustom      ReportType = "custom"
)

// ReportStatus is the lifecycle state of a report
type ReportStatus string

const (
	ReportGenerating ReportStatus = "generating"
	ReportCompleted  ReportStatus = "completed"
	ReportFailed     ReportStatus = "failed"
)

// Report holds an analysis result over a date range. Metrics use decimal
// so rendered percentages do not drift.
type Report struct {
	ID              string                     `json:"id"`
	OwnerID         string                     `json:"owner_id"`
	WorkspaceID     string                     `json:"workspace_id,omitempty"`
	Name            string                     `json:"name"`
	Type            ReportType                 `json:"type"`
	PeriodStart     time.Time                  `json:"period_start"`
	PeriodEnd       time.Time                  `json:"period_end"`
	Summary         string                     `json:"summary,omitempty"`
	Metrics         map[string]decimal.Decimal `json:"metrics,omitempty"`
	Insights        []string                   `json:"insights,omitempty"`
	Recommendations []string                   `json:"recommendations,omitempty"`
	Status          ReportStatus               `json:"status"`
	Source          GenerationSource           `json:"source"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
}

// ReportRepository defines the interface for report persistence operations
type ReportRepository interface {
	GetByID(id string) (*Report, error)
	ListByOwner(ownerID string) ([]*Report, error)
	Create(report *Report) (*Report, error)
	Update(report *Report) (*Report, error)
	Delete(id string) error
}
