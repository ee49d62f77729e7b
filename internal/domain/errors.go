package domain

import "errors"

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrAlreadyExists      = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInternalError      = errors.New("internal error")
	ErrUserNotFound       = errors.New("user not found")
	ErrWorkspaceNotFound  = errors.New("workspace not found")
	ErrAutomationNotFound = errors.New("automation not found")
	ErrReportNotFound     = errors.New("report not found")
	ErrSocialPostNotFound = errors.New("social post not found")
	ErrAnalysisNotFound   = errors.New("analysis not found")
	ErrGrowthPlanNotFound = errors.New("growth plan not found")
	ErrNameRequired       = errors.New("name is required")
	ErrNameTooLong        = errors.New("name exceeds maximum length")
	ErrStoreCorrupted     = errors.New("local store is corrupted")
)

// Validation constants
const (
	MaxNameLength = 255
)
