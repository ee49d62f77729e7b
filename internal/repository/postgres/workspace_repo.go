package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// WorkspaceRepository implements domain.WorkspaceRepository using PostgreSQL
type WorkspaceRepository struct {
	pool *pgxpool.Pool
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(pool *pgxpool.Pool) *WorkspaceRepository {
	return &WorkspaceRepository{pool: pool}
}

const workspaceColumns = `id, owner_id, name, description, color, icon, ai_instructions, created_at, updated_at`

func scanWorkspace(row pgx.Row) (*domain.Workspace, error) {
	var w domain.Workspace
	err := row.Scan(&w.ID, &w.OwnerID, &w.Name, &w.Description, &w.Color, &w.Icon, &w.AIInstructions, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// GetByID retrieves a workspace by id
func (r *WorkspaceRepository) GetByID(id string) (*domain.Workspace, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+workspaceColumns+` FROM workspaces WHERE id = $1`, id)
	workspace, err := scanWorkspace(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, err
	}
	return workspace, nil
}

// ListByOwner retrieves all workspaces owned by a user, newest first
func (r *WorkspaceRepository) ListByOwner(ownerID string) ([]*domain.Workspace, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+workspaceColumns+` FROM workspaces WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workspaces []*domain.Workspace
	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, err
		}
		workspaces = append(workspaces, w)
	}
	return workspaces, rows.Err()
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(workspace *domain.Workspace) (*domain.Workspace, error) {
	if err := workspace.Validate(); err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(context.Background(),
		`INSERT INTO workspaces (id, owner_id, name, description, color, icon, ai_instructions, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		 RETURNING `+workspaceColumns,
		uuid.New().String(), workspace.OwnerID, workspace.Name, workspace.Description,
		workspace.Color, workspace.Icon, workspace.AIInstructions, time.Now().UTC())
	return scanWorkspace(row)
}

// Update updates an existing workspace
func (r *WorkspaceRepository) Update(workspace *domain.Workspace) (*domain.Workspace, error) {
	if err := workspace.Validate(); err != nil {
		return nil, err
	}
	row := r.pool.QueryRow(context.Background(),
		`UPDATE workspaces
		 SET name = $2, description = $3, color = $4, icon = $5, ai_instructions = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING `+workspaceColumns,
		workspace.ID, workspace.Name, workspace.Description, workspace.Color, workspace.Icon, workspace.AIInstructions)
	updated, err := scanWorkspace(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrWorkspaceNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete deletes a workspace by id
func (r *WorkspaceRepository) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM workspaces WHERE id = $1`, id)
	return err
}
