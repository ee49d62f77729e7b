package localdb

import (
	"sort"
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// WorkspaceRepository implements domain.WorkspaceRepository over the file store
type WorkspaceRepository struct {
	db *DB
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(db *DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// GetByID retrieves a workspace by id
func (r *WorkspaceRepository) GetByID(id string) (*domain.Workspace, error) {
	all, err := readAll[*domain.Workspace](r.db, colWorkspaces)
	if err != nil {
		return nil, err
	}
	for _, w := range all {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, domain.ErrWorkspaceNotFound
}

// ListByOwner retrieves all workspaces owned by a user, newest first
func (r *WorkspaceRepository) ListByOwner(ownerID string) ([]*domain.Workspace, error) {
	all, err := readAll[*domain.Workspace](r.db, colWorkspaces)
	if err != nil {
		return nil, err
	}
	owned := make([]*domain.Workspace, 0)
	for _, w := range all {
		if w.OwnerID == ownerID {
			owned = append(owned, w)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(workspace *domain.Workspace) (*domain.Workspace, error) {
	rec := *workspace
	rec.ID = r.db.NewID()
	rec.CreatedAt = time.Now().UTC()
	rec.UpdatedAt = rec.CreatedAt
	if err := appendRecord(r.db, colWorkspaces, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update updates an existing workspace
func (r *WorkspaceRepository) Update(workspace *domain.Workspace) (*domain.Workspace, error) {
	all, err := readAll[*domain.Workspace](r.db, colWorkspaces)
	if err != nil {
		return nil, err
	}
	for i, w := range all {
		if w.ID == workspace.ID {
			rec := *workspace
			rec.CreatedAt = w.CreatedAt
			rec.UpdatedAt = time.Now().UTC()
			all[i] = &rec
			if err := replaceAll(r.db, colWorkspaces, all); err != nil {
				return nil, err
			}
			return &rec, nil
		}
	}
	return nil, domain.ErrWorkspaceNotFound
}

// Delete deletes a workspace by id
func (r *WorkspaceRepository) Delete(id string) error {
	all, err := readAll[*domain.Workspace](r.db, colWorkspaces)
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, w := range all {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	return replaceAll(r.db, colWorkspaces, kept)
}
