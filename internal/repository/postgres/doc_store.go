package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// docStore is the shared access layer for the owner-scoped content
// tables. Each table holds the indexed columns (id, owner_id,
// created_at) plus the full record as a jsonb document, which keeps one
// canonical schema for both storage backends.
type docStore struct {
	pool  *pgxpool.Pool
	table string
}

func (s *docStore) insert(ctx context.Context, id, ownerID string, createdAt time.Time, doc any) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", s.table, err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO `+s.table+` (id, owner_id, created_at, doc) VALUES ($1, $2, $3, $4)`,
		id, ownerID, createdAt, payload)
	return err
}

func (s *docStore) get(ctx context.Context, id string, out any) error {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM `+s.table+` WHERE id = $1`, id).Scan(&payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(payload, out)
}

// listByOwner streams the documents for an owner, newest first
func (s *docStore) listByOwner(ctx context.Context, ownerID string, each func(raw []byte) error) error {
	rows, err := s.pool.Query(ctx,
		`SELECT doc FROM `+s.table+` WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return err
		}
		if err := each(payload); err != nil {
			return err
		}
	}
	return rows.Err()
}

// update rewrites the document; returns pgx.ErrNoRows semantics via count
func (s *docStore) update(ctx context.Context, id string, doc any) (bool, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return false, fmt.Errorf("failed to encode %s record: %w", s.table, err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE `+s.table+` SET doc = $2 WHERE id = $1`, id, payload)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *docStore) delete(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM `+s.table+` WHERE id = $1`, id)
	return err
}
