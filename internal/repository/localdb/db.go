// Package localdb implements the domain repositories over a single JSON
// file. Every operation is a full read-modify-write of the serialized
// collection arrays; there is no cross-process locking, which is
// acceptable because local mode assumes a single writer.
package localdb

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/trigenthq/trigent/trigent-backend/internal/domain"
)

// Collection names within the store file
const (
	colUsers       = "users"
	colWorkspaces  = "workspaces"
	colAutomations = "automations"
	colReports     = "reports"
	colSocialPosts = "social_posts"
	colSWOT        = "swot_analyses"
	colCompetitors = "competitor_analyses"
	colGrowthPlans = "growth_plans"
)

// DB is a file-backed document store keyed by collection name
type DB struct {
	path    string
	mu      sync.Mutex
	counter int
}

// Open creates a DB over the given file path. The file is created lazily
// on first write; a missing file reads as an empty store.
func Open(path string) *DB {
	return &DB{path: path}
}

// NewID returns an id that is collision-resistant under rapid sequential
// calls: unix-millis alone would collide within one tick, so a rotating
// counter and random suffix are appended.
func (d *DB) NewID() string {
	d.mu.Lock()
	d.counter = (d.counter + 1) % 1000
	n := d.counter
	d.mu.Unlock()

	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%d-%03d-%s", time.Now().UnixMilli(), n, hex.EncodeToString(buf))
}

type store map[string][]json.RawMessage

// load reads and decodes the whole store file. Decode failure means the
// file was corrupted outside our control and is surfaced as a hard error.
func (d *DB) load() (store, error) {
	data, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return store{}, nil
		}
		return nil, fmt.Errorf("failed to read local store: %w", err)
	}
	if len(data) == 0 {
		return store{}, nil
	}

	var s store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreCorrupted, err)
	}
	return s, nil
}

// save rewrites the whole store file
func (d *DB) save(s store) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode local store: %w", err)
	}
	if err := os.WriteFile(d.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write local store: %w", err)
	}
	return nil
}

// readAll decodes every record in a collection
func readAll[T any](d *DB, collection string) ([]T, error) {
	s, err := d.load()
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(s[collection]))
	for _, raw := range s[collection] {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStoreCorrupted, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// append adds one record to a collection (read, append, full rewrite)
func appendRecord[T any](d *DB, collection string, rec T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, err := d.load()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	s[collection] = append(s[collection], raw)
	return d.save(s)
}

// replaceAll swaps the full contents of a collection
func replaceAll[T any](d *DB, collection string, records []T) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, err := d.load()
	if err != nil {
		return err
	}
	raws := make([]json.RawMessage, len(records))
	for i := range records {
		raw, err := json.Marshal(records[i])
		if err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		raws[i] = raw
	}
	s[collection] = raws
	return d.save(s)
}
