package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	model "auction-arena/internal/models"
)

// Persister is the storage interface the auction service saves through.
// Saves are best effort: a failed save is logged by the caller and never
// interrupts gameplay.
type Persister interface {
	Load() (*model.Snapshot, error)
	Save(snapshot model.Snapshot) error
}

// FilePersister stores the full server snapshot as one JSON file.
type FilePersister struct {
	mu   sync.Mutex
	path string
}

// NewFilePersister creates a persister writing to the given path.
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Load reads the snapshot file. A missing file is not an error: it returns
// (nil, nil) so the caller can fall back to seeded defaults.
func (p *FilePersister) Load() (*model.Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("persistence: read %s: %w", p.path, err)
	}

	var snap model.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("persistence: decode %s: %w", p.path, err)
	}
	return &snap, nil
}

// Save writes the snapshot via a temp file and rename so a crash mid-write
// never leaves a truncated state file behind.
func (p *FilePersister) Save(snapshot model.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("persistence: encode snapshot: %w", err)
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("persistence: create %s: %w", dir, err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("persistence: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("persistence: rename %s: %w", tmp, err)
	}
	return nil
}
