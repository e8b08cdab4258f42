package history

import (
	"sync"
	"time"

	model "auction-arena/internal/models"
)

// Recorder keeps an append-only log of finished rounds. Entries are deep
// copies: later resets can never mutate what was recorded.
type Recorder struct {
	mu      sync.Mutex
	entries []model.HistoryEntry
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Append snapshots a finished round and returns the stored entry.
func (r *Recorder) Append(durationSec int, assets []model.Asset, teams []model.Team) model.HistoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := model.HistoryEntry{
		SequenceID:  len(r.entries) + 1,
		Timestamp:   time.Now().UTC(),
		DurationSec: durationSec,
		Assets:      model.CloneAssets(assets),
		Teams:       model.CloneTeams(teams),
	}
	r.entries = append(r.entries, entry)
	return entry
}

// Entries returns a copy of the log, oldest first.
func (r *Recorder) Entries() []model.HistoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.HistoryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		cp := e
		cp.Assets = model.CloneAssets(e.Assets)
		cp.Teams = model.CloneTeams(e.Teams)
		out = append(out, cp)
	}
	return out
}

// Len returns the number of recorded rounds.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Restore replaces the log from a persisted snapshot.
func (r *Recorder) Restore(entries []model.HistoryEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = make([]model.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		cp := e
		cp.Assets = model.CloneAssets(e.Assets)
		cp.Teams = model.CloneTeams(e.Teams)
		r.entries = append(r.entries, cp)
	}
}
