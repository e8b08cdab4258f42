package ledger

import (
	"sync"

	model "auction-arena/internal/models"
)

// Ledger holds the current sealed bids for every asset. Each (asset, team)
// pair keeps exactly one entry: resubmitting overwrites the amount and
// assigns a fresh submission sequence, so a revised bid counts as a new
// commitment when ties are broken at resolution.
type Ledger struct {
	mu      sync.RWMutex
	bids    map[string]map[string]model.BidEntry // assetID -> teamID -> entry
	nextSeq uint64
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{
		bids:    make(map[string]map[string]model.BidEntry),
		nextSeq: 1,
	}
}

// Record upserts a team's bid on an asset. Last value wins; validation of
// the amount against asset minimum and team budget happens in the auction
// service before the bid reaches the ledger.
func (l *Ledger) Record(assetID, teamID string, amount int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	byTeam, ok := l.bids[assetID]
	if !ok {
		byTeam = make(map[string]model.BidEntry)
		l.bids[assetID] = byTeam
	}
	byTeam[teamID] = model.BidEntry{Amount: amount, Seq: l.nextSeq}
	l.nextSeq++
}

// BidsFor returns a copy of all current bids for an asset. No side effects.
func (l *Ledger) BidsFor(assetID string) map[string]model.BidEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]model.BidEntry, len(l.bids[assetID]))
	for teamID, entry := range l.bids[assetID] {
		out[teamID] = entry
	}
	return out
}

// AmountsFor returns the team -> amount view of an asset's bids.
func (l *Ledger) AmountsFor(assetID string) map[string]int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]int, len(l.bids[assetID]))
	for teamID, entry := range l.bids[assetID] {
		out[teamID] = entry.Amount
	}
	return out
}

// Clear drops every bid and restarts the sequence counter.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bids = make(map[string]map[string]model.BidEntry)
	l.nextSeq = 1
}

// DropAsset removes all bids for an asset, used when the asset is deleted.
func (l *Ledger) DropAsset(assetID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.bids, assetID)
}

// Snapshot exports the ledger for persistence.
func (l *Ledger) Snapshot() (map[string]map[string]model.BidEntry, uint64) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]map[string]model.BidEntry, len(l.bids))
	for assetID, byTeam := range l.bids {
		cp := make(map[string]model.BidEntry, len(byTeam))
		for teamID, entry := range byTeam {
			cp[teamID] = entry
		}
		out[assetID] = cp
	}
	return out, l.nextSeq
}

// Restore replaces the ledger contents from a persisted snapshot.
func (l *Ledger) Restore(bids map[string]map[string]model.BidEntry, nextSeq uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.bids = make(map[string]map[string]model.BidEntry, len(bids))
	for assetID, byTeam := range bids {
		cp := make(map[string]model.BidEntry, len(byTeam))
		for teamID, entry := range byTeam {
			cp[teamID] = entry
		}
		l.bids[assetID] = cp
	}
	if nextSeq < 1 {
		nextSeq = 1
	}
	l.nextSeq = nextSeq
}
