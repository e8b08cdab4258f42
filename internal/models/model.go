package models

import "time"

// Outcome describes how an asset ended up after a resolution pass.
type Outcome string

const (
	OutcomeUnresolved Outcome = "unresolved"
	OutcomeWinners    Outcome = "winners"
	OutcomeNoWinner   Outcome = "no_winner"
	OutcomeVoided     Outcome = "voided"
)

// Asset represents one lot in the auction catalog. Quantity is the number
// of identical units on offer; every winner pays the same clearing price.
type Asset struct {
	AssetID       string         `json:"asset_id"`
	Name          string         `json:"name"`
	Category      string         `json:"category"`
	MinBid        int            `json:"min_bid"`
	Quantity      int            `json:"quantity"`
	CurrentBids   map[string]int `json:"current_bids"` // team_id -> latest amount, revealed at resolution
	Outcome       Outcome        `json:"outcome"`
	ClearingPrice int            `json:"clearing_price"`
	Winners       []string       `json:"winners"` // one team_id per winning slot
}

// WonAsset is one winning slot recorded on a team after resolution.
type WonAsset struct {
	AssetName string `json:"asset_name"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// Team represents a bidding team. Budget and WonAssets are owned by the
// auction service; admin CRUD may only touch identity and credential fields.
type Team struct {
	TeamID         string     `json:"team_id"`
	Name           string     `json:"name"`
	Login          string     `json:"login"`
	AccessCode     string     `json:"access_code"`
	Budget         int        `json:"budget"`
	StartingBudget int        `json:"starting_budget"`
	WonAssets      []WonAsset `json:"won_assets"`
}

// HistoryEntry is an immutable snapshot of a finished round, taken on reset.
type HistoryEntry struct {
	SequenceID  int       `json:"sequence_id"`
	Timestamp   time.Time `json:"timestamp"`
	DurationSec int       `json:"duration_sec"`
	Assets      []Asset   `json:"assets"`
	Teams       []Team    `json:"teams"`
}

// BidEntry is a ledger bid together with its submission sequence. The
// sequence breaks ties deterministically and is persisted so a reloaded
// run resumes with the same ordering.
type BidEntry struct {
	Amount int    `json:"amount"`
	Seq    uint64 `json:"seq"`
}

// Snapshot is the full persistable state of the server.
type Snapshot struct {
	Assets      []Asset                        `json:"assets"`
	Teams       []Team                         `json:"teams"`
	History     []HistoryEntry                 `json:"history"`
	Bids        map[string]map[string]BidEntry `json:"bids"` // asset_id -> team_id
	NextSeq     uint64                         `json:"next_seq"`
	DurationSec int                            `json:"duration_sec"`
}

// Clone returns a deep copy of the asset.
func (a Asset) Clone() Asset {
	out := a
	if a.CurrentBids != nil {
		out.CurrentBids = make(map[string]int, len(a.CurrentBids))
		for k, v := range a.CurrentBids {
			out.CurrentBids[k] = v
		}
	}
	out.Winners = append([]string(nil), a.Winners...)
	return out
}

// Clone returns a deep copy of the team.
func (t Team) Clone() Team {
	out := t
	out.WonAssets = append([]WonAsset(nil), t.WonAssets...)
	return out
}

// CloneAssets deep-copies a slice of assets.
func CloneAssets(assets []Asset) []Asset {
	out := make([]Asset, 0, len(assets))
	for _, a := range assets {
		out = append(out, a.Clone())
	}
	return out
}

// CloneTeams deep-copies a slice of teams.
func CloneTeams(teams []Team) []Team {
	out := make([]Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.Clone())
	}
	return out
}
