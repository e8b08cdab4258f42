package resolution

import (
	"sort"

	model "auction-arena/internal/models"
)

// rankedBid is one valid bid after filtering, carrying the submission
// sequence used for deterministic tie-breaking.
type rankedBid struct {
	TeamID string
	Amount int
	Seq    uint64
}

// AssetClearing is the per-asset outcome of the uniform-price pass,
// computed before the cross-asset budget-void pass runs.
type AssetClearing struct {
	AssetID       string
	Winners       []string // one team_id per winning slot, highest bid first
	ClearingPrice int
}

// filterValidBids drops bids below the asset minimum, bids above the
// bidder's pre-resolution budget, and bids from unknown teams. Budgets are
// always checked against the same snapshot taken before any deduction, so
// clearing order across assets cannot change eligibility.
func filterValidBids(asset model.Asset, bids map[string]model.BidEntry, budgets map[string]int) []rankedBid {
	valid := make([]rankedBid, 0, len(bids))
	for teamID, entry := range bids {
		budget, known := budgets[teamID]
		if !known {
			// team deleted after bidding: skip, never crash
			continue
		}
		if entry.Amount < asset.MinBid || entry.Amount > budget {
			continue
		}
		valid = append(valid, rankedBid{TeamID: teamID, Amount: entry.Amount, Seq: entry.Seq})
	}
	return valid
}

// rankBids orders valid bids highest first. Equal amounts are ordered by
// earliest submission sequence, so ties resolve deterministically in favor
// of the team that committed to that amount first.
func rankBids(bids []rankedBid) {
	sort.Slice(bids, func(i, j int) bool {
		if bids[i].Amount != bids[j].Amount {
			return bids[i].Amount > bids[j].Amount
		}
		return bids[i].Seq < bids[j].Seq
	})
}

// ClearAsset runs the uniform-price multi-unit clearing for one asset:
// the top quantity bidders win one unit each and every winner pays the
// lowest winning bid. With fewer valid bids than units, all valid bidders
// win at the lowest valid bid. An empty pool clears at price zero.
func ClearAsset(asset model.Asset, bids map[string]model.BidEntry, budgets map[string]int) AssetClearing {
	valid := filterValidBids(asset, bids, budgets)
	rankBids(valid)

	pool := valid
	if len(pool) > asset.Quantity {
		pool = pool[:asset.Quantity]
	}

	clearing := AssetClearing{AssetID: asset.AssetID}
	if len(pool) == 0 {
		return clearing
	}

	clearing.ClearingPrice = pool[len(pool)-1].Amount
	clearing.Winners = make([]string, 0, len(pool))
	for _, b := range pool {
		clearing.Winners = append(clearing.Winners, b.TeamID)
	}
	return clearing
}
