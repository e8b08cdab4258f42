package resolution

import (
	model "auction-arena/internal/models"
)

// Result carries the mutated copies produced by one resolution pass.
type Result struct {
	Assets []model.Asset
	Teams  []model.Team
	// Voided lists the teams whose wins were annulled by the budget rule.
	Voided []string
}

// Resolve runs the full resolution pass: every asset is cleared at a
// uniform price from the same pre-resolution budget snapshot, then the
// budget-discipline rule is applied across assets. A team whose combined
// clearing cost exceeds its budget loses every win and keeps its budget;
// surviving winners on the same asset keep the already-fixed clearing
// price. Inputs are not mutated.
func Resolve(assets []model.Asset, teams []model.Team, bids map[string]map[string]model.BidEntry) Result {
	outAssets := model.CloneAssets(assets)
	outTeams := model.CloneTeams(teams)

	budgets := make(map[string]int, len(outTeams))
	for i := range outTeams {
		budgets[outTeams[i].TeamID] = outTeams[i].Budget
	}

	// Per-asset uniform-price clearing.
	clearings := make([]AssetClearing, len(outAssets))
	for i := range outAssets {
		asset := &outAssets[i]
		assetBids := bids[asset.AssetID]

		// reveal the sealed ledger on the asset record
		asset.CurrentBids = make(map[string]int, len(assetBids))
		for teamID, entry := range assetBids {
			asset.CurrentBids[teamID] = entry.Amount
		}

		clearing := ClearAsset(*asset, assetBids, budgets)
		clearings[i] = clearing

		if len(clearing.Winners) == 0 {
			asset.Outcome = model.OutcomeNoWinner
			asset.ClearingPrice = 0
			asset.Winners = nil
			continue
		}
		asset.Outcome = model.OutcomeWinners
		asset.ClearingPrice = clearing.ClearingPrice
		asset.Winners = append([]string(nil), clearing.Winners...)
	}

	// Cross-asset totals: one slot costs one clearing price.
	totals := make(map[string]int)
	for _, clearing := range clearings {
		for _, teamID := range clearing.Winners {
			totals[teamID] += clearing.ClearingPrice
		}
	}

	// Budget-discipline pass: all of a team's wins stand, or none do.
	voided := make(map[string]bool)
	var voidedIDs []string
	for i := range outTeams {
		team := &outTeams[i]
		total, won := totals[team.TeamID]
		if !won {
			continue
		}
		if total > team.Budget {
			voided[team.TeamID] = true
			voidedIDs = append(voidedIDs, team.TeamID)
			continue
		}
		team.Budget -= total
		for j := range outAssets {
			for _, winner := range clearings[j].Winners {
				if winner == team.TeamID {
					team.WonAssets = append(team.WonAssets, model.WonAsset{
						AssetName: outAssets[j].Name,
						UnitPrice: clearings[j].ClearingPrice,
						Quantity:  1,
					})
				}
			}
		}
	}

	// Strip voided teams from every pool. An asset left without winners
	// becomes voided at price zero; surviving winners keep the price
	// fixed before the void pass.
	if len(voided) > 0 {
		for i := range outAssets {
			asset := &outAssets[i]
			if asset.Outcome != model.OutcomeWinners {
				continue
			}
			kept := asset.Winners[:0]
			for _, teamID := range asset.Winners {
				if !voided[teamID] {
					kept = append(kept, teamID)
				}
			}
			if len(kept) == 0 {
				asset.Outcome = model.OutcomeVoided
				asset.ClearingPrice = 0
				asset.Winners = nil
				continue
			}
			asset.Winners = kept
		}
	}

	return Result{Assets: outAssets, Teams: outTeams, Voided: voidedIDs}
}
