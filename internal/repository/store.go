package repository

import (
	"fmt"
	"sync"

	"auction-arena/internal/auctionerrors"
	model "auction-arena/internal/models"
)

// Store is the concurrency-safe owner of the asset catalog and the team
// roster. Admin CRUD goes through here and may only touch identity-level
// fields; budgets, bids and outcomes are written exclusively via
// ApplyResolution and ResetRound on behalf of the auction service.
type Store struct {
	mu       sync.RWMutex
	assets   map[string]*model.Asset
	teams    map[string]*model.Team
	assetIDs []string // insertion order, keeps listings and broadcasts stable
	teamIDs  []string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		assets: make(map[string]*model.Asset),
		teams:  make(map[string]*model.Team),
	}
}

// Assets returns deep copies of all assets in insertion order.
func (s *Store) Assets() []model.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Asset, 0, len(s.assetIDs))
	for _, id := range s.assetIDs {
		out = append(out, s.assets[id].Clone())
	}
	return out
}

// Teams returns deep copies of all teams in insertion order.
func (s *Store) Teams() []model.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Team, 0, len(s.teamIDs))
	for _, id := range s.teamIDs {
		out = append(out, s.teams[id].Clone())
	}
	return out
}

// AssetCount reports the catalog size.
func (s *Store) AssetCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.assetIDs)
}

// GetAsset returns a copy of one asset.
func (s *Store) GetAsset(assetID string) (model.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[assetID]
	if !ok {
		return model.Asset{}, fmt.Errorf("get asset %s: %w", assetID, auctionerrors.ErrAssetNotFound)
	}
	return a.Clone(), nil
}

// GetTeam returns a copy of one team.
func (s *Store) GetTeam(teamID string) (model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[teamID]
	if !ok {
		return model.Team{}, fmt.Errorf("get team %s: %w", teamID, auctionerrors.ErrTeamNotFound)
	}
	return t.Clone(), nil
}

// FindTeamByAccessCode resolves a websocket handshake token to a team.
func (s *Store) FindTeamByAccessCode(code string) (model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if code != "" {
		for _, id := range s.teamIDs {
			if s.teams[id].AccessCode == code {
				return s.teams[id].Clone(), nil
			}
		}
	}
	return model.Team{}, fmt.Errorf("find team by access code: %w", auctionerrors.ErrTeamNotFound)
}

// AddAsset inserts a new asset with clean outcome fields.
func (s *Store) AddAsset(a model.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.assets[a.AssetID]; exists {
		return fmt.Errorf("add asset %s: %w", a.AssetID, auctionerrors.ErrDuplicateID)
	}
	a.CurrentBids = make(map[string]int)
	a.Outcome = model.OutcomeUnresolved
	a.ClearingPrice = 0
	a.Winners = nil
	cp := a.Clone()
	s.assets[a.AssetID] = &cp
	s.assetIDs = append(s.assetIDs, a.AssetID)
	return nil
}

// UpdateAsset mutates the CRUD-owned fields of an asset. Bids, outcome and
// clearing price are left untouched.
func (s *Store) UpdateAsset(assetID, name, category string, minBid, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.assets[assetID]
	if !ok {
		return fmt.Errorf("update asset %s: %w", assetID, auctionerrors.ErrAssetNotFound)
	}
	a.Name = name
	a.Category = category
	a.MinBid = minBid
	a.Quantity = quantity
	return nil
}

// DeleteAsset removes an asset from the catalog.
func (s *Store) DeleteAsset(assetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.assets[assetID]; !ok {
		return fmt.Errorf("delete asset %s: %w", assetID, auctionerrors.ErrAssetNotFound)
	}
	delete(s.assets, assetID)
	s.assetIDs = removeID(s.assetIDs, assetID)
	return nil
}

// AddTeam inserts a new team with its budget set to the starting budget.
func (s *Store) AddTeam(t model.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.teams[t.TeamID]; exists {
		return fmt.Errorf("add team %s: %w", t.TeamID, auctionerrors.ErrDuplicateID)
	}
	t.Budget = t.StartingBudget
	t.WonAssets = nil
	cp := t.Clone()
	s.teams[t.TeamID] = &cp
	s.teamIDs = append(s.teamIDs, t.TeamID)
	return nil
}

// UpdateTeam mutates the CRUD-owned fields of a team. The live budget is
// only refreshed when the team has not spent anything yet; otherwise the
// new starting budget takes effect on the next reset.
func (s *Store) UpdateTeam(teamID, name, login, accessCode string, startingBudget int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.teams[teamID]
	if !ok {
		return fmt.Errorf("update team %s: %w", teamID, auctionerrors.ErrTeamNotFound)
	}
	untouched := t.Budget == t.StartingBudget && len(t.WonAssets) == 0
	t.Name = name
	t.Login = login
	t.AccessCode = accessCode
	t.StartingBudget = startingBudget
	if untouched {
		t.Budget = startingBudget
	}
	return nil
}

// DeleteTeam removes a team from the roster.
func (s *Store) DeleteTeam(teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return fmt.Errorf("delete team %s: %w", teamID, auctionerrors.ErrTeamNotFound)
	}
	delete(s.teams, teamID)
	s.teamIDs = removeID(s.teamIDs, teamID)
	return nil
}

// ApplyResolution replaces assets and teams with the copies the resolution
// engine produced. Entries whose ID is no longer in the store are skipped.
func (s *Store) ApplyResolution(assets []model.Asset, teams []model.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range assets {
		if _, ok := s.assets[a.AssetID]; ok {
			cp := a.Clone()
			s.assets[a.AssetID] = &cp
		}
	}
	for _, t := range teams {
		if _, ok := s.teams[t.TeamID]; ok {
			cp := t.Clone()
			s.teams[t.TeamID] = &cp
		}
	}
}

// ResetRound clears every asset's bids and outcome and restores every team
// to its starting budget with an empty won list. Safe to call repeatedly.
func (s *Store) ResetRound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.assets {
		a.CurrentBids = make(map[string]int)
		a.Outcome = model.OutcomeUnresolved
		a.ClearingPrice = 0
		a.Winners = nil
	}
	for _, t := range s.teams {
		t.Budget = t.StartingBudget
		t.WonAssets = nil
	}
}

// Export copies the catalog and roster into a snapshot in insertion order.
func (s *Store) Export() ([]model.Asset, []model.Team) {
	return s.Assets(), s.Teams()
}

// Restore replaces the full store contents from a persisted snapshot.
func (s *Store) Restore(assets []model.Asset, teams []model.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.assets = make(map[string]*model.Asset, len(assets))
	s.assetIDs = s.assetIDs[:0]
	for _, a := range assets {
		cp := a.Clone()
		if cp.CurrentBids == nil {
			cp.CurrentBids = make(map[string]int)
		}
		if cp.Outcome == "" {
			cp.Outcome = model.OutcomeUnresolved
		}
		s.assets[a.AssetID] = &cp
		s.assetIDs = append(s.assetIDs, a.AssetID)
	}

	s.teams = make(map[string]*model.Team, len(teams))
	s.teamIDs = s.teamIDs[:0]
	for _, t := range teams {
		cp := t.Clone()
		s.teams[t.TeamID] = &cp
		s.teamIDs = append(s.teamIDs, t.TeamID)
	}
}

func removeID(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
