package auction

import (
	"fmt"

	"auction-arena/internal/auctionerrors"
	model "auction-arena/internal/models"
	"auction-arena/internal/transport"
	"auction-arena/utils"
)

// Admin CRUD over the catalog and roster. Every mutation is rejected while
// a round is running and only ever touches identity-level fields; budgets,
// bids and outcomes stay owned by the resolution path.

// Assets lists the full catalog, including outcome fields.
func (s *AuctionService) Assets() []model.Asset {
	return s.store.Assets()
}

// Teams lists the full roster, including credentials. Admin only; use
// TeamViews for anything that reaches participants.
func (s *AuctionService) Teams() []model.Team {
	return s.store.Teams()
}

// AddAsset creates a catalog entry with a generated ID.
func (s *AuctionService) AddAsset(name, category string, minBid, quantity int) (model.Asset, error) {
	if err := s.guardIdle("add asset"); err != nil {
		return model.Asset{}, err
	}
	if name == "" || minBid < 0 || quantity < 1 {
		return model.Asset{}, fmt.Errorf("service: add asset: %w", auctionerrors.ErrInvalidInput)
	}

	asset := model.Asset{
		AssetID:  utils.GenerateID(),
		Name:     name,
		Category: category,
		MinBid:   minBid,
		Quantity: quantity,
	}
	if err := s.store.AddAsset(asset); err != nil {
		return model.Asset{}, fmt.Errorf("service: add asset: %w", err)
	}
	s.catalogChanged()
	stored, err := s.store.GetAsset(asset.AssetID)
	if err != nil {
		return model.Asset{}, fmt.Errorf("service: add asset: %w", err)
	}
	return stored, nil
}

// UpdateAsset mutates the CRUD-owned fields of an asset.
func (s *AuctionService) UpdateAsset(assetID, name, category string, minBid, quantity int) (model.Asset, error) {
	if err := s.guardIdle("update asset"); err != nil {
		return model.Asset{}, err
	}
	if name == "" || minBid < 0 || quantity < 1 {
		return model.Asset{}, fmt.Errorf("service: update asset: %w", auctionerrors.ErrInvalidInput)
	}
	if err := s.store.UpdateAsset(assetID, name, category, minBid, quantity); err != nil {
		return model.Asset{}, fmt.Errorf("service: update asset: %w", err)
	}
	s.catalogChanged()
	asset, err := s.store.GetAsset(assetID)
	if err != nil {
		return model.Asset{}, fmt.Errorf("service: update asset: %w", err)
	}
	return asset, nil
}

// DeleteAsset removes an asset and any sealed bids on it.
func (s *AuctionService) DeleteAsset(assetID string) error {
	if err := s.guardIdle("delete asset"); err != nil {
		return err
	}
	if err := s.store.DeleteAsset(assetID); err != nil {
		return fmt.Errorf("service: delete asset: %w", err)
	}
	s.ledger.DropAsset(assetID)
	s.catalogChanged()
	return nil
}

// AddTeam creates a team with a generated ID and its budget set to the
// starting budget.
func (s *AuctionService) AddTeam(name, login, accessCode string, startingBudget int) (model.Team, error) {
	if err := s.guardIdle("add team"); err != nil {
		return model.Team{}, err
	}
	if name == "" || startingBudget < 0 {
		return model.Team{}, fmt.Errorf("service: add team: %w", auctionerrors.ErrInvalidInput)
	}

	team := model.Team{
		TeamID:         utils.GenerateID(),
		Name:           name,
		Login:          login,
		AccessCode:     accessCode,
		StartingBudget: startingBudget,
	}
	if err := s.store.AddTeam(team); err != nil {
		return model.Team{}, fmt.Errorf("service: add team: %w", err)
	}
	s.catalogChanged()
	stored, err := s.store.GetTeam(team.TeamID)
	if err != nil {
		return model.Team{}, fmt.Errorf("service: add team: %w", err)
	}
	return stored, nil
}

// UpdateTeam mutates the CRUD-owned fields of a team.
func (s *AuctionService) UpdateTeam(teamID, name, login, accessCode string, startingBudget int) (model.Team, error) {
	if err := s.guardIdle("update team"); err != nil {
		return model.Team{}, err
	}
	if name == "" || startingBudget < 0 {
		return model.Team{}, fmt.Errorf("service: update team: %w", auctionerrors.ErrInvalidInput)
	}
	if err := s.store.UpdateTeam(teamID, name, login, accessCode, startingBudget); err != nil {
		return model.Team{}, fmt.Errorf("service: update team: %w", err)
	}
	s.catalogChanged()
	team, err := s.store.GetTeam(teamID)
	if err != nil {
		return model.Team{}, fmt.Errorf("service: update team: %w", err)
	}
	return team, nil
}

// DeleteTeam removes a team from the roster.
func (s *AuctionService) DeleteTeam(teamID string) error {
	if err := s.guardIdle("delete team"); err != nil {
		return err
	}
	if err := s.store.DeleteTeam(teamID); err != nil {
		return fmt.Errorf("service: delete team: %w", err)
	}
	s.catalogChanged()
	return nil
}

func (s *AuctionService) guardIdle(op string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("service: %s: %w", op, auctionerrors.ErrRunningLocked)
	}
	return nil
}

func (s *AuctionService) catalogChanged() {
	s.hub.Broadcast(transport.AudienceAll, "teams_updated", map[string]any{"teams": s.TeamViews()})
	s.saveAsync()
}
