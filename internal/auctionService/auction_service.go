package auction

import (
	"fmt"
	"sync"
	"time"

	"auction-arena/internal/auctionerrors"
	"auction-arena/internal/clock"
	"auction-arena/internal/history"
	"auction-arena/internal/ledger"
	model "auction-arena/internal/models"
	"auction-arena/internal/repository"
	"auction-arena/internal/resolution"
	"auction-arena/internal/transport"
	"auction-arena/utils"
)

// Broadcaster is the slice of the transport hub the service pushes through.
type Broadcaster interface {
	Broadcast(audience transport.Audience, event string, payload any)
	SendToTeam(teamID, event string, payload any)
}

// Status is the externally visible lifecycle state.
type Status struct {
	Running          bool      `json:"running"`
	SecondsRemaining int       `json:"seconds_remaining"`
	DurationSec      int       `json:"duration_sec"`
	EndTime          time.Time `json:"end_time,omitempty"`
}

// TeamView is the credential-free team shape used in broadcasts.
type TeamView struct {
	TeamID         string           `json:"team_id"`
	Name           string           `json:"name"`
	Budget         int              `json:"budget"`
	StartingBudget int              `json:"starting_budget"`
	WonAssets      []model.WonAsset `json:"won_assets"`
}

// AuctionService is the single writer for all auction state. Every
// transition (start, bid, expiry, force stop, reset) funnels through its
// mutex, so clock callbacks and admin commands can never race on a team's
// budget or an asset's bid map.
type AuctionService struct {
	mu      sync.Mutex
	running bool
	endTime time.Time

	store   *repository.Store
	ledger  *ledger.Ledger
	clock   *clock.Clock
	history *history.Recorder
	hub     Broadcaster
	persist repository.Persister
}

// NewAuctionService wires the lifecycle together. The clock's tick and
// expiry callbacks are routed back into the service so both the natural
// and the forced stop path share one guarded resolve transition.
func NewAuctionService(
	store *repository.Store,
	bidLedger *ledger.Ledger,
	recorder *history.Recorder,
	hub Broadcaster,
	persist repository.Persister,
	duration time.Duration,
) *AuctionService {
	s := &AuctionService{
		store:   store,
		ledger:  bidLedger,
		history: recorder,
		hub:     hub,
		persist: persist,
	}
	s.clock = clock.New(duration, s.onTick, s.onExpire)
	return s
}

// Start opens the auction for bids. Only valid from idle: a resolved
// round must be reset first, otherwise the stale ledger would be cleared
// a second time against the already-deducted budgets.
func (s *AuctionService) Start() (time.Time, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return time.Time{}, fmt.Errorf("service: start auction: %w", auctionerrors.ErrAlreadyRunning)
	}
	if s.resolvedPendingLocked() {
		s.mu.Unlock()
		return time.Time{}, fmt.Errorf("service: start auction: %w", auctionerrors.ErrNeedsReset)
	}
	endTime, err := s.clock.Arm()
	if err != nil {
		s.mu.Unlock()
		return time.Time{}, fmt.Errorf("service: start auction: %w", err)
	}
	s.running = true
	s.endTime = endTime
	s.mu.Unlock()

	utils.Info("auction started", map[string]any{"end_time": endTime.UTC().Format(time.RFC3339)})
	s.hub.Broadcast(transport.AudienceAll, "auction_start", map[string]any{
		"end_time": endTime.UTC().Format(time.RFC3339),
	})
	return endTime, nil
}

// ForceStop ends a running auction immediately and resolves it. Stopping
// an auction that is not running is an explicit conflict, not a no-op.
func (s *AuctionService) ForceStop() error {
	if !s.beginResolve() {
		return fmt.Errorf("service: force stop: %w", auctionerrors.ErrAlreadyStopped)
	}
	utils.Info("auction force-stopped", nil)
	s.resolve()
	return nil
}

// SubmitBid validates and records a team's sealed bid. Last value wins:
// resubmitting overwrites the team's previous bid on that asset.
func (s *AuctionService) SubmitBid(assetID, teamID string, amount int) error {
	s.mu.Lock()
	err := s.submitBidLocked(assetID, teamID, amount)
	s.mu.Unlock()

	if err != nil {
		s.hub.SendToTeam(teamID, "bid_rejected", map[string]any{
			"asset_id": assetID,
			"reason":   err.Error(),
		})
		return err
	}

	// the bid stays sealed from other participants until resolution
	s.hub.SendToTeam(teamID, "bid_accepted", map[string]any{
		"asset_id": assetID,
		"amount":   amount,
	})
	s.hub.Broadcast(transport.AudienceAdmins, "bid_activity", map[string]any{
		"asset_id": assetID,
		"team_id":  teamID,
		"amount":   amount,
	})
	s.saveAsync()
	return nil
}

func (s *AuctionService) submitBidLocked(assetID, teamID string, amount int) error {
	if !s.running {
		return fmt.Errorf("service: submit bid: %w", auctionerrors.ErrAuctionClosed)
	}
	if amount <= 0 {
		return fmt.Errorf("service: submit bid: %w - non-positive amount", auctionerrors.ErrInvalidBid)
	}
	asset, err := s.store.GetAsset(assetID)
	if err != nil {
		return fmt.Errorf("service: submit bid: %w", err)
	}
	team, err := s.store.GetTeam(teamID)
	if err != nil {
		return fmt.Errorf("service: submit bid: %w", err)
	}
	if amount < asset.MinBid {
		return fmt.Errorf("service: submit bid: %w - minimum is %d", auctionerrors.ErrBidBelowMin, asset.MinBid)
	}
	if amount > team.Budget {
		return fmt.Errorf("service: submit bid: %w - budget is %d", auctionerrors.ErrBidOverBudget, team.Budget)
	}
	s.ledger.Record(assetID, teamID, amount)
	return nil
}

// BidsFor returns the current sealed bids for an asset. Admin only.
func (s *AuctionService) BidsFor(assetID string) (map[string]int, error) {
	if _, err := s.store.GetAsset(assetID); err != nil {
		return nil, fmt.Errorf("service: bids for asset: %w", err)
	}
	return s.ledger.AmountsFor(assetID), nil
}

// SetDuration changes the duration of the next run. Rejected while running.
func (s *AuctionService) SetDuration(seconds int) error {
	if seconds <= 0 {
		return fmt.Errorf("service: set duration: %w - must be positive", auctionerrors.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("service: set duration: %w", auctionerrors.ErrRunningLocked)
	}
	if err := s.clock.SetDuration(time.Duration(seconds) * time.Second); err != nil {
		return fmt.Errorf("service: set duration: %w", err)
	}
	return nil
}

// Reset archives the finished round into history, clears all bids and
// outcomes, and restores every team to its starting budget. Idempotent: a
// second reset finds a clean round and records nothing.
func (s *AuctionService) Reset() error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return fmt.Errorf("service: reset: %w", auctionerrors.ErrRunningLocked)
	}

	assets := s.store.Assets()
	teams := s.store.Teams()
	bids, _ := s.ledger.Snapshot()
	if len(assets) > 0 && roundDirty(assets, teams, bids) {
		entry := s.history.Append(int(s.clock.Duration()/time.Second), assets, teams)
		utils.Info("round archived", map[string]any{"sequence_id": entry.SequenceID})
	}
	s.store.ResetRound()
	s.ledger.Clear()
	s.mu.Unlock()

	s.hub.Broadcast(transport.AudienceAll, "auction_reset", map[string]any{})
	s.hub.Broadcast(transport.AudienceAll, "teams_updated", map[string]any{"teams": s.TeamViews()})
	s.saveAsync()
	return nil
}

// Status reports the current lifecycle state.
func (s *AuctionService) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Running:          s.running,
		SecondsRemaining: s.clock.Remaining(),
		DurationSec:      int(s.clock.Duration() / time.Second),
	}
	if s.running {
		st.EndTime = s.endTime.UTC()
	}
	return st
}

// History returns the archived rounds, oldest first.
func (s *AuctionService) History() []model.HistoryEntry {
	return s.history.Entries()
}

// TeamViews returns the credential-free team list for broadcasts and APIs.
func (s *AuctionService) TeamViews() []TeamView {
	teams := s.store.Teams()
	out := make([]TeamView, 0, len(teams))
	for _, t := range teams {
		out = append(out, TeamView{
			TeamID:         t.TeamID,
			Name:           t.Name,
			Budget:         t.Budget,
			StartingBudget: t.StartingBudget,
			WonAssets:      t.WonAssets,
		})
	}
	return out
}

// onTick relays the countdown to everyone once per second.
func (s *AuctionService) onTick(secondsRemaining int) {
	s.hub.Broadcast(transport.AudienceAll, "timer_tick", map[string]any{
		"seconds_remaining": secondsRemaining,
	})
}

// onExpire is the clock's one expiry notification per armed cycle.
func (s *AuctionService) onExpire() {
	if !s.beginResolve() {
		return
	}
	utils.Info("auction expired", nil)
	s.resolve()
}

// beginResolve flips running to false exactly once per round; expiry and
// force stop both pass through here so resolution cannot run twice.
func (s *AuctionService) beginResolve() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return false
	}
	s.running = false
	s.clock.Stop()
	return true
}

// resolve runs the clearing engine over the ledger and publishes results.
func (s *AuctionService) resolve() {
	s.mu.Lock()
	assets := s.store.Assets()
	teams := s.store.Teams()
	bids, _ := s.ledger.Snapshot()

	result := resolution.Resolve(assets, teams, bids)
	s.store.ApplyResolution(result.Assets, result.Teams)
	s.mu.Unlock()

	if len(result.Voided) > 0 {
		utils.Warn("budget rule voided team wins", map[string]any{"teams": result.Voided})
	}
	utils.Info("auction resolved", map[string]any{
		"assets": len(result.Assets),
		"teams":  len(result.Teams),
	})

	s.hub.Broadcast(transport.AudienceAll, "auction_resolved", map[string]any{
		"assets": result.Assets,
	})
	s.hub.Broadcast(transport.AudienceAll, "teams_updated", map[string]any{
		"teams": s.TeamViews(),
	})
	s.saveAsync()
}

// Snapshot exports the full persistable state. Taken under the service
// mutex so a save racing a resolution can never capture an asset's
// outcome without the matching budget deduction.
func (s *AuctionService) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	assets, teams := s.store.Export()
	bids, nextSeq := s.ledger.Snapshot()
	return model.Snapshot{
		Assets:      assets,
		Teams:       teams,
		History:     s.history.Entries(),
		Bids:        bids,
		NextSeq:     nextSeq,
		DurationSec: int(s.clock.Duration() / time.Second),
	}
}

// RestoreSnapshot loads persisted state at boot. The auction always comes
// back idle; outstanding bids and budgets survive the restart.
func (s *AuctionService) RestoreSnapshot(snap model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Restore(snap.Assets, snap.Teams)
	s.ledger.Restore(snap.Bids, snap.NextSeq)
	s.history.Restore(snap.History)
	if snap.DurationSec > 0 {
		// ignore error: the clock is never armed during restore
		_ = s.clock.SetDuration(time.Duration(snap.DurationSec) * time.Second)
	}
}

// saveAsync persists the snapshot without blocking gameplay. Failures are
// logged and otherwise ignored.
func (s *AuctionService) saveAsync() {
	if s.persist == nil {
		return
	}
	snap := s.Snapshot()
	go func() {
		if err := s.persist.Save(snap); err != nil {
			utils.Error("persistence save failed", map[string]any{"error": err.Error()})
		}
	}()
}

// resolvedPendingLocked reports whether the previous round's outcomes
// are still on the books. Outstanding sealed bids alone do not count: a
// snapshot restored mid-round comes back idle with its bids intact and
// may legitimately be started again.
func (s *AuctionService) resolvedPendingLocked() bool {
	for _, a := range s.store.Assets() {
		if a.Outcome != model.OutcomeUnresolved {
			return true
		}
	}
	for _, t := range s.store.Teams() {
		if t.Budget != t.StartingBudget || len(t.WonAssets) > 0 {
			return true
		}
	}
	return false
}

// roundDirty reports whether anything happened since the last reset:
// outstanding bids, resolved outcomes, or budget movement.
func roundDirty(assets []model.Asset, teams []model.Team, bids map[string]map[string]model.BidEntry) bool {
	for _, byTeam := range bids {
		if len(byTeam) > 0 {
			return true
		}
	}
	for _, a := range assets {
		if a.Outcome != model.OutcomeUnresolved {
			return true
		}
	}
	for _, t := range teams {
		if t.Budget != t.StartingBudget || len(t.WonAssets) > 0 {
			return true
		}
	}
	return false
}
