package engine

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"time"

	"calcutta-auction/internal/auctionerrors"
	"calcutta-auction/internal/broadcast"
	model "calcutta-auction/internal/models"
	"calcutta-auction/internal/repository"
	"calcutta-auction/utils"
)

// Lots opened without an opening bid get this fixed presentation window; the
// rule-set timer applies once bidding actually starts.
const defaultOpenWindowSeconds = 30

// AuctionEngine implements the live auction rules over an AuctionStore. All
// mutations run inside store transactions; notifications go out after commit
// and are best-effort.
type AuctionEngine struct {
	repo        repository.AuctionStore
	publisher   broadcast.Publisher
	tokenSecret string
	now         func() time.Time
}

// NewAuctionEngine creates a new AuctionEngine instance
func NewAuctionEngine(repo repository.AuctionStore, publisher broadcast.Publisher, tokenSecret string) *AuctionEngine {
	if publisher == nil {
		publisher = broadcast.NoopPublisher{}
	}
	return &AuctionEngine{
		repo:        repo,
		publisher:   publisher,
		tokenSecret: tokenSecret,
		now:         time.Now,
	}
}

// CreateEvent validates the rule set, registers the players, and charges the
// ante to each of them.
func (e *AuctionEngine) CreateEvent(name, rngSeed string, rs model.RuleSet, players []model.Player) (*model.Event, error) {
	if err := ValidateRuleSet(rs); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if name == "" {
		return nil, fmt.Errorf("engine: %w - event name required", auctionerrors.ErrInvalidRuleSet)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("engine: %w - at least one player required", auctionerrors.ErrInvalidRuleSet)
	}

	now := e.now().UTC()
	if rngSeed == "" {
		rngSeed = fmt.Sprintf("%s-%d-%s", name, now.UnixMilli(), utils.GenerateID()[:8])
	}

	ev := &model.Event{
		EventID: utils.GenerateID(),
		Name:    name,
		RngSeed: rngSeed,
		Status:  model.EventDraft,
		RuleSet: rs,
	}
	for _, p := range players {
		player := model.Player{
			PlayerID: utils.GenerateID(),
			Name:     p.Name,
			Handle:   p.Handle,
		}
		ev.Players = append(ev.Players, player)
		ev.Ledger = append(ev.Ledger, model.LedgerEntry{
			EntryID:     utils.GenerateID(),
			PlayerID:    player.PlayerID,
			Type:        model.EntryAnte,
			AmountCents: rs.AnteCents,
			Note:        "Ante",
			CreatedAt:   now,
		})
	}

	if err := e.repo.CreateEvent(ev); err != nil {
		return nil, fmt.Errorf("engine: failed to create event %s: %w", name, err)
	}
	return ev, nil
}

// ImportTeams replaces the lot list with one pending lot per team, in the
// given order. Only allowed before any bidding has happened.
func (e *AuctionEngine) ImportTeams(eventID string, teams []model.Team) ([]model.Lot, error) {
	if len(teams) == 0 {
		return nil, fmt.Errorf("engine: %w - no teams to import", auctionerrors.ErrInvalidTransition)
	}

	var imported []model.Lot
	err := e.repo.UpdateEvent(eventID, func(ev *model.Event) error {
		if len(ev.Bids) > 0 || len(ev.Sales) > 0 {
			return fmt.Errorf("%w - bidding already started", auctionerrors.ErrInvalidTransition)
		}
		for _, lot := range ev.Lots {
			if lot.Status != model.LotPending {
				return fmt.Errorf("%w - lot %s is %s", auctionerrors.ErrInvalidTransition, lot.LotID, lot.Status)
			}
		}

		ev.Lots = make([]model.Lot, 0, len(teams))
		for i, team := range teams {
			if team.TeamID == "" {
				team.TeamID = utils.GenerateID()
			}
			ev.Lots = append(ev.Lots, model.Lot{
				LotID:      utils.GenerateID(),
				Team:       team,
				OrderIndex: i,
				Status:     model.LotPending,
			})
		}
		imported = append([]model.Lot(nil), ev.Lots...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("engine: failed to import teams for event %s: %w", eventID, err)
	}
	return imported, nil
}

// RandomizeOrder reshuffles the auction order of all lots using the event's
// RNG seed, so the same seed always yields the same order. Only allowed
// while every lot is still pending.
func (e *AuctionEngine) RandomizeOrder(eventID string) ([]model.Lot, error) {
	var shuffled []model.Lot
	err := e.repo.UpdateEvent(eventID, func(ev *model.Event) error {
		for _, lot := range ev.Lots {
			if lot.Status != model.LotPending {
				return fmt.Errorf("%w - lot %s is %s", auctionerrors.ErrInvalidTransition, lot.LotID, lot.Status)
			}
		}

		perm := seededRand(ev.RngSeed).Perm(len(ev.Lots))
		for i := range ev.Lots {
			ev.Lots[i].OrderIndex = perm[i]
		}
		sort.SliceStable(ev.Lots, func(i, j int) bool {
			return ev.Lots[i].OrderIndex < ev.Lots[j].OrderIndex
		})
		shuffled = append([]model.Lot(nil), ev.Lots...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("engine: failed to randomize order for event %s: %w", eventID, err)
	}
	return shuffled, nil
}

// seededRand derives a deterministic source from a seed string.
func seededRand(seed string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(seed))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// findLot returns a pointer into the event's lot slice.
func findLot(ev *model.Event, lotID string) (*model.Lot, error) {
	for i := range ev.Lots {
		if ev.Lots[i].LotID == lotID {
			return &ev.Lots[i], nil
		}
	}
	return nil, fmt.Errorf("lot %s: %w", lotID, auctionerrors.ErrLotNotFound)
}

// nextPendingLotID is the advisory "present this next" hint: the lowest
// orderIndex lot still pending, or empty.
func nextPendingLotID(ev *model.Event) string {
	best := -1
	for i := range ev.Lots {
		if ev.Lots[i].Status != model.LotPending {
			continue
		}
		if best == -1 || ev.Lots[i].OrderIndex < ev.Lots[best].OrderIndex {
			best = i
		}
	}
	if best == -1 {
		return ""
	}
	return ev.Lots[best].LotID
}

// currentLotID derives the "current lot" view: first open lot by orderIndex,
// else first pending. Never stored.
func currentLotID(ev *model.Event) string {
	best := -1
	for i := range ev.Lots {
		if ev.Lots[i].Status != model.LotOpen {
			continue
		}
		if best == -1 || ev.Lots[i].OrderIndex < ev.Lots[best].OrderIndex {
			best = i
		}
	}
	if best != -1 {
		return ev.Lots[best].LotID
	}
	return nextPendingLotID(ev)
}
