package engine

import (
	"fmt"
	"sort"

	"calcutta-auction/internal/auctionerrors"
	model "calcutta-auction/internal/models"
	"calcutta-auction/internal/token"
)

// LotView is a lot plus its derived remaining time.
type LotView struct {
	model.Lot
	RemainingSeconds int `json:"remaining_seconds"`
}

// EventState is the full presentation snapshot: lots in auction order, the
// derived current lot, and the bid history of the lot on the block.
type EventState struct {
	EventID      string         `json:"event_id"`
	Name         string         `json:"name"`
	Status       string         `json:"status"`
	RuleSet      model.RuleSet  `json:"rule_set"`
	Players      []model.Player `json:"players"`
	Lots         []LotView      `json:"lots"`
	CurrentLotID string         `json:"current_lot_id,omitempty"`
	CurrentBids  []model.Bid    `json:"current_bids"`
	Sales        []model.Sale   `json:"sales"`
}

// State returns a read-only snapshot for presentation. The current lot and
// remaining times are recomputed on every read, never stored.
func (e *AuctionEngine) State(eventID string) (*EventState, error) {
	ev, err := e.repo.GetEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to load event %s: %w", eventID, err)
	}

	now := e.now().UTC()
	lots := make([]LotView, 0, len(ev.Lots))
	for _, lot := range ev.Lots {
		lots = append(lots, LotView{
			Lot:              lot,
			RemainingSeconds: RemainingSeconds(lot.ClosesAt, lot.PausedAt, now),
		})
	}
	sort.SliceStable(lots, func(i, j int) bool {
		return lots[i].OrderIndex < lots[j].OrderIndex
	})

	currentID := currentLotID(ev)
	currentBids := []model.Bid{}
	if current, err := findLot(ev, currentID); err == nil && current.Status == model.LotOpen {
		for _, b := range ev.Bids {
			if b.LotID == currentID {
				currentBids = append(currentBids, b)
			}
		}
		sort.SliceStable(currentBids, func(i, j int) bool {
			return currentBids[i].CreatedAt.After(currentBids[j].CreatedAt)
		})
	}

	sales := make([]model.Sale, 0, len(ev.Sales))
	sales = append(sales, ev.Sales...)
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].FinalizedAt.After(sales[j].FinalizedAt)
	})

	return &EventState{
		EventID:      ev.EventID,
		Name:         ev.Name,
		Status:       ev.Status,
		RuleSet:      ev.RuleSet,
		Players:      ev.Players,
		Lots:         lots,
		CurrentLotID: currentID,
		CurrentBids:  currentBids,
		Sales:        sales,
	}, nil
}

// Event returns a deep-copy snapshot of the whole aggregate, for export and
// reporting collaborators.
func (e *AuctionEngine) Event(eventID string) (*model.Event, error) {
	ev, err := e.repo.GetEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to load event %s: %w", eventID, err)
	}
	return ev, nil
}

// Projection computes the draft payout projection over the sales so far.
func (e *AuctionEngine) Projection(eventID string) (map[string]*PayoutProjection, error) {
	ev, err := e.repo.GetEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to load event %s: %w", eventID, err)
	}
	return ProjectPayouts(ev.RuleSet, ev.Sales, ev.Ledger, ev.Lots), nil
}

// Payouts computes actual per-player payouts from caller-supplied round
// results.
func (e *AuctionEngine) Payouts(eventID string, results model.TeamResults) (map[string]*PlayerPayout, error) {
	ev, err := e.repo.GetEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to load event %s: %w", eventID, err)
	}
	return PayoutsFromResults(ev.RuleSet, ev.Players, ev.Sales, ev.Ledger, ev.Lots, results), nil
}

// EventSummary bundles the reporting views for dashboards.
type EventSummary struct {
	Summary  ResultsSummary   `json:"summary"`
	Owners   []OwnerBreakdown `json:"owners"`
	TopSales []TopSale        `json:"top_sales"`
}

// Summary builds the event-wide sale statistics and owner breakdowns.
func (e *AuctionEngine) Summary(eventID string) (*EventSummary, error) {
	ev, err := e.repo.GetEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to load event %s: %w", eventID, err)
	}
	return &EventSummary{
		Summary:  BuildResultsSummary(ev),
		Owners:   BuildOwnerBreakdown(ev),
		TopSales: BuildTopSales(ev, 3),
	}, nil
}

// PlayerLink is one player's shareable invite link.
type PlayerLink struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Handle   string `json:"handle,omitempty"`
	Token    string `json:"token"`
	URL      string `json:"url"`
}

// PlayerLinks issues an invite link per player, bound to the event by HMAC.
func (e *AuctionEngine) PlayerLinks(eventID, baseURL string) ([]PlayerLink, error) {
	ev, err := e.repo.GetEvent(eventID)
	if err != nil {
		return nil, fmt.Errorf("engine: failed to load event %s: %w", eventID, err)
	}

	links := make([]PlayerLink, 0, len(ev.Players))
	for _, p := range ev.Players {
		tok := token.Generate(e.tokenSecret, ev.EventID, p.PlayerID)
		links = append(links, PlayerLink{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Handle:   p.Handle,
			Token:    tok,
			URL:      fmt.Sprintf("%s/audience/%s?playerId=%s&token=%s", baseURL, ev.EventID, p.PlayerID, tok),
		})
	}
	return links, nil
}

// ValidatePlayerToken checks an invite token for a known player of the
// event.
func (e *AuctionEngine) ValidatePlayerToken(eventID, playerID, presented string) (bool, error) {
	ev, err := e.repo.GetEvent(eventID)
	if err != nil {
		return false, fmt.Errorf("engine: failed to load event %s: %w", eventID, err)
	}
	found := false
	for _, p := range ev.Players {
		if p.PlayerID == playerID {
			found = true
			break
		}
	}
	if !found {
		return false, fmt.Errorf("engine: player %s: %w", playerID, auctionerrors.ErrPlayerNotFound)
	}
	return token.Validate(e.tokenSecret, eventID, playerID, presented), nil
}
