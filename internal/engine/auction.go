package engine

import (
	"fmt"
	"time"

	"calcutta-auction/internal/auctionerrors"
	model "calcutta-auction/internal/models"
	"calcutta-auction/utils"
)

// bidTooLowError carries enough context for a client to self-correct.
func bidTooLowError(currentBidCents, minIncrementCents, minimumCents int64) error {
	return fmt.Errorf("%w - bid must be at least $%.2f (current bid: $%.2f, minimum increment: $%.2f)",
		auctionerrors.ErrBidTooLow,
		float64(minimumCents)/100, float64(currentBidCents)/100, float64(minIncrementCents)/100)
}

// OpenLot moves a pending lot to open. An opening bid is optional; when
// supplied it must clear the same minimum as any other bid against a zero
// current bid, and the full auction timer starts. Without one the lot gets a
// short fixed window for presentation.
func (e *AuctionEngine) OpenLot(eventID, lotID, openerID string, openingBidCents int64) (*model.Lot, error) {
	var opened model.Lot
	err := e.repo.UpdateEvent(eventID, func(ev *model.Event) error {
		lot, err := findLot(ev, lotID)
		if err != nil {
			return err
		}
		if lot.Status != model.LotPending {
			return fmt.Errorf("%w - lot %s is %s, want pending", auctionerrors.ErrInvalidTransition, lotID, lot.Status)
		}

		now := e.now().UTC()
		lot.Status = model.LotOpen
		lot.OpenedAt = &now

		windowSeconds := defaultOpenWindowSeconds
		if openerID != "" {
			minimum := ev.RuleSet.MinIncrementCents
			if openingBidCents < minimum {
				return bidTooLowError(0, ev.RuleSet.MinIncrementCents, minimum)
			}
			ev.Bids = append(ev.Bids, model.Bid{
				BidID:       utils.GenerateID(),
				LotID:       lot.LotID,
				PlayerID:    openerID,
				AmountCents: openingBidCents,
				CreatedAt:   now,
			})
			lot.CurrentBidCents = openingBidCents
			lot.HighBidderID = openerID
			windowSeconds = ev.RuleSet.AuctionTimerSeconds
		}
		closes := now.Add(time.Duration(windowSeconds) * time.Second)
		lot.ClosesAt = &closes

		ev.Status = model.EventLive
		opened = *lot
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("engine: failed to open lot %s: %w", lotID, err)
	}

	e.publisher.Publish(eventID, "lot_opened", map[string]any{
		"lot_id":    opened.LotID,
		"closes_at": opened.ClosesAt.UTC().Format(time.RFC3339),
	})
	return &opened, nil
}

// PlaceBid runs the admission protocol: the lot must be open and the amount
// must clear current bid plus the minimum increment. An accepted bid inside
// the anti-snipe window pushes the deadline forward by the extension. The
// store transaction makes the read-validate-write atomic, so two concurrent
// bids on one lot apply in a total order.
func (e *AuctionEngine) PlaceBid(eventID, lotID, playerID string, amountCents int64) (*model.Bid, *model.Lot, error) {
	if playerID == "" {
		return nil, nil, fmt.Errorf("engine: %w - missing player ID", auctionerrors.ErrInvalidBid)
	}

	var (
		placed   model.Bid
		after    model.Lot
		extended bool
	)
	err := e.repo.UpdateEvent(eventID, func(ev *model.Event) error {
		lot, err := findLot(ev, lotID)
		if err != nil {
			return err
		}
		if lot.Status != model.LotOpen {
			return fmt.Errorf("%w - lot %s is %s", auctionerrors.ErrLotNotOpen, lotID, lot.Status)
		}

		current := lot.CurrentBidCents
		if current < 0 {
			current = 0
		}
		minimum := current + ev.RuleSet.MinIncrementCents
		if amountCents < minimum {
			return bidTooLowError(lot.CurrentBidCents, ev.RuleSet.MinIncrementCents, minimum)
		}

		now := e.now().UTC()
		placed = model.Bid{
			BidID:       utils.GenerateID(),
			LotID:       lot.LotID,
			PlayerID:    playerID,
			AmountCents: amountCents,
			CreatedAt:   now,
		}
		ev.Bids = append(ev.Bids, placed)
		lot.CurrentBidCents = amountCents
		lot.HighBidderID = playerID

		// Extension is computed against the current deadline, never now +
		// full timer, so repeated late bids only nudge the close forward.
		closesAtMs := now.UnixMilli()
		if lot.ClosesAt != nil {
			closesAtMs = lot.ClosesAt.UnixMilli()
		}
		snipe := ev.RuleSet.AntiSnipeExtensionSeconds
		shouldExtend, newClosesAtMs := ComputeAntiSnipeExtension(now.UnixMilli(), closesAtMs, snipe, snipe)
		if shouldExtend {
			closes := time.UnixMilli(newClosesAtMs).UTC()
			lot.ClosesAt = &closes
			extended = true
		}

		after = *lot
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("engine: failed to place bid on lot %s by player %s: %w", lotID, playerID, err)
	}

	e.publisher.Publish(eventID, "bid_placed", map[string]any{
		"lot_id":       after.LotID,
		"player_id":    playerID,
		"amount_cents": amountCents,
		"closes_at":    after.ClosesAt.UTC().Format(time.RFC3339),
		"extended":     extended,
	})
	return &placed, &after, nil
}

// AcceptBid finalizes the sale of an open lot to its current high bidder:
// one Sale, one sale ledger entry, lot marked sold. Returns the sale and an
// advisory next-lot hint; nothing opens the next lot automatically.
func (e *AuctionEngine) AcceptBid(eventID, lotID string) (*model.Sale, string, error) {
	var (
		sale   model.Sale
		nextID string
	)
	err := e.repo.UpdateEvent(eventID, func(ev *model.Event) error {
		lot, err := findLot(ev, lotID)
		if err != nil {
			return err
		}
		if lot.Status != model.LotOpen {
			return fmt.Errorf("%w - lot %s is %s", auctionerrors.ErrLotNotOpen, lotID, lot.Status)
		}
		if lot.HighBidderID == "" {
			return fmt.Errorf("%w - lot %s has no bids", auctionerrors.ErrNoBidToAccept, lotID)
		}

		now := e.now().UTC()
		sale = model.Sale{
			SaleID:      utils.GenerateID(),
			LotID:       lot.LotID,
			PlayerID:    lot.HighBidderID,
			AmountCents: lot.CurrentBidCents,
			FinalizedAt: now,
		}
		ev.Sales = append(ev.Sales, sale)
		ev.Ledger = append(ev.Ledger, model.LedgerEntry{
			EntryID:     utils.GenerateID(),
			PlayerID:    sale.PlayerID,
			Type:        model.EntrySale,
			AmountCents: sale.AmountCents,
			RefID:       sale.SaleID,
			Note:        fmt.Sprintf("Sale for lot %s", lot.LotID),
			CreatedAt:   now,
		})

		lot.Status = model.LotSold
		lot.AcceptedBidderID = lot.HighBidderID
		lot.PausedAt = nil

		nextID = nextPendingLotID(ev)
		return nil
	})
	if err != nil {
		return nil, "", fmt.Errorf("engine: failed to accept bid on lot %s: %w", lotID, err)
	}

	e.publisher.Publish(eventID, "lot_sold", map[string]any{
		"lot_id":       sale.LotID,
		"sale_id":      sale.SaleID,
		"player_id":    sale.PlayerID,
		"amount_cents": sale.AmountCents,
		"next_lot_id":  nextID,
	})
	return &sale, nextID, nil
}

// TogglePause pauses a running lot timer or resumes a paused one. The lot
// must be open. Expired timers resume into one anti-snipe window instead of
// a zero or negative remainder.
func (e *AuctionEngine) TogglePause(eventID, lotID string) (string, *model.Lot, error) {
	var (
		action string
		after  model.Lot
	)
	err := e.repo.UpdateEvent(eventID, func(ev *model.Event) error {
		lot, err := findLot(ev, lotID)
		if err != nil {
			return err
		}
		if lot.Status != model.LotOpen {
			return fmt.Errorf("%w - lot %s is %s, must be open to pause or resume", auctionerrors.ErrLotNotOpen, lotID, lot.Status)
		}
		if lot.ClosesAt == nil {
			return fmt.Errorf("%w - lot %s has no closing time", auctionerrors.ErrInvalidTransition, lotID)
		}

		ts := TimerState{
			ClosesAt:             *lot.ClosesAt,
			PausedAt:             lot.PausedAt,
			PauseDurationSeconds: lot.PauseDurationSeconds,
		}
		ts, action = TogglePauseTimer(ts, e.now().UTC(), ev.RuleSet.AntiSnipeExtensionSeconds)

		closes := ts.ClosesAt
		lot.ClosesAt = &closes
		lot.PausedAt = ts.PausedAt
		lot.PauseDurationSeconds = ts.PauseDurationSeconds

		after = *lot
		return nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("engine: failed to toggle pause on lot %s: %w", lotID, err)
	}

	payload := map[string]any{
		"lot_id":                 after.LotID,
		"closes_at":              after.ClosesAt.UTC().Format(time.RFC3339),
		"pause_duration_seconds": after.PauseDurationSeconds,
	}
	if after.PausedAt != nil {
		payload["paused_at"] = after.PausedAt.UTC().Format(time.RFC3339)
	}
	e.publisher.Publish(eventID, "timer_"+action, payload)
	return action, &after, nil
}

// UndoResult describes the single action an undo reversed.
type UndoResult struct {
	Type                   string `json:"type"` // "sale" or "bid"
	RefID                  string `json:"ref_id"`
	LotID                  string `json:"lot_id"`
	ShouldBecomeCurrentLot bool   `json:"should_become_current_lot,omitempty"`
}

// UndoLast reverses the single most recent action across the whole event,
// sale or bid, whichever actually happened last. One merged time-ordered
// view decides which; repeated calls unwind history strictly in reverse.
// Undo never cascades.
func (e *AuctionEngine) UndoLast(eventID string) (*UndoResult, error) {
	var result UndoResult
	err := e.repo.UpdateEvent(eventID, func(ev *model.Event) error {
		saleIdx := latestSaleIndex(ev.Sales)
		bidIdx := latestBidIndex(ev.Bids)

		if saleIdx == -1 && bidIdx == -1 {
			return auctionerrors.ErrNothingToUndo
		}

		// A sale finalizes after the bid that produced it, so on a timestamp
		// tie the sale is the more recent action.
		if saleIdx != -1 && (bidIdx == -1 || !ev.Sales[saleIdx].FinalizedAt.Before(ev.Bids[bidIdx].CreatedAt)) {
			return e.undoSale(ev, saleIdx, &result)
		}
		return e.undoBid(ev, bidIdx, &result)
	})
	if err != nil {
		return nil, fmt.Errorf("engine: failed to undo last action for event %s: %w", eventID, err)
	}

	e.publisher.Publish(eventID, "undo_last", map[string]any{
		"type":                      result.Type,
		"ref_id":                    result.RefID,
		"lot_id":                    result.LotID,
		"should_become_current_lot": result.ShouldBecomeCurrentLot,
	})
	return &result, nil
}

// undoSale reverses a finalized sale: compensating ledger entry, sale
// deleted, lot reopened carrying the bid state it sold with. All inside the
// caller's transaction so a crash cannot separate the three.
func (e *AuctionEngine) undoSale(ev *model.Event, saleIdx int, result *UndoResult) error {
	sale := ev.Sales[saleIdx]
	lot, err := findLot(ev, sale.LotID)
	if err != nil {
		return err
	}

	ev.Ledger = append(ev.Ledger, model.LedgerEntry{
		EntryID:     utils.GenerateID(),
		PlayerID:    sale.PlayerID,
		Type:        model.EntryReversal,
		AmountCents: -sale.AmountCents,
		RefID:       sale.SaleID,
		Note:        fmt.Sprintf("Undo sale %s", sale.SaleID),
		CreatedAt:   e.now().UTC(),
	})
	ev.Sales = append(ev.Sales[:saleIdx], ev.Sales[saleIdx+1:]...)

	lot.Status = model.LotOpen
	lot.CurrentBidCents = sale.AmountCents
	lot.HighBidderID = sale.PlayerID
	lot.AcceptedBidderID = ""

	// Was this the globally most recent sale? Then the reopened lot should
	// be presented as current again.
	mostRecent := true
	for _, other := range ev.Sales {
		if other.FinalizedAt.After(sale.FinalizedAt) {
			mostRecent = false
			break
		}
	}

	result.Type = "sale"
	result.RefID = sale.SaleID
	result.LotID = sale.LotID
	result.ShouldBecomeCurrentLot = mostRecent
	return nil
}

// undoBid deletes the most recent bid and rolls the lot's bid fields back to
// the next most recent remaining bid, or to empty when none remain.
func (e *AuctionEngine) undoBid(ev *model.Event, bidIdx int, result *UndoResult) error {
	bid := ev.Bids[bidIdx]
	lot, err := findLot(ev, bid.LotID)
	if err != nil {
		return err
	}
	if lot.Status != model.LotOpen {
		return fmt.Errorf("%w - lot %s is %s", auctionerrors.ErrCannotUndoBid, lot.LotID, lot.Status)
	}

	ev.Bids = append(ev.Bids[:bidIdx], ev.Bids[bidIdx+1:]...)

	prevIdx := -1
	for i := range ev.Bids {
		if ev.Bids[i].LotID != lot.LotID {
			continue
		}
		if prevIdx == -1 || !ev.Bids[i].CreatedAt.Before(ev.Bids[prevIdx].CreatedAt) {
			prevIdx = i
		}
	}
	if prevIdx != -1 {
		lot.CurrentBidCents = ev.Bids[prevIdx].AmountCents
		lot.HighBidderID = ev.Bids[prevIdx].PlayerID
	} else {
		lot.CurrentBidCents = 0
		lot.HighBidderID = ""
	}
	lot.AcceptedBidderID = ""

	result.Type = "bid"
	result.RefID = bid.BidID
	result.LotID = bid.LotID
	return nil
}

func latestSaleIndex(sales []model.Sale) int {
	best := -1
	for i := range sales {
		if best == -1 || !sales[i].FinalizedAt.Before(sales[best].FinalizedAt) {
			best = i
		}
	}
	return best
}

func latestBidIndex(bids []model.Bid) int {
	best := -1
	for i := range bids {
		if best == -1 || !bids[i].CreatedAt.Before(bids[best].CreatedAt) {
			best = i
		}
	}
	return best
}
