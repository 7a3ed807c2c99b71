package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Lot lifecycle states. A lot only ever moves pending -> open -> sold;
// undo is the single exception and moves sold back to open.
const (
	LotPending = "pending"
	LotOpen    = "open"
	LotSold    = "sold"
)

// Ledger entry types
const (
	EntryAnte     = "ante"
	EntrySale     = "sale"
	EntryReversal = "reversal"
)

// Payout basis values
const (
	BasisTeamPrice = "team_price"
	BasisTotalPot  = "total_pot"
)

// Event lifecycle states
const (
	EventDraft = "draft"
	EventLive  = "live"
)

// OutcomeWin is the only round outcome that pays out.
const OutcomeWin = "W"

// RoundAllocation is the fraction of the payout base awarded for one named
// tournament round. Order matters, so allocations are a slice, not a map.
type RoundAllocation struct {
	Round    string          `json:"round"`
	Fraction decimal.Decimal `json:"fraction"`
}

// RuleSet holds the static auction parameters for an event. Immutable once
// the event starts.
type RuleSet struct {
	AnteCents                 int64             `json:"ante_cents"`
	MinIncrementCents         int64             `json:"min_increment_cents"`
	AuctionTimerSeconds       int               `json:"auction_timer_seconds"`
	AntiSnipeExtensionSeconds int               `json:"anti_snipe_extension_seconds"`
	IntermissionSeconds       int               `json:"intermission_seconds"`
	RoundAllocations          []RoundAllocation `json:"round_allocations"`
	PayoutBasis               string            `json:"payout_basis"`
	IncludeAnteInPot          bool              `json:"include_ante_in_pot"`
}

// Player represents a participant in the auction
type Player struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Handle   string `json:"handle,omitempty"`
}

// Team is the real-world side of a lot
type Team struct {
	TeamID  string `json:"team_id"`
	Name    string `json:"name"`
	Seed    int    `json:"seed,omitempty"`
	Region  string `json:"region,omitempty"`
	Bracket string `json:"bracket,omitempty"`
}

// Lot wraps one team with its auction order and mutable bid/timer state.
// ClosesAt is only meaningful while Status is open; PausedAt set means the
// timer is frozen.
type Lot struct {
	LotID                string     `json:"lot_id"`
	Team                 Team       `json:"team"`
	OrderIndex           int        `json:"order_index"`
	Status               string     `json:"status"`
	CurrentBidCents      int64      `json:"current_bid_cents"`
	HighBidderID         string     `json:"high_bidder_id,omitempty"`
	AcceptedBidderID     string     `json:"accepted_bidder_id,omitempty"`
	OpenedAt             *time.Time `json:"opened_at,omitempty"`
	ClosesAt             *time.Time `json:"closes_at,omitempty"`
	PausedAt             *time.Time `json:"paused_at,omitempty"`
	PauseDurationSeconds int        `json:"pause_duration_seconds"`
}

// Bid is an immutable record of one accepted bid. Bids are only ever deleted
// as the side effect of undoing the most recent one.
type Bid struct {
	BidID       string    `json:"bid_id"`
	LotID       string    `json:"lot_id"`
	PlayerID    string    `json:"player_id"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// Sale is created exactly once per lot that completes; deleted only by the
// undo of that specific sale.
type Sale struct {
	SaleID      string    `json:"sale_id"`
	LotID       string    `json:"lot_id"`
	PlayerID    string    `json:"player_id"`
	AmountCents int64     `json:"amount_cents"`
	FinalizedAt time.Time `json:"finalized_at"`
}

// LedgerEntry is one money movement: ante charge, sale charge, or reversal.
// Reversals carry the negated amount of the sale they undo and reference it
// via RefID.
type LedgerEntry struct {
	EntryID     string    `json:"entry_id"`
	PlayerID    string    `json:"player_id,omitempty"`
	Type        string    `json:"type"`
	AmountCents int64     `json:"amount_cents"`
	RefID       string    `json:"ref_id,omitempty"`
	Note        string    `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Event is the aggregate the store transacts on: rules, roster, lots, and
// the append-only bid/sale/ledger history.
type Event struct {
	EventID string        `json:"event_id"`
	Name    string        `json:"name"`
	RngSeed string        `json:"rng_seed,omitempty"`
	Status  string        `json:"status"`
	RuleSet RuleSet       `json:"rule_set"`
	Players []Player      `json:"players"`
	Lots    []Lot         `json:"lots"`
	Bids    []Bid         `json:"bids"`
	Sales   []Sale        `json:"sales"`
	Ledger  []LedgerEntry `json:"ledger"`
}

// TeamResults maps teamID -> round name -> outcome for actual payouts.
type TeamResults map[string]map[string]string
