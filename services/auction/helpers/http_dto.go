package helpers

import (
	model "calcutta-auction/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs

type RoundAllocationRequest struct {
	Round    string  `json:"round" binding:"required"`
	Fraction float64 `json:"fraction" binding:"gte=0,lte=1"`
}

type RuleSetRequest struct {
	AnteCents                 int64                    `json:"ante_cents"`
	MinIncrementCents         int64                    `json:"min_increment_cents" binding:"required,gt=0"`
	AuctionTimerSeconds       int                      `json:"auction_timer_seconds" binding:"required,gt=0"`
	AntiSnipeExtensionSeconds int                      `json:"anti_snipe_extension_seconds"`
	IntermissionSeconds       int                      `json:"intermission_seconds"`
	RoundAllocations          []RoundAllocationRequest `json:"round_allocations" binding:"required,min=1,dive"`
	PayoutBasis               string                   `json:"payout_basis"`
	IncludeAnteInPot          *bool                    `json:"include_ante_in_pot"`
}

type PlayerRequest struct {
	Name   string `json:"name" binding:"required"`
	Handle string `json:"handle"`
}

type CreateEventRequest struct {
	Name    string          `json:"name" binding:"required"`
	RngSeed string          `json:"rng_seed"`
	RuleSet RuleSetRequest  `json:"rule_set" binding:"required"`
	Players []PlayerRequest `json:"players" binding:"required,min=1,dive"`
}

type TeamRequest struct {
	Name    string `json:"name" binding:"required"`
	Seed    int    `json:"seed"`
	Region  string `json:"region"`
	Bracket string `json:"bracket"`
}

type ImportTeamsRequest struct {
	Teams []TeamRequest `json:"teams" binding:"required,min=1,dive"`
}

type OpenLotRequest struct {
	OpenerID        string `json:"opener_id"`
	OpeningBidCents int64  `json:"opening_bid_cents"`
}

type PlaceBidRequest struct {
	PlayerID    string `json:"player_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
}

type PayoutsRequest struct {
	Results model.TeamResults `json:"results" binding:"required"`
}

type BidResponse struct {
	BidID       string `json:"bid_id"`
	LotID       string `json:"lot_id"`
	PlayerID    string `json:"player_id"`
	AmountCents int64  `json:"amount_cents"`
	ClosesAt    string `json:"closes_at"`
	CreatedAt   string `json:"created_at"`
}

type SaleResponse struct {
	SaleID      string `json:"sale_id"`
	LotID       string `json:"lot_id"`
	PlayerID    string `json:"player_id"`
	AmountCents int64  `json:"amount_cents"`
	FinalizedAt string `json:"finalized_at"`
	NextLotID   string `json:"next_lot_id,omitempty"`
}

// Intermission default applied when the request omits the field.
const defaultIntermissionSeconds = 10

// ToRuleSet converts the request DTO into the domain rule set, applying the
// documented defaults for omitted fields.
func (r RuleSetRequest) ToRuleSet() model.RuleSet {
	rs := model.RuleSet{
		AnteCents:                 r.AnteCents,
		MinIncrementCents:         r.MinIncrementCents,
		AuctionTimerSeconds:       r.AuctionTimerSeconds,
		AntiSnipeExtensionSeconds: r.AntiSnipeExtensionSeconds,
		IntermissionSeconds:       r.IntermissionSeconds,
		PayoutBasis:               r.PayoutBasis,
		IncludeAnteInPot:          true,
	}
	if rs.IntermissionSeconds == 0 {
		rs.IntermissionSeconds = defaultIntermissionSeconds
	}
	if rs.PayoutBasis == "" {
		rs.PayoutBasis = model.BasisTotalPot
	}
	if r.IncludeAnteInPot != nil {
		rs.IncludeAnteInPot = *r.IncludeAnteInPot
	}
	for _, alloc := range r.RoundAllocations {
		rs.RoundAllocations = append(rs.RoundAllocations, model.RoundAllocation{
			Round:    alloc.Round,
			Fraction: decimal.NewFromFloat(alloc.Fraction),
		})
	}
	return rs
}

// ToPlayers converts player request DTOs to domain players (IDs are assigned
// by the engine).
func ToPlayers(reqs []PlayerRequest) []model.Player {
	players := make([]model.Player, 0, len(reqs))
	for _, p := range reqs {
		players = append(players, model.Player{Name: p.Name, Handle: p.Handle})
	}
	return players
}

// ToTeams converts team request DTOs to domain teams.
func ToTeams(reqs []TeamRequest) []model.Team {
	teams := make([]model.Team, 0, len(reqs))
	for _, t := range reqs {
		teams = append(teams, model.Team{Name: t.Name, Seed: t.Seed, Region: t.Region, Bracket: t.Bracket})
	}
	return teams
}
