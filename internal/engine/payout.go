package engine

import (
	"math"
	"sort"

	model "calcutta-auction/internal/models"

	"github.com/shopspring/decimal"
)

// TeamProjection is what one owned team could earn round by round.
type TeamProjection struct {
	TeamID             string           `json:"team_id"`
	TeamName           string           `json:"team_name,omitempty"`
	AmountCentsByRound map[string]int64 `json:"amount_cents_by_round"`
}

// PayoutProjection is the per-player draft projection: what every owned team
// could still earn if it wins every remaining round.
type PayoutProjection struct {
	PlayerID            string                    `json:"player_id"`
	TotalPotentialCents int64                     `json:"total_potential_cents"`
	ByTeam              map[string]TeamProjection `json:"by_team"`
}

// PlayerPayout is the actual per-player payout once round results are known.
type PlayerPayout struct {
	PlayerID           string           `json:"player_id"`
	WinningsByRound    map[string]int64 `json:"winnings_by_round"`
	TotalWinningsCents int64            `json:"total_winnings_cents"`
	SpentAnteCents     int64            `json:"spent_ante_cents"`
	SpentBidsCents     int64            `json:"spent_bids_cents"`
	NetCents           int64            `json:"net_cents"`
}

// TotalPotCents is the sum of winning sale prices, plus antes when the rule
// set includes them in the pot.
func TotalPotCents(sales []model.Sale, ledger []model.LedgerEntry, includeAnte bool) int64 {
	var pot int64
	for _, s := range sales {
		pot += s.AmountCents
	}
	if includeAnte {
		for _, le := range ledger {
			if le.Type == model.EntryAnte {
				pot += le.AmountCents
			}
		}
	}
	return pot
}

// roundShareCents computes floor(base * fraction) exactly. Each round's share
// is floored independently; sums of floors are not floors of sums, and that
// cent-level behavior is intentional.
func roundShareCents(baseCents int64, fraction decimal.Decimal) int64 {
	return decimal.NewFromInt(baseCents).Mul(fraction).Floor().IntPart()
}

// payoutBaseCents picks the per-sale payout base for the configured basis:
// the lot's own sale price, or the single event-wide pot.
func payoutBaseCents(rs model.RuleSet, sale model.Sale, potCents int64) int64 {
	if rs.PayoutBasis == model.BasisTotalPot {
		return potCents
	}
	return sale.AmountCents
}

// ProjectPayouts computes the draft projection for every sale so far: for
// each owned team and every configured round, floor(base * allocation),
// summed per team and then per player.
func ProjectPayouts(rs model.RuleSet, sales []model.Sale, ledger []model.LedgerEntry, lots []model.Lot) map[string]*PayoutProjection {
	pot := TotalPotCents(sales, ledger, rs.IncludeAnteInPot)
	teamByLot := teamIndex(lots)

	projections := make(map[string]*PayoutProjection)
	for _, sale := range sales {
		if sale.PlayerID == "" {
			continue // orphaned record
		}
		proj, ok := projections[sale.PlayerID]
		if !ok {
			proj = &PayoutProjection{
				PlayerID: sale.PlayerID,
				ByTeam:   make(map[string]TeamProjection),
			}
			projections[sale.PlayerID] = proj
		}

		team := teamByLot[sale.LotID]
		teamID := team.TeamID
		if teamID == "" {
			teamID = sale.LotID
		}
		tp := TeamProjection{
			TeamID:             teamID,
			TeamName:           team.Name,
			AmountCentsByRound: make(map[string]int64, len(rs.RoundAllocations)),
		}

		base := payoutBaseCents(rs, sale, pot)
		var cumulative int64
		for _, alloc := range rs.RoundAllocations {
			amount := roundShareCents(base, alloc.Fraction)
			tp.AmountCentsByRound[alloc.Round] = amount
			cumulative += amount
		}
		proj.ByTeam[teamID] = tp
		proj.TotalPotentialCents += cumulative
	}
	return projections
}

// PayoutsFromResults computes actual payouts: only rounds whose outcome is
// exactly "W" contribute, with the same floor-per-round formula as the
// projection. Spend is summed directly from the ledger and sale records,
// independent of the round results.
func PayoutsFromResults(rs model.RuleSet, players []model.Player, sales []model.Sale, ledger []model.LedgerEntry, lots []model.Lot, results model.TeamResults) map[string]*PlayerPayout {
	pot := TotalPotCents(sales, ledger, rs.IncludeAnteInPot)
	teamByLot := teamIndex(lots)

	payouts := make(map[string]*PlayerPayout, len(players))
	for _, p := range players {
		payouts[p.PlayerID] = &PlayerPayout{
			PlayerID:        p.PlayerID,
			WinningsByRound: make(map[string]int64),
		}
	}
	ensure := func(playerID string) *PlayerPayout {
		pp, ok := payouts[playerID]
		if !ok {
			pp = &PlayerPayout{PlayerID: playerID, WinningsByRound: make(map[string]int64)}
			payouts[playerID] = pp
		}
		return pp
	}

	for _, sale := range sales {
		if sale.PlayerID == "" {
			continue
		}
		pp := ensure(sale.PlayerID)
		pp.SpentBidsCents += sale.AmountCents

		team := teamByLot[sale.LotID]
		teamID := team.TeamID
		if teamID == "" {
			teamID = sale.LotID
		}
		outcomes := results[teamID]
		base := payoutBaseCents(rs, sale, pot)
		for _, alloc := range rs.RoundAllocations {
			if outcomes[alloc.Round] != model.OutcomeWin {
				continue
			}
			amount := roundShareCents(base, alloc.Fraction)
			pp.WinningsByRound[alloc.Round] += amount
			pp.TotalWinningsCents += amount
		}
	}

	for _, le := range ledger {
		if le.Type == model.EntryAnte && le.PlayerID != "" {
			ensure(le.PlayerID).SpentAnteCents += le.AmountCents
		}
	}

	for _, pp := range payouts {
		pp.NetCents = pp.TotalWinningsCents - (pp.SpentAnteCents + pp.SpentBidsCents)
	}
	return payouts
}

// ResultsSummary aggregates event-wide sale statistics for dashboards.
type ResultsSummary struct {
	AllSold         bool   `json:"all_sold"`
	TotalTeams      int    `json:"total_teams"`
	SoldCount       int    `json:"sold_count"`
	TotalSalesCents int64  `json:"total_sales_cents"`
	AnteCents       int64  `json:"ante_cents"`
	PotCents        int64  `json:"pot_cents"`
	AllBidsCents    int64  `json:"all_bids_cents"`
	AvgSaleCents    *int64 `json:"avg_sale_cents"`
	MaxSaleCents    *int64 `json:"max_sale_cents"`
	MinSaleCents    *int64 `json:"min_sale_cents"`
}

// BuildResultsSummary computes pot and sale statistics. The pot is the sum of
// winning sale prices (never all bids), plus ante when configured.
func BuildResultsSummary(ev *model.Event) ResultsSummary {
	var totalSales, allBids, ante int64
	for _, s := range ev.Sales {
		totalSales += s.AmountCents
	}
	for _, b := range ev.Bids {
		allBids += b.AmountCents
	}
	for _, le := range ev.Ledger {
		if le.Type == model.EntryAnte {
			ante += le.AmountCents
		}
	}

	summary := ResultsSummary{
		TotalTeams:      len(ev.Lots),
		SoldCount:       len(ev.Sales),
		AllSold:         len(ev.Lots) > 0 && len(ev.Sales) == len(ev.Lots),
		TotalSalesCents: totalSales,
		AnteCents:       ante,
		PotCents:        totalSales,
		AllBidsCents:    allBids,
	}
	if ev.RuleSet.IncludeAnteInPot {
		summary.PotCents += ante
	}
	if len(ev.Sales) > 0 {
		var max, min int64
		for i, s := range ev.Sales {
			if i == 0 || s.AmountCents > max {
				max = s.AmountCents
			}
			if i == 0 || s.AmountCents < min {
				min = s.AmountCents
			}
		}
		avg := int64(math.Round(float64(totalSales) / float64(len(ev.Sales))))
		summary.AvgSaleCents = &avg
		summary.MaxSaleCents = &max
		summary.MinSaleCents = &min
	}
	return summary
}

// OwnerBreakdown lists what one player bought and spent.
type OwnerBreakdown struct {
	PlayerID        string      `json:"player_id"`
	Name            string      `json:"name"`
	Handle          string      `json:"handle,omitempty"`
	TotalSpendCents int64       `json:"total_spend_cents"`
	TeamCount       int         `json:"team_count"`
	Teams           []OwnedTeam `json:"teams"`
}

// OwnedTeam is one purchase inside an owner breakdown.
type OwnedTeam struct {
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
	AmountCents int64  `json:"amount_cents"`
}

// BuildOwnerBreakdown returns one entry per player, biggest spender first.
func BuildOwnerBreakdown(ev *model.Event) []OwnerBreakdown {
	teamByLot := teamIndex(ev.Lots)

	byPlayer := make(map[string]*OwnerBreakdown, len(ev.Players))
	order := make([]string, 0, len(ev.Players))
	for _, p := range ev.Players {
		byPlayer[p.PlayerID] = &OwnerBreakdown{
			PlayerID: p.PlayerID,
			Name:     p.Name,
			Handle:   p.Handle,
			Teams:    []OwnedTeam{},
		}
		order = append(order, p.PlayerID)
	}

	for _, sale := range ev.Sales {
		owner, ok := byPlayer[sale.PlayerID]
		if !ok {
			continue
		}
		team := teamByLot[sale.LotID]
		owner.TotalSpendCents += sale.AmountCents
		owner.TeamCount++
		owner.Teams = append(owner.Teams, OwnedTeam{
			TeamID:      team.TeamID,
			TeamName:    team.Name,
			AmountCents: sale.AmountCents,
		})
	}

	out := make([]OwnerBreakdown, 0, len(order))
	for _, id := range order {
		out = append(out, *byPlayer[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSpendCents > out[j].TotalSpendCents
	})
	return out
}

// TopSale is one of the highest-priced sales of the event.
type TopSale struct {
	TeamName    string `json:"team_name"`
	PlayerName  string `json:"player_name"`
	AmountCents int64  `json:"amount_cents"`
	FinalizedAt string `json:"finalized_at"`
}

// BuildTopSales returns the limit highest sales, most expensive first.
func BuildTopSales(ev *model.Event, limit int) []TopSale {
	if limit <= 0 {
		limit = 3
	}
	teamByLot := teamIndex(ev.Lots)
	nameByPlayer := make(map[string]string, len(ev.Players))
	for _, p := range ev.Players {
		nameByPlayer[p.PlayerID] = p.Name
	}

	sales := append([]model.Sale(nil), ev.Sales...)
	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].AmountCents > sales[j].AmountCents
	})
	if len(sales) > limit {
		sales = sales[:limit]
	}

	out := make([]TopSale, 0, len(sales))
	for _, s := range sales {
		out = append(out, TopSale{
			TeamName:    teamByLot[s.LotID].Name,
			PlayerName:  nameByPlayer[s.PlayerID],
			AmountCents: s.AmountCents,
			FinalizedAt: s.FinalizedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out
}

func teamIndex(lots []model.Lot) map[string]model.Team {
	idx := make(map[string]model.Team, len(lots))
	for _, lot := range lots {
		idx[lot.LotID] = lot.Team
	}
	return idx
}
