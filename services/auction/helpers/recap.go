package helpers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"time"

	model "calcutta-auction/internal/models"
)

// BuildRecapCSV renders the end-of-event recap: a per-player settlement
// block followed by the full bid ledger, with the winning bid of each sold
// lot check-marked.
func BuildRecapCSV(ev *model.Event) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	nameByPlayer := make(map[string]string, len(ev.Players))
	for _, p := range ev.Players {
		nameByPlayer[p.PlayerID] = p.Name
	}
	teamByLot := make(map[string]string, len(ev.Lots))
	for _, lot := range ev.Lots {
		teamByLot[lot.LotID] = lot.Team.Name
	}

	purchases := make(map[string]int64)
	antes := make(map[string]int64)
	teamsWon := make(map[string][]string)
	for _, sale := range ev.Sales {
		purchases[sale.PlayerID] += sale.AmountCents
		teamsWon[sale.PlayerID] = append(teamsWon[sale.PlayerID], teamByLot[sale.LotID])
	}
	for _, le := range ev.Ledger {
		if le.Type == model.EntryAnte && le.PlayerID != "" {
			antes[le.PlayerID] += le.AmountCents
		}
	}

	if err := w.Write([]string{"Player", "Handle", "Teams Won", "Total Spent", "Ante Paid", "Net Amount Owed"}); err != nil {
		return nil, fmt.Errorf("recap: %w", err)
	}
	for _, p := range ev.Players {
		spent := purchases[p.PlayerID]
		ante := antes[p.PlayerID]
		row := []string{
			p.Name,
			p.Handle,
			strings.Join(teamsWon[p.PlayerID], "; "),
			dollars(spent),
			dollars(ante),
			dollars(spent + ante),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("recap: %w", err)
		}
	}

	// Blank row so the bid ledger reads as its own block.
	if err := w.Write([]string{""}); err != nil {
		return nil, fmt.Errorf("recap: %w", err)
	}

	winning := winningBidIDs(ev)
	if err := w.Write([]string{"Time", "Player", "Team", "Amount", "Winning"}); err != nil {
		return nil, fmt.Errorf("recap: %w", err)
	}
	bids := append([]model.Bid(nil), ev.Bids...)
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].CreatedAt.Before(bids[j].CreatedAt)
	})
	for _, bid := range bids {
		mark := ""
		if _, ok := winning[bid.BidID]; ok {
			mark = "x"
		}
		row := []string{
			bid.CreatedAt.UTC().Format(time.RFC3339),
			nameByPlayer[bid.PlayerID],
			teamByLot[bid.LotID],
			dollars(bid.AmountCents),
			mark,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("recap: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("recap: %w", err)
	}
	return buf.Bytes(), nil
}

// winningBidIDs finds, per sale, the most recent bid matching the sale's
// lot, player, and amount.
func winningBidIDs(ev *model.Event) map[string]struct{} {
	ids := make(map[string]struct{}, len(ev.Sales))
	for _, sale := range ev.Sales {
		bestIdx := -1
		for i, bid := range ev.Bids {
			if bid.LotID != sale.LotID || bid.PlayerID != sale.PlayerID || bid.AmountCents != sale.AmountCents {
				continue
			}
			if bestIdx == -1 || !bid.CreatedAt.Before(ev.Bids[bestIdx].CreatedAt) {
				bestIdx = i
			}
		}
		if bestIdx != -1 {
			ids[ev.Bids[bestIdx].BidID] = struct{}{}
		}
	}
	return ids
}

func dollars(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}
