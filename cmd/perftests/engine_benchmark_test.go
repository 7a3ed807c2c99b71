package perftests

import (
	"fmt"
	"sync/atomic"
	"testing"

	"calcutta-auction/internal/engine"
	model "calcutta-auction/internal/models"
	"calcutta-auction/internal/repository"

	"github.com/shopspring/decimal"
)

func benchRuleSet() model.RuleSet {
	return model.RuleSet{
		AnteCents:                 2000,
		MinIncrementCents:         1,
		AuctionTimerSeconds:       45,
		AntiSnipeExtensionSeconds: 10,
		IntermissionSeconds:       10,
		PayoutBasis:               model.BasisTotalPot,
		IncludeAnteInPot:          true,
		RoundAllocations: []model.RoundAllocation{
			{Round: "wildcard", Fraction: decimal.NewFromFloat(0.1)},
			{Round: "divisional", Fraction: decimal.NewFromFloat(0.2)},
			{Round: "conference", Fraction: decimal.NewFromFloat(0.3)},
			{Round: "superbowl", Fraction: decimal.NewFromFloat(0.4)},
		},
	}
}

func benchEvent(b *testing.B, teamCount int) (*engine.AuctionEngine, *model.Event, []model.Lot) {
	repo := repository.NewMemoryRepo()
	e := engine.NewAuctionEngine(repo, nil, "bench-secret")

	ev, err := e.CreateEvent("Benchmark Calcutta", "bench-seed", benchRuleSet(), []model.Player{
		{Name: "Alice"}, {Name: "Bob"}, {Name: "Carol"}, {Name: "Dave"},
	})
	if err != nil {
		b.Fatalf("failed to create event: %v", err)
	}

	teams := make([]model.Team, 0, teamCount)
	for i := 0; i < teamCount; i++ {
		teams = append(teams, model.Team{Name: fmt.Sprintf("Team %d", i)})
	}
	lots, err := e.ImportTeams(ev.EventID, teams)
	if err != nil {
		b.Fatalf("failed to import teams: %v", err)
	}
	return e, ev, lots
}

// Benchmark 1: PlaceBid - Single Lot (High Contention)
func Benchmark_PlaceBid_SharedLot(b *testing.B) {
	e, ev, lots := benchEvent(b, 1)
	alice := ev.Players[0].PlayerID

	if _, err := e.OpenLot(ev.EventID, lots[0].LotID, alice, 1); err != nil {
		b.Fatalf("failed to open lot: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 1
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			next := atomic.AddInt64(&lastBid, 1)
			_, _, _ = e.PlaceBid(ev.EventID, lots[0].LotID, alice, next)
		}
	})
}

// Benchmark 2: State - Read-Heavy Snapshot
func Benchmark_State(b *testing.B) {
	e, ev, lots := benchEvent(b, 14)
	alice := ev.Players[0].PlayerID

	if _, err := e.OpenLot(ev.EventID, lots[0].LotID, alice, 1); err != nil {
		b.Fatalf("failed to open lot: %v", err)
	}
	for i := int64(2); i <= 100; i++ {
		if _, _, err := e.PlaceBid(ev.EventID, lots[0].LotID, alice, i); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := e.State(ev.EventID); err != nil {
				b.Fatalf("failed to read state: %v", err)
			}
		}
	})
}

// Benchmark 3: Mixed Workload (Readers + Bidders on one event)
func Benchmark_MixedWorkload(b *testing.B) {
	e, ev, lots := benchEvent(b, 14)
	alice := ev.Players[0].PlayerID

	if _, err := e.OpenLot(ev.EventID, lots[0].LotID, alice, 1); err != nil {
		b.Fatalf("failed to open lot: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 1
	var ops int64
	// Ratio: 70% readers, 30% bidders.
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if n := atomic.AddInt64(&ops, 1); n%10 < 3 {
				next := atomic.AddInt64(&lastBid, 1)
				_, _, _ = e.PlaceBid(ev.EventID, lots[0].LotID, alice, next)
			} else {
				_, _ = e.State(ev.EventID)
			}
		}
	})
}

// Benchmark 4: Payout Projection over a fully sold board
func Benchmark_Projection(b *testing.B) {
	e, ev, lots := benchEvent(b, 14)

	for i, lot := range lots {
		buyer := ev.Players[i%len(ev.Players)].PlayerID
		if _, err := e.OpenLot(ev.EventID, lot.LotID, buyer, int64(1000+i*100)); err != nil {
			b.Fatalf("failed to open lot: %v", err)
		}
		if _, _, err := e.AcceptBid(ev.EventID, lot.LotID); err != nil {
			b.Fatalf("failed to accept bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := e.Projection(ev.EventID); err != nil {
			b.Fatalf("failed to project payouts: %v", err)
		}
	}
}

// Benchmark 5: Accept then Undo cycle
func Benchmark_AcceptUndoCycle(b *testing.B) {
	e, ev, lots := benchEvent(b, 1)
	alice := ev.Players[0].PlayerID

	if _, err := e.OpenLot(ev.EventID, lots[0].LotID, alice, 100); err != nil {
		b.Fatalf("failed to open lot: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := e.AcceptBid(ev.EventID, lots[0].LotID); err != nil {
			b.Fatalf("failed to accept bid: %v", err)
		}
		if _, err := e.UndoLast(ev.EventID); err != nil {
			b.Fatalf("failed to undo: %v", err)
		}
	}
}
