package main

import (
	"fmt"
	"os"

	"calcutta-auction/internal/broadcast"
	"calcutta-auction/internal/config"
	"calcutta-auction/internal/engine"
	model "calcutta-auction/internal/models"
	"calcutta-auction/internal/repository"
	"calcutta-auction/internal/server"
	"calcutta-auction/utils"

	"github.com/shopspring/decimal"
)

func main() {

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLogLevel(cfg.LogLevel)

	repo := repository.NewMemoryRepo()
	hub := broadcast.NewHub()
	auctionEngine := engine.NewAuctionEngine(repo, hub, cfg.Server.TokenSecret)

	if cfg.DemoSeed {
		seedDemoEvent(auctionEngine)
	}

	router := server.SetupRouter(auctionEngine, hub, cfg.Server.BaseURL)

	utils.Info("Starting calcutta auction server", map[string]any{"addr": cfg.Addr()})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// seedDemoEvent creates a sample playoff event so the API is usable out of the box
func seedDemoEvent(auctionEngine *engine.AuctionEngine) {
	rs := model.RuleSet{
		AnteCents:                 2500,
		MinIncrementCents:         100,
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

	players := []model.Player{
		{Name: "Alice", Handle: "alice"},
		{Name: "Bob", Handle: "bob"},
		{Name: "Carol", Handle: "carol"},
		{Name: "Dave", Handle: "dave"},
	}

	ev, err := auctionEngine.CreateEvent("NFL Playoffs Calcutta", "demo-seed", rs, players)
	if err != nil {
		utils.Error("Failed to seed demo event", map[string]any{"error": err.Error()})
		return
	}

	teamNames := []string{
		"Chiefs", "Bills", "Ravens", "Texans", "Browns", "Dolphins", "Steelers",
		"49ers", "Cowboys", "Lions", "Buccaneers", "Eagles", "Rams", "Packers",
	}
	teams := make([]model.Team, 0, len(teamNames))
	for _, name := range teamNames {
		teams = append(teams, model.Team{Name: name})
	}
	if _, err := auctionEngine.ImportTeams(ev.EventID, teams); err != nil {
		utils.Error("Failed to seed demo teams", map[string]any{"error": err.Error()})
		return
	}
	if _, err := auctionEngine.RandomizeOrder(ev.EventID); err != nil {
		utils.Error("Failed to randomize demo order", map[string]any{"error": err.Error()})
		return
	}

	utils.Info("Seeded demo event", map[string]any{"event_id": ev.EventID, "teams": len(teamNames)})
}
