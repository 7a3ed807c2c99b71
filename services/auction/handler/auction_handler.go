package handler

import (
	"fmt"
	"net/http"
	"time"

	"calcutta-auction/internal/engine"
	model "calcutta-auction/internal/models"
	"calcutta-auction/services/auction/helpers"
	"calcutta-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	CreateEvent(name, rngSeed string, rs model.RuleSet, players []model.Player) (*model.Event, error)
	ImportTeams(eventID string, teams []model.Team) ([]model.Lot, error)
	RandomizeOrder(eventID string) ([]model.Lot, error)
	OpenLot(eventID, lotID, openerID string, openingBidCents int64) (*model.Lot, error)
	PlaceBid(eventID, lotID, playerID string, amountCents int64) (*model.Bid, *model.Lot, error)
	AcceptBid(eventID, lotID string) (*model.Sale, string, error)
	TogglePause(eventID, lotID string) (string, *model.Lot, error)
	UndoLast(eventID string) (*engine.UndoResult, error)
	State(eventID string) (*engine.EventState, error)
	Event(eventID string) (*model.Event, error)
	Projection(eventID string) (map[string]*engine.PayoutProjection, error)
	Payouts(eventID string, results model.TeamResults) (map[string]*engine.PlayerPayout, error)
	Summary(eventID string) (*engine.EventSummary, error)
	PlayerLinks(eventID, baseURL string) ([]engine.PlayerLink, error)
	ValidatePlayerToken(eventID, playerID, token string) (bool, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
	baseURL string
}

func NewAuctionHandler(service AuctionServiceInterface, baseURL string) *AuctionHandler {
	return &AuctionHandler{service: service, baseURL: baseURL}
}

// respondError maps the error, sends the JSON error body, and logs it.
func respondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	if ctx == nil {
		ctx = map[string]any{}
	}
	ctx["error"] = err.Error()
	utils.Warn(handlerName+": request failed", ctx)
}

// CreateEventHandler handles POST /events
func (h *AuctionHandler) CreateEventHandler(c *gin.Context) {
	var req helpers.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateEventHandler", err)
		return
	}

	ev, err := h.service.CreateEvent(req.Name, req.RngSeed, req.RuleSet.ToRuleSet(), helpers.ToPlayers(req.Players))
	if err != nil {
		respondError(c, "CreateEventHandler", err, map[string]any{"name": req.Name})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, ev, "event created successfully")
	helpers.LogSuccess("CreateEventHandler", "event created successfully", map[string]any{
		"event_id": ev.EventID,
		"players":  len(ev.Players),
	})
}

// GetStateHandler handles GET /events/:event_id/state
func (h *AuctionHandler) GetStateHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	state, err := h.service.State(eventID)
	if err != nil {
		respondError(c, "GetStateHandler", err, map[string]any{"event_id": eventID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, state, "state retrieved successfully")
}

// ImportTeamsHandler handles POST /events/:event_id/teams
func (h *AuctionHandler) ImportTeamsHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	var req helpers.ImportTeamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ImportTeamsHandler", err)
		return
	}

	lots, err := h.service.ImportTeams(eventID, helpers.ToTeams(req.Teams))
	if err != nil {
		respondError(c, "ImportTeamsHandler", err, map[string]any{"event_id": eventID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, lots, "teams imported successfully")
	helpers.LogSuccess("ImportTeamsHandler", "teams imported successfully", map[string]any{
		"event_id": eventID,
		"count":    len(lots),
	})
}

// RandomizeOrderHandler handles POST /events/:event_id/randomize
func (h *AuctionHandler) RandomizeOrderHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	lots, err := h.service.RandomizeOrder(eventID)
	if err != nil {
		respondError(c, "RandomizeOrderHandler", err, map[string]any{"event_id": eventID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, lots, "auction order randomized")
	helpers.LogSuccess("RandomizeOrderHandler", "auction order randomized", map[string]any{
		"event_id": eventID,
		"count":    len(lots),
	})
}

// OpenLotHandler handles POST /events/:event_id/lots/:lot_id/open
func (h *AuctionHandler) OpenLotHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	lotID := c.Param("lot_id")

	// Body is optional: opening without a bid is the common path.
	var req helpers.OpenLotRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			helpers.HandleBindError(c, "OpenLotHandler", err)
			return
		}
	}

	lot, err := h.service.OpenLot(eventID, lotID, req.OpenerID, req.OpeningBidCents)
	if err != nil {
		respondError(c, "OpenLotHandler", err, map[string]any{"event_id": eventID, "lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, lot, "lot opened successfully")
	helpers.LogSuccess("OpenLotHandler", "lot opened successfully", map[string]any{
		"event_id": eventID,
		"lot_id":   lotID,
	})
}

// PlaceBidHandler handles POST /events/:event_id/lots/:lot_id/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	lotID := c.Param("lot_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, lot, err := h.service.PlaceBid(eventID, lotID, req.PlayerID, req.AmountCents)
	if err != nil {
		respondError(c, "PlaceBidHandler", err, map[string]any{
			"event_id": eventID, "lot_id": lotID, "player_id": req.PlayerID,
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:       bid.BidID,
		LotID:       bid.LotID,
		PlayerID:    bid.PlayerID,
		AmountCents: bid.AmountCents,
		CreatedAt:   bid.CreatedAt.UTC().Format(time.RFC3339),
	}
	if lot.ClosesAt != nil {
		resp.ClosesAt = lot.ClosesAt.UTC().Format(time.RFC3339)
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":       bid.BidID,
		"lot_id":       lotID,
		"player_id":    req.PlayerID,
		"amount_cents": req.AmountCents,
	})
}

// AcceptBidHandler handles POST /events/:event_id/lots/:lot_id/accept
func (h *AuctionHandler) AcceptBidHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	lotID := c.Param("lot_id")

	sale, nextLotID, err := h.service.AcceptBid(eventID, lotID)
	if err != nil {
		respondError(c, "AcceptBidHandler", err, map[string]any{"event_id": eventID, "lot_id": lotID})
		return
	}

	resp := helpers.SaleResponse{
		SaleID:      sale.SaleID,
		LotID:       sale.LotID,
		PlayerID:    sale.PlayerID,
		AmountCents: sale.AmountCents,
		FinalizedAt: sale.FinalizedAt.UTC().Format(time.RFC3339),
		NextLotID:   nextLotID,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bid accepted, lot sold")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted, lot sold", map[string]any{
		"sale_id":      sale.SaleID,
		"lot_id":       lotID,
		"player_id":    sale.PlayerID,
		"amount_cents": sale.AmountCents,
	})
}

// TogglePauseHandler handles POST /events/:event_id/lots/:lot_id/pause
func (h *AuctionHandler) TogglePauseHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	lotID := c.Param("lot_id")

	action, lot, err := h.service.TogglePause(eventID, lotID)
	if err != nil {
		respondError(c, "TogglePauseHandler", err, map[string]any{"event_id": eventID, "lot_id": lotID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"action": action, "lot": lot}, "timer "+action)
	helpers.LogSuccess("TogglePauseHandler", "timer "+action, map[string]any{
		"event_id": eventID,
		"lot_id":   lotID,
	})
}

// UndoLastHandler handles POST /events/:event_id/undo
func (h *AuctionHandler) UndoLastHandler(c *gin.Context) {
	eventID := c.Param("event_id")

	result, err := h.service.UndoLast(eventID)
	if err != nil {
		respondError(c, "UndoLastHandler", err, map[string]any{"event_id": eventID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, result, "last action undone")
	helpers.LogSuccess("UndoLastHandler", "last action undone", map[string]any{
		"event_id": eventID,
		"type":     result.Type,
		"ref_id":   result.RefID,
	})
}

// GetProjectionHandler handles GET /events/:event_id/projection
func (h *AuctionHandler) GetProjectionHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	proj, err := h.service.Projection(eventID)
	if err != nil {
		respondError(c, "GetProjectionHandler", err, map[string]any{"event_id": eventID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, proj, "payout projection computed")
}

// ComputePayoutsHandler handles POST /events/:event_id/payouts
func (h *AuctionHandler) ComputePayoutsHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	var req helpers.PayoutsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ComputePayoutsHandler", err)
		return
	}

	payouts, err := h.service.Payouts(eventID, req.Results)
	if err != nil {
		respondError(c, "ComputePayoutsHandler", err, map[string]any{"event_id": eventID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, payouts, "payouts computed")
}

// GetSummaryHandler handles GET /events/:event_id/summary
func (h *AuctionHandler) GetSummaryHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	summary, err := h.service.Summary(eventID)
	if err != nil {
		respondError(c, "GetSummaryHandler", err, map[string]any{"event_id": eventID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, summary, "summary computed")
}

// GetRecapHandler handles GET /events/:event_id/recap
func (h *AuctionHandler) GetRecapHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	ev, err := h.service.Event(eventID)
	if err != nil {
		respondError(c, "GetRecapHandler", err, map[string]any{"event_id": eventID})
		return
	}

	csvBytes, err := helpers.BuildRecapCSV(ev)
	if err != nil {
		respondError(c, "GetRecapHandler", err, map[string]any{"event_id": eventID})
		return
	}
	utils.CSVResponse(c, fmt.Sprintf("recap-%s.csv", eventID), csvBytes)
}

// GetPlayerLinksHandler handles GET /events/:event_id/player-links
func (h *AuctionHandler) GetPlayerLinksHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	links, err := h.service.PlayerLinks(eventID, h.baseURL)
	if err != nil {
		respondError(c, "GetPlayerLinksHandler", err, map[string]any{"event_id": eventID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, links, "player links generated")
}

// ValidatePlayerHandler handles GET /events/:event_id/player-validate
func (h *AuctionHandler) ValidatePlayerHandler(c *gin.Context) {
	eventID := c.Param("event_id")
	playerID := c.Query("playerId")
	presented := c.Query("token")
	if playerID == "" || presented == "" {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("missing playerId or token"), "missing playerId or token")
		return
	}

	ok, err := h.service.ValidatePlayerToken(eventID, playerID, presented)
	if err != nil {
		respondError(c, "ValidatePlayerHandler", err, map[string]any{"event_id": eventID, "player_id": playerID})
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid player token"), "invalid player token")
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"ok": true}, "player token valid")
}
