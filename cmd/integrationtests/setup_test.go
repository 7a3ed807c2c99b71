package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"calcutta-auction/internal/broadcast"
	"calcutta-auction/internal/engine"
	"calcutta-auction/internal/repository"
	"calcutta-auction/internal/server"
	"calcutta-auction/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router with an in-memory repository for
// integration testing.
func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	hub := broadcast.NewHub()
	auctionEngine := engine.NewAuctionEngine(repo, hub, "integration-secret")
	return server.SetupRouter(auctionEngine, hub, "http://localhost:8080")
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON response envelope. For 2xx responses the data field is
// returned.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 && w.Header().Get("Content-Type") != "text/csv" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
		if w.Code >= 200 && w.Code < 300 {
			if data, ok := resp["data"].(map[string]any); ok {
				resp = data
			}
		}
	}
	return resp, w
}

// CreateTestEvent creates an event over the API and returns its ID plus the
// player IDs keyed by name.
func CreateTestEvent(t *testing.T, router *gin.Engine) (string, map[string]string) {
	t.Helper()

	req := helpers.CreateEventRequest{
		Name: "Playoff Calcutta",
		RuleSet: helpers.RuleSetRequest{
			AnteCents:                 2000,
			MinIncrementCents:         100,
			AuctionTimerSeconds:       45,
			AntiSnipeExtensionSeconds: 10,
			RoundAllocations: []helpers.RoundAllocationRequest{
				{Round: "wildcard", Fraction: 0.1},
				{Round: "divisional", Fraction: 0.2},
				{Round: "conference", Fraction: 0.3},
				{Round: "superbowl", Fraction: 0.4},
			},
		},
		Players: []helpers.PlayerRequest{
			{Name: "Alice", Handle: "alice"},
			{Name: "Bob", Handle: "bob"},
		},
	}

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/events", req)
	require.Equal(t, http.StatusCreated, w.Code)

	eventID := resp["event_id"].(string)
	players := make(map[string]string)
	for _, p := range resp["players"].([]any) {
		player := p.(map[string]any)
		players[player["name"].(string)] = player["player_id"].(string)
	}
	return eventID, players
}

// ImportTestTeams imports the named teams and returns the lot IDs in order.
func ImportTestTeams(t *testing.T, router *gin.Engine, eventID string, names ...string) []string {
	t.Helper()

	teams := make([]helpers.TeamRequest, 0, len(names))
	for _, name := range names {
		teams = append(teams, helpers.TeamRequest{Name: name})
	}
	_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/events/"+eventID+"/teams",
		helpers.ImportTeamsRequest{Teams: teams})
	require.Equal(t, http.StatusCreated, w.Code)

	// The import payload is a list; re-read the state for the lot IDs.
	state, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/events/"+eventID+"/state", nil)
	require.Equal(t, http.StatusOK, w.Code)

	lots := state["lots"].([]any)
	ids := make([]string, 0, len(lots))
	for _, l := range lots {
		ids = append(ids, l.(map[string]any)["lot_id"].(string))
	}
	return ids
}
