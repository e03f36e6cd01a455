package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apppicks "github.com/preston-bernstein/nba-props-service/internal/app/picks"
	"github.com/preston-bernstein/nba-props-service/internal/testutil"
)

func newTestHandler(sfPoints int) *Handler {
	svcs := testutil.NewSampleServices(sfPoints, nil)
	return NewHandler(svcs.Players, svcs.Teams, svcs.Picks, svcs.Store.Loaded, nil)
}

// routed mounts h the way the router does so path values resolve.
func routed(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/teams/{team}/radar", h.TeamRadar)
	mux.HandleFunc("/teams/{team}/radar.svg", h.TeamRadarSVG)
	return mux
}

func TestHealth(t *testing.T) {
	h := newTestHandler(3)

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(3)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReady(t *testing.T) {
	svcs := testutil.NewSampleServices(3, nil)
	ready := false
	h := NewHandler(svcs.Players, svcs.Teams, svcs.Picks, func() bool { return ready }, nil)

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	ready = true
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	h = NewHandler(svcs.Players, svcs.Teams, svcs.Picks, nil, nil)
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestMethodNotAllowed(t *testing.T) {
	h := newTestHandler(3)
	endpoints := []http.HandlerFunc{h.Health, h.Ready, h.Players, h.SearchPlayers, h.Teams, h.Defense, h.Picks, h.Dashboard, h.TeamRadar, h.TeamRadarSVG}
	for _, fn := range endpoints {
		rr := testutil.Serve(fn, http.MethodPost, "/", nil)
		testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
		if rr.Header().Get("Allow") == "" {
			t.Fatalf("expected Allow header")
		}
	}
}

func TestPlayers(t *testing.T) {
	h := newTestHandler(3)

	rr := testutil.Serve(http.HandlerFunc(h.Players), http.MethodGet, "/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp playersResponse
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Count != 3 || resp.Players[0].Name != "Stephen Curry" {
		t.Fatalf("unexpected players response %+v", resp)
	}
}

func TestSearchPlayers(t *testing.T) {
	h := newTestHandler(3)

	rr := testutil.Serve(http.HandlerFunc(h.SearchPlayers), http.MethodGet, "/players/search?q=leb", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var found searchResponse
	testutil.DecodeJSON(t, rr, &found)
	if !found.Found || found.Player == nil || found.Player.Name != "LeBron James" || found.Player.Position != "SF" {
		t.Fatalf("unexpected search response %+v", found)
	}

	rr = testutil.Serve(http.HandlerFunc(h.SearchPlayers), http.MethodGet, "/players/search?q=zzz", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var missing searchResponse
	testutil.DecodeJSON(t, rr, &missing)
	if missing.Found || missing.Message != "Player not found!" {
		t.Fatalf("unexpected miss response %+v", missing)
	}

	rr = testutil.Serve(http.HandlerFunc(h.SearchPlayers), http.MethodGet, "/players/search", nil)
	var empty searchResponse
	testutil.DecodeJSON(t, rr, &empty)
	if empty.Found || empty.Message != "" {
		t.Fatalf("expected empty query to select nobody silently, got %+v", empty)
	}
}

func TestTeams(t *testing.T) {
	h := newTestHandler(3)

	rr := testutil.Serve(http.HandlerFunc(h.Teams), http.MethodGet, "/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp teamsResponse
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Teams) != 2 || resp.Teams[0] != testutil.SampleTeam {
		t.Fatalf("unexpected teams %+v", resp.Teams)
	}
}

func TestTeamRadar(t *testing.T) {
	h := routed(newTestHandler(3))

	rr := testutil.Serve(h, http.MethodGet, "/teams/Boston%20Celtics/radar", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp struct {
		Team   string `json:"team"`
		Min    int    `json:"min"`
		Max    int    `json:"max"`
		Points []struct {
			Column string `json:"column"`
			Rank   *int   `json:"rank"`
		} `json:"points"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Team != testutil.SampleTeam || resp.Min != 1 || resp.Max != 30 || len(resp.Points) != 15 {
		t.Fatalf("unexpected radar %+v", resp)
	}
	if resp.Points[6].Column != "sf_points" || resp.Points[6].Rank == nil || *resp.Points[6].Rank != 3 {
		t.Fatalf("unexpected sf_points point %+v", resp.Points[6])
	}

	rr = testutil.Serve(h, http.MethodGet, "/teams/boston%20celtics/radar", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestTeamRadarSVG(t *testing.T) {
	h := routed(newTestHandler(3))

	rr := testutil.Serve(h, http.MethodGet, "/teams/Miami%20Heat/radar.svg", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("Content-Type"); got != "image/svg+xml" {
		t.Fatalf("expected svg content type, got %s", got)
	}
	if !strings.Contains(rr.Body.String(), "<svg") {
		t.Fatalf("expected svg body")
	}

	rr = testutil.Serve(h, http.MethodGet, "/teams/Nobody/radar.svg", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestDefense(t *testing.T) {
	h := newTestHandler(3)

	rr := testutil.Serve(http.HandlerFunc(h.Defense), http.MethodGet, "/defense", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp struct {
		Columns []string         `json:"columns"`
		Rows    []map[string]any `json:"rows"`
	}
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Columns) != 16 || len(resp.Rows) != 2 {
		t.Fatalf("unexpected table shape %d cols %d rows", len(resp.Columns), len(resp.Rows))
	}
	if resp.Rows[0]["team"] != testutil.SampleTeam || resp.Rows[0]["sf_points"] != float64(3) {
		t.Fatalf("unexpected first row %+v", resp.Rows[0])
	}
	if _, ok := resp.Rows[0]["pg_points"]; ok {
		t.Fatalf("expected absent rank to be omitted")
	}
}

func TestPicks(t *testing.T) {
	cases := []struct {
		name     string
		sfPoints int
		query    string
		label    string
		text     string
		message  string
		wantRank bool
	}{
		{"under", 3, "player=lebron&team=Boston+Celtics&prop=Points", "Under", "Under", "", true},
		{"slight over", 23, "player=lebron&team=Boston+Celtics&prop=Points", "SlightOver", "Slight Over", "", true},
		{"unknown player", 3, "player=zzz&team=Boston+Celtics&prop=Points", "NoPlayerSelected", "No player selected.", "Player not found!", false},
		{"unknown team", 3, "player=lebron&team=Unknown+Team&prop=Points", "InvalidSelection", "Invalid prop selection.", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHandler(tc.sfPoints)
			rr := testutil.Serve(http.HandlerFunc(h.Picks), http.MethodGet, "/picks?"+tc.query, nil)
			testutil.AssertStatus(t, rr, http.StatusOK)

			var resp apppicks.View
			testutil.DecodeJSON(t, rr, &resp)
			if resp.Label != tc.label || resp.Text != tc.text || resp.Message != tc.message {
				t.Fatalf("unexpected pick %+v", resp)
			}
			if (resp.Rank != nil) != tc.wantRank {
				t.Fatalf("unexpected rank presence %+v", resp)
			}
		})
	}
}

func TestPicksReportsPlayerAndColumn(t *testing.T) {
	h := newTestHandler(3)
	rr := testutil.Serve(http.HandlerFunc(h.Picks), http.MethodGet, "/picks?player=LEB&team=Boston+Celtics&prop=points", nil)

	var resp apppicks.View
	testutil.DecodeJSON(t, rr, &resp)
	if resp.Player != "LeBron James" || resp.Position != "SF" || resp.Column != "sf_points" || resp.Rank == nil || *resp.Rank != 3 {
		t.Fatalf("unexpected pick %+v", resp)
	}
}
