package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

func TestFixturesHelper(t *testing.T) {
	roster := SamplePlayers()
	if len(roster) != 3 || roster[1].Name != "LeBron James" {
		t.Fatalf("unexpected roster fixture %+v", roster)
	}
	profiles := SampleProfiles(23)
	if profiles[0].Team != SampleTeam {
		t.Fatalf("expected %s first, got %s", SampleTeam, profiles[0].Team)
	}
	sf := teams.Field{Position: players.SmallForward, Stat: teams.Points}
	if profiles[0].Ranks[sf] != 23 {
		t.Fatalf("expected sf_points override, got %d", profiles[0].Ranks[sf])
	}
	if len(profiles[1].Ranks) != 15 {
		t.Fatalf("expected fully ranked second team")
	}
}

func TestServicesHelper(t *testing.T) {
	svcs := NewSampleServices(3, nil)
	if !svcs.Store.Loaded() {
		t.Fatalf("expected store marked loaded")
	}
	if _, ok := svcs.Players.FindPlayer("lebron"); !ok {
		t.Fatalf("expected sample player")
	}
	if got := svcs.Picks.Pick("lebron", SampleTeam, "Points").Result.Label.String(); got != "Under" {
		t.Fatalf("expected Under, got %s", got)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestServerStubs(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	_ = b.Handler()
	if b.Addr() != b.AddrVal {
		t.Fatalf("expected blocking server addr passthrough")
	}
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	e := &ErrHTTPServer{}
	_ = e.ListenAndServe()
	_ = e.Shutdown(context.Background())
	_ = e.Handler()
	if e.Addr() == "" || e.ShutdownCalls != 1 {
		t.Fatalf("unexpected ErrHTTPServer state %+v", e)
	}

	c := &CloseableHTTPServer{}
	_ = c.ListenAndServe()
	_ = c.Shutdown(context.Background())
	_ = c.Handler()
	if c.Addr() == "" || c.ShutdownCalls != 1 {
		t.Fatalf("unexpected CloseableHTTPServer state %+v", c)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()

	p := GoodProvider{Players: SamplePlayers(), Profiles: SampleProfiles(3)}
	if got, _ := p.FetchPlayers(ctx); len(got) != 3 {
		t.Fatalf("expected players from GoodProvider")
	}
	if got, _ := p.FetchTeamDefense(ctx); len(got) != 2 {
		t.Fatalf("expected profiles from GoodProvider")
	}

	errProv := ErrProvider{DefenseErr: errors.New("boom")}
	if _, err := errProv.FetchPlayers(ctx); err != nil {
		t.Fatalf("expected players to load, got %v", err)
	}
	if _, err := errProv.FetchTeamDefense(ctx); !errors.Is(err, errProv.DefenseErr) {
		t.Fatalf("expected error passthrough")
	}
	errProv = ErrProvider{PlayersErr: errors.New("boom")}
	if _, err := errProv.FetchPlayers(ctx); err == nil {
		t.Fatalf("expected players error")
	}
	if got, _ := errProv.FetchTeamDefense(ctx); len(got) != 2 {
		t.Fatalf("expected sample profiles")
	}
}
