package store

import (
	"testing"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

var sfPoints = teams.Field{Position: players.SmallForward, Stat: teams.Points}

func TestMemoryStoreSetAndGet(t *testing.T) {
	s := NewMemoryStore()

	s.SetPlayers([]players.Player{
		{Name: "LeBron James", Position: players.SmallForward},
		{Name: "Stephen Curry", Position: players.PointGuard},
	})
	dups := s.SetProfiles([]teams.DefenseProfile{
		{Team: "Boston Celtics", Ranks: map[teams.Field]int{sfPoints: 3}},
	})
	if len(dups) != 0 {
		t.Fatalf("expected no duplicates, got %v", dups)
	}

	roster := s.ListPlayers()
	if len(roster) != 2 || roster[0].Name != "LeBron James" {
		t.Fatalf("expected insertion order, got %+v", roster)
	}

	profile, ok := s.GetProfile("Boston Celtics")
	if !ok {
		t.Fatalf("expected to find Boston Celtics")
	}
	if profile.Ranks[sfPoints] != 3 {
		t.Fatalf("unexpected rank %d", profile.Ranks[sfPoints])
	}
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.GetProfile("missing"); ok {
		t.Fatalf("expected missing team to return false")
	}
	if len(s.ListPlayers()) != 0 || len(s.TeamNames()) != 0 {
		t.Fatalf("expected empty store")
	}
}

func TestMemoryStoreDuplicateTeamsFirstWins(t *testing.T) {
	s := NewMemoryStore()
	dups := s.SetProfiles([]teams.DefenseProfile{
		{Team: "Miami Heat", Ranks: map[teams.Field]int{sfPoints: 1}},
		{Team: "Boston Celtics", Ranks: map[teams.Field]int{sfPoints: 3}},
		{Team: "Miami Heat", Ranks: map[teams.Field]int{sfPoints: 30}},
	})
	if len(dups) != 1 || dups[0] != "Miami Heat" {
		t.Fatalf("expected Miami Heat duplicate, got %v", dups)
	}

	profile, _ := s.GetProfile("Miami Heat")
	if profile.Ranks[sfPoints] != 1 {
		t.Fatalf("expected first row to win, got %d", profile.Ranks[sfPoints])
	}

	names := s.TeamNames()
	if len(names) != 2 || names[0] != "Miami Heat" || names[1] != "Boston Celtics" {
		t.Fatalf("expected distinct first-seen names, got %v", names)
	}
	if got := len(s.ListProfiles()); got != 3 {
		t.Fatalf("expected all rows in table view, got %d", got)
	}
}

func TestMemoryStoreSetReplacesSnapshot(t *testing.T) {
	s := NewMemoryStore()
	s.SetProfiles([]teams.DefenseProfile{{Team: "old"}})

	s.SetProfiles([]teams.DefenseProfile{{Team: "new"}})

	if _, ok := s.GetProfile("old"); ok {
		t.Fatalf("expected old team to be removed after replace")
	}
	if _, ok := s.GetProfile("new"); !ok {
		t.Fatalf("expected new team to be present")
	}
}

func TestMemoryStoreListReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.SetPlayers([]players.Player{{Name: "original"}})
	s.SetProfiles([]teams.DefenseProfile{{Team: "X", Ranks: map[teams.Field]int{sfPoints: 5}}})

	list := s.ListPlayers()
	list[0].Name = "mutated"
	if s.ListPlayers()[0].Name != "original" {
		t.Fatalf("expected roster to remain unchanged")
	}

	profile, _ := s.GetProfile("X")
	profile.Ranks[sfPoints] = 99
	again, _ := s.GetProfile("X")
	if again.Ranks[sfPoints] != 5 {
		t.Fatalf("expected ranks to remain unchanged, got %d", again.Ranks[sfPoints])
	}
}

func TestMemoryStoreLoaded(t *testing.T) {
	s := NewMemoryStore()
	if s.Loaded() {
		t.Fatalf("expected new store to be unloaded")
	}
	s.MarkLoaded()
	if !s.Loaded() {
		t.Fatalf("expected store to be loaded")
	}
}
