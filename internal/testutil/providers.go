package testutil

import (
	"context"

	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

// GoodProvider returns the provided tables with no error.
type GoodProvider struct {
	Players  []players.Player
	Profiles []teams.DefenseProfile
}

func (p GoodProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	return p.Players, nil
}

func (p GoodProvider) FetchTeamDefense(ctx context.Context) ([]teams.DefenseProfile, error) {
	_ = ctx
	return p.Profiles, nil
}

// ErrProvider fails whichever table has an error set.
type ErrProvider struct {
	PlayersErr error
	DefenseErr error
}

func (p ErrProvider) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	_ = ctx
	if p.PlayersErr != nil {
		return nil, p.PlayersErr
	}
	return SamplePlayers(), nil
}

func (p ErrProvider) FetchTeamDefense(ctx context.Context) ([]teams.DefenseProfile, error) {
	_ = ctx
	if p.DefenseErr != nil {
		return nil, p.DefenseErr
	}
	return SampleProfiles(3), nil
}
