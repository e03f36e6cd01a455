// Package mcptools exposes player lookup, team listing, picks and radar views
// as MCP tools.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	appplayers "github.com/preston-bernstein/nba-props-service/internal/app/players"
	apppicks "github.com/preston-bernstein/nba-props-service/internal/app/picks"
	appteams "github.com/preston-bernstein/nba-props-service/internal/app/teams"
	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
)

const serverName = "nba-props-service"

// Tool names.
const (
	ToolResolvePlayer = "resolve_player"
	ToolListTeams     = "list_teams"
	ToolRecommend     = "recommend"
	ToolTeamRadar     = "team_radar"
)

type ResolvePlayerArgs struct {
	Query string `json:"query" jsonschema:"Case-insensitive substring of the player name"`
}

type ListTeamsArgs struct{}

type RecommendArgs struct {
	Player string `json:"player" jsonschema:"Player name query, resolved to the first match"`
	Team   string `json:"team" jsonschema:"Exact opponent team name as listed by list_teams"`
	Prop   string `json:"prop" jsonschema:"Prop type: Points|Rebounds|Assists"`
}

type TeamRadarArgs struct {
	Team string `json:"team" jsonschema:"Exact team name as listed by list_teams"`
}

// ResolveResult is the output of resolve_player.
type ResolveResult struct {
	Query   string          `json:"query"`
	Found   bool            `json:"found"`
	Player  *players.Player `json:"player,omitempty"`
	Message string          `json:"message,omitempty"`
}

// TeamsResult is the output of list_teams.
type TeamsResult struct {
	Teams []string `json:"teams"`
}

var errTeamNotFound = errors.New("team not found")

// NewServer registers every tool against the given services.
func NewServer(playerSvc *appplayers.Service, teamSvc *appteams.Service, pickSvc *apppicks.Service, version string, logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)

	addTool(server, logger, &mcp.Tool{
		Name:        ToolResolvePlayer,
		Description: "Resolve a name query to the first matching player and position",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ResolvePlayerArgs) (*mcp.CallToolResult, any, error) {
		out := ResolveResult{Query: args.Query}
		if p, ok := playerSvc.FindPlayer(args.Query); ok {
			out.Found = true
			out.Player = &p
		} else if args.Query != "" {
			out.Message = apppicks.PlayerNotFoundMessage
		}
		return toolJSON(json.Marshal(out))
	})

	addTool(server, logger, &mcp.Tool{
		Name:        ToolListTeams,
		Description: "List team names in load order",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args ListTeamsArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(json.Marshal(TeamsResult{Teams: teamSvc.ListTeams()}))
	})

	addTool(server, logger, &mcp.Tool{
		Name:        ToolRecommend,
		Description: "Over/Under pick for a player prop against an opponent's defensive rank",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args RecommendArgs) (*mcp.CallToolResult, any, error) {
		return toolJSON(json.Marshal(pickSvc.Pick(args.Player, args.Team, args.Prop).View()))
	})

	addTool(server, logger, &mcp.Tool{
		Name:        ToolTeamRadar,
		Description: "Defensive ranks by position and stat for one team",
	}, func(ctx context.Context, req *mcp.CallToolRequest, args TeamRadarArgs) (*mcp.CallToolResult, any, error) {
		radar, ok := teamSvc.Radar(args.Team)
		if !ok {
			return toolError(fmt.Errorf("%w: %q", errTeamNotFound, args.Team)), nil, nil
		}
		return toolJSON(json.Marshal(radar))
	})

	return server
}

// NewHandler serves the MCP server over streamable HTTP with plain JSON responses.
func NewHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func addTool[T any](server *mcp.Server, logger *slog.Logger, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	if logger != nil {
		logger.Debug("mcp tool registered", slog.String("tool", tool.Name))
	}
	mcp.AddTool(server, tool, handler)
}

func toolJSON(res []byte, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(res), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: string(res)}}}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)}},
	}
}
