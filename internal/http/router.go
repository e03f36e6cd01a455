package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/nba-props-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. When mcp is non-nil it is
// mounted at mcpPath.
func NewRouter(handler *handlers.Handler, mcp nethttp.Handler, mcpPath string) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/search", handler.SearchPlayers)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/{team}/radar", handler.TeamRadar)
	mux.HandleFunc("/teams/{team}/radar.svg", handler.TeamRadarSVG)
	mux.HandleFunc("/defense", handler.Defense)
	mux.HandleFunc("/picks", handler.Picks)
	mux.HandleFunc("/{$}", handler.Dashboard)
	if mcp != nil && mcpPath != "" {
		mux.Handle(mcpPath, mcp)
	}
	return mux
}
