package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	appplayers "github.com/preston-bernstein/nba-props-service/internal/app/players"
	apppicks "github.com/preston-bernstein/nba-props-service/internal/app/picks"
	appteams "github.com/preston-bernstein/nba-props-service/internal/app/teams"
	"github.com/preston-bernstein/nba-props-service/internal/chart"
	"github.com/preston-bernstein/nba-props-service/internal/domain/players"
	"github.com/preston-bernstein/nba-props-service/internal/logging"
)

// Handler wires HTTP routes to the app services.
type Handler struct {
	players *appplayers.Service
	teams   *appteams.Service
	picks   *apppicks.Service
	readyFn func() bool
	logger  *slog.Logger
}

// NewHandler constructs a Handler. readyFn may be nil, in which case the
// service always reports ready.
func NewHandler(playerSvc *appplayers.Service, teamSvc *appteams.Service, pickSvc *apppicks.Service, readyFn func() bool, logger *slog.Logger) *Handler {
	return &Handler{
		players: playerSvc,
		teams:   teamSvc,
		picks:   pickSvc,
		readyFn: readyFn,
		logger:  logger,
	}
}

type playersResponse struct {
	Players []players.Player `json:"players"`
	Count   int              `json:"count"`
}

type searchResponse struct {
	Query   string          `json:"query"`
	Found   bool            `json:"found"`
	Player  *players.Player `json:"player,omitempty"`
	Message string          `json:"message,omitempty"`
}

type teamsResponse struct {
	Teams []string `json:"teams"`
}

func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether both tables are loaded (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	if h.readyFn == nil || h.readyFn() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, "data not loaded", h.logger)
}

// Players lists the roster in load order.
func (h *Handler) Players(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	roster := h.players.Players()
	writeJSON(w, nethttp.StatusOK, playersResponse{Players: roster, Count: len(roster)}, h.logger)
}

// SearchPlayers resolves ?q= to the first matching player. A miss is not an error.
func (h *Handler) SearchPlayers(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	query := r.URL.Query().Get("q")
	resp := searchResponse{Query: query}
	if p, ok := h.players.FindPlayer(query); ok {
		resp.Found = true
		resp.Player = &p
	} else if query != "" {
		resp.Message = apppicks.PlayerNotFoundMessage
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Teams lists distinct team names in load order.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, teamsResponse{Teams: h.teams.ListTeams()}, h.logger)
}

// TeamRadar returns the radar view for the {team} path value.
func (h *Handler) TeamRadar(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	radar, ok := h.teams.Radar(r.PathValue("team"))
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, radar, h.logger)
}

// TeamRadarSVG renders the radar view as an SVG image.
func (h *Handler) TeamRadarSVG(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	radar, ok := h.teams.Radar(r.PathValue("team"))
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(nethttp.StatusOK)
	chart.Radar(w, radar)
}

// Defense returns the full defense table.
func (h *Handler) Defense(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.teams.Table(), h.logger)
}

// Picks runs the end-to-end recommendation for ?player=&team=&prop=.
func (h *Handler) Picks(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	q := r.URL.Query()
	resp := h.picks.Pick(q.Get("player"), q.Get("team"), q.Get("prop")).View()

	if logger := loggerFromContext(r, h.logger); logger != nil {
		logger.Info("pick served",
			slog.String(logging.FieldPlayer, resp.Player),
			slog.String(logging.FieldTeam, resp.Team),
			slog.String(logging.FieldProp, resp.Prop),
			slog.String(logging.FieldLabel, resp.Label),
		)
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

func requireGet(w nethttp.ResponseWriter, r *nethttp.Request, logger *slog.Logger) bool {
	if r.Method == nethttp.MethodGet || r.Method == nethttp.MethodHead {
		return true
	}
	w.Header().Set("Allow", strings.Join([]string{nethttp.MethodGet, nethttp.MethodHead}, ", "))
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}
