package handlers

import (
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"

	apppicks "github.com/preston-bernstein/nba-props-service/internal/app/picks"
	appteams "github.com/preston-bernstein/nba-props-service/internal/app/teams"
	"github.com/preston-bernstein/nba-props-service/internal/domain/teams"
)

// Dashboard messages.
const (
	incompleteSelectionMessage = "Please select a valid player, team, and prop."
	dashboardTitle             = "NBA Prop Picks Dashboard"
)

// DashboardData is everything the dashboard page renders.
type DashboardData struct {
	Query      string
	Team       string
	Prop       string
	Teams      []string
	Props      []string
	PlayerLine string
	Suggestion string
	Table      appteams.DefenseTable
}

// Dashboard serves the HTML page: player search, team and prop selects, the
// pick suggestion, the defense table and the selected team's radar chart.
func (h *Handler) Dashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	templ.Handler(DashboardPage(h.dashboardData(r.URL.Query()))).ServeHTTP(w, r)
}

func (h *Handler) dashboardData(q url.Values) DashboardData {
	data := DashboardData{
		Query: q.Get("player"),
		Team:  q.Get("team"),
		Prop:  q.Get("prop"),
		Teams: h.teams.ListTeams(),
		Table: h.teams.Table(),
	}
	for _, s := range teams.Stats() {
		data.Props = append(data.Props, string(s))
	}
	if data.Team == "" && len(data.Teams) > 0 {
		data.Team = data.Teams[0]
	}
	if data.Prop == "" {
		data.Prop = data.Props[0]
	}

	player, found := h.players.FindPlayer(data.Query)
	switch {
	case found:
		data.PlayerLine = fmt.Sprintf("Selected Player: %s, Position: %s", player.Name, player.Position)
	case data.Query != "":
		data.PlayerLine = apppicks.PlayerNotFoundMessage
	}

	if q.Has("pick") {
		if found && !player.Position.IsZero() && data.Team != "" && data.Prop != "" {
			res := h.picks.Recommend(player.Position, data.Team, data.Prop)
			data.Suggestion = "Pick Suggestion: " + res.Label.Text()
		} else {
			data.Suggestion = incompleteSelectionMessage
		}
	}
	return data
}

// DashboardPage renders the dashboard document.
func DashboardPage(d DashboardData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		e := templ.EscapeString

		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		b.WriteString(dashboardTitle)
		b.WriteString(`</title><style>body{font-family:sans-serif;margin:2rem}table{border-collapse:collapse}td,th{border:1px solid #ddd;padding:4px 8px;text-align:right}td:first-child{text-align:left}</style></head><body>`)
		b.WriteString(`<h1>` + dashboardTitle + `</h1>`)

		b.WriteString(`<form method="get" action="/">`)
		b.WriteString(`<label>Type a player's name: <input type="text" name="player" value="` + e(d.Query) + `"></label> `)
		b.WriteString(`<label>Select the opposing team: <select name="team">`)
		writeOptions(&b, d.Teams, d.Team)
		b.WriteString(`</select></label> `)
		b.WriteString(`<label>Select a prop type: <select name="prop">`)
		writeOptions(&b, d.Props, d.Prop)
		b.WriteString(`</select></label> `)
		b.WriteString(`<button type="submit" name="pick" value="1">Make Pick</button></form>`)

		if d.PlayerLine != "" {
			b.WriteString(`<p id="player">` + e(d.PlayerLine) + `</p>`)
		}
		if d.Suggestion != "" {
			b.WriteString(`<p id="suggestion"><strong>` + e(d.Suggestion) + `</strong></p>`)
		}

		if d.Team != "" {
			src := "/teams/" + url.PathEscape(d.Team) + "/radar.svg"
			b.WriteString(`<h2>` + e(d.Team) + ` defense</h2>`)
			b.WriteString(`<img alt="defensive radar" width="480" src="` + e(src) + `">`)
		}

		b.WriteString(`<h2>Team Defense Table</h2><table><thead><tr>`)
		for _, col := range d.Table.Columns {
			b.WriteString(`<th>` + e(col) + `</th>`)
		}
		b.WriteString(`</tr></thead><tbody>`)
		fields := teams.Fields()
		for _, row := range d.Table.Rows {
			b.WriteString(`<tr><td>` + e(row.Team) + `</td>`)
			for _, f := range fields {
				cell := ""
				if rank, ok := row.Rank(f); ok {
					cell = fmt.Sprint(rank)
				}
				b.WriteString(`<td>` + cell + `</td>`)
			}
			b.WriteString(`</tr>`)
		}
		b.WriteString(`</tbody></table></body></html>`)

		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeOptions(b *strings.Builder, options []string, selected string) {
	for _, opt := range options {
		attr := ""
		if opt == selected {
			attr = " selected"
		}
		b.WriteString(`<option value="` + templ.EscapeString(opt) + `"` + attr + `>` + templ.EscapeString(opt) + `</option>`)
	}
}
