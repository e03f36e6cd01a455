package picks

// View is the JSON shape of a Pick shared by the HTTP and MCP surfaces.
type View struct {
	Player   string `json:"player,omitempty"`
	Position string `json:"position,omitempty"`
	Team     string `json:"team"`
	Prop     string `json:"prop"`
	Column   string `json:"column,omitempty"`
	Rank     *int   `json:"rank,omitempty"`
	Label    string `json:"label"`
	Text     string `json:"text"`
	Message  string `json:"message,omitempty"`
}

// View flattens the pick for serialization.
func (p Pick) View() View {
	v := View{
		Team:    p.Team,
		Prop:    p.Prop,
		Column:  p.Result.Column,
		Label:   p.Result.Label.String(),
		Text:    p.Result.Label.Text(),
		Message: p.Message,
	}
	if p.Found {
		v.Player = p.Player.Name
		v.Position = p.Player.Position.String()
	}
	if p.Result.HasRank {
		rank := p.Result.Rank
		v.Rank = &rank
	}
	return v
}
