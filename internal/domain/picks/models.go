package picks

// Label is the categorical outcome of a recommendation.
type Label int

const (
	InvalidSelection Label = iota
	NoPlayerSelected
	Under
	SlightUnder
	StayAway
	SlightOver
	Over
)

var labelNames = map[Label]string{
	InvalidSelection: "InvalidSelection",
	NoPlayerSelected: "NoPlayerSelected",
	Under:            "Under",
	SlightUnder:      "SlightUnder",
	StayAway:         "StayAway",
	SlightOver:       "SlightOver",
	Over:             "Over",
}

var labelTexts = map[Label]string{
	InvalidSelection: "Invalid prop selection.",
	NoPlayerSelected: "No player selected.",
	Under:            "Under",
	SlightUnder:      "Slight Under",
	StayAway:         "Stay Away",
	SlightOver:       "Slight Over",
	Over:             "Over",
}

// String returns the stable identifier used in metrics and JSON.
func (l Label) String() string {
	if name, ok := labelNames[l]; ok {
		return name
	}
	return labelNames[InvalidSelection]
}

// Text returns the message shown to users.
func (l Label) Text() string {
	if text, ok := labelTexts[l]; ok {
		return text
	}
	return labelTexts[InvalidSelection]
}

// IsPick reports whether l is one of the five rank-derived suggestions.
func (l Label) IsPick() bool {
	return l >= Under && l <= Over
}

// MarshalText lets labels serialize by name.
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Labels returns all labels, picks first in bucket order.
func Labels() []Label {
	return []Label{Under, SlightUnder, StayAway, SlightOver, Over, NoPlayerSelected, InvalidSelection}
}

type bucket struct {
	min, max int
	label    Label
}

var buckets = []bucket{
	{1, 5, Under},
	{6, 10, SlightUnder},
	{11, 20, StayAway},
	{21, 25, SlightOver},
	{26, 30, Over},
}

// Classify maps a defensive rank to a pick. Ranks outside [1,30] are invalid.
func Classify(rank int) (Label, bool) {
	for _, b := range buckets {
		if rank >= b.min && rank <= b.max {
			return b.label, true
		}
	}
	return InvalidSelection, false
}
