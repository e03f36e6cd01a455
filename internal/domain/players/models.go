package players

import "strings"

// Position is a player's listed court position. The zero value means no position.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// Positions returns the recognized positions in display order.
func Positions() []Position {
	return []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}
}

// ParsePosition normalizes a raw position cell. Unrecognized values are kept as read.
func ParsePosition(raw string) Position {
	return Position(strings.ToUpper(strings.TrimSpace(raw)))
}

// Valid reports whether p is one of the five recognized positions.
func (p Position) Valid() bool {
	switch p {
	case PointGuard, ShootingGuard, SmallForward, PowerForward, Center:
		return true
	}
	return false
}

// IsZero reports whether no position is set.
func (p Position) IsZero() bool {
	return p == ""
}

func (p Position) String() string {
	return string(p)
}

// Player is one roster row.
type Player struct {
	Name     string   `json:"name" yaml:"name"`
	Position Position `json:"position" yaml:"position"`
}
