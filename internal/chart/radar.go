// Package chart renders SVG charts for the dashboard.
package chart

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	appteams "github.com/preston-bernstein/nba-props-service/internal/app/teams"
)

// Canvas geometry.
const (
	Width  = 640
	Height = 640
	radius = 230.0
	rings  = 6
)

// vmap maps one range into another.
func vmap(value, low1, high1, low2, high2 float64) float64 {
	return low2 + (high2-low2)*(value-low1)/(high1-low1)
}

// clamp pins a rank to the display range.
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Radar draws one team's defensive ranks on len(r.Points) axes. Ranks are
// clamped to [r.Min, r.Max] and missing ranks sit at the center.
func Radar(w io.Writer, r appteams.Radar) {
	canvas := svg.New(w)
	cx, cy := Width/2, Height/2+10
	n := len(r.Points)

	canvas.Start(Width, Height)
	canvas.Title(fmt.Sprintf("%s defensive ranks", r.Team))
	canvas.Rect(0, 0, Width, Height, "fill:white")
	canvas.Text(cx, 28, r.Team, "text-anchor:middle;font-family:sans-serif;font-size:20px;fill:#222")

	canvas.Gstyle("fill:none;stroke:#ccc;stroke-width:1")
	for ring := 1; ring <= rings; ring++ {
		canvas.Circle(cx, cy, int(radius*float64(ring)/rings))
	}
	for i := 0; i < n; i++ {
		x, y := polar(cx, cy, radius, i, n)
		canvas.Line(cx, cy, x, y)
	}
	canvas.Gend()

	xs := make([]int, 0, n)
	ys := make([]int, 0, n)
	for i, pt := range r.Points {
		dist := 0.0
		if pt.Rank != nil {
			rank := clamp(*pt.Rank, r.Min, r.Max)
			dist = vmap(float64(rank), float64(r.Min-1), float64(r.Max), 0, radius)
		}
		x, y := polar(cx, cy, dist, i, n)
		xs = append(xs, x)
		ys = append(ys, y)
	}
	if n > 0 {
		canvas.Polygon(xs, ys, "fill:#1f77b4;fill-opacity:0.35;stroke:#1f77b4;stroke-width:2")
	}

	canvas.Gstyle("font-family:sans-serif;font-size:12px;fill:#333")
	for i, pt := range r.Points {
		x, y := polar(cx, cy, radius+22, i, n)
		canvas.Text(x, y+4, pt.Column, "text-anchor:middle")
	}
	canvas.Gend()
	canvas.End()
}

// polar returns the point dist away from the center on axis i of n, starting at 12 o'clock.
func polar(cx, cy int, dist float64, i, n int) (int, int) {
	angle := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
	return cx + int(math.Round(dist*math.Cos(angle))), cy + int(math.Round(dist*math.Sin(angle)))
}
