package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// CheckCollision tests the lander's leg contact points against the terrain.
// Legs are tested in order and segments in ascending index order; the
// first qualifying segment wins. On a hit the landing verdict is computed
// (a no-op if already frozen) and true is returned. No hit has no side
// effect.
func CheckCollision(t *Terrain, l *Lander) bool {
	points := t.Points()
	for _, leg := range l.LegPoints() {
		for i := 0; i < len(points)-1; i++ {
			p1 := points[i].Position
			p2 := points[i+1].Position

			if pointInSegment(leg, p1, p2) {
				l.CheckLandingSafety(surfaceAngle(p1, p2))
				return true
			}
		}
	}
	return false
}

// pointInSegment reports whether pt lies within the segment's horizontal
// span at or below the interpolated surface (terrain y grows downward, so
// ">=" means on or under the ground).
func pointInSegment(pt, p1, p2 core.Vec2) bool {
	if pt.X < math.Min(p1.X, p2.X) || pt.X > math.Max(p1.X, p2.X) {
		return false
	}

	if p2.X == p1.X {
		// Degenerate vertical segment: contact anywhere at or below its
		// upper end counts.
		return pt.Y >= math.Min(p1.Y, p2.Y)
	}

	frac := (pt.X - p1.X) / (p2.X - p1.X)
	interpolatedY := p1.Y + frac*(p2.Y-p1.Y)

	return pt.Y >= interpolatedY
}

// surfaceAngle returns the segment's angle relative to horizontal.
// A vertical segment is an explicit 90° wall rather than a division by
// zero.
func surfaceAngle(p1, p2 core.Vec2) float64 {
	dx := p2.X - p1.X
	if dx == 0 {
		return math.Pi / 2
	}
	return math.Atan((p2.Y - p1.Y) / dx)
}
