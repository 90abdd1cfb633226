package lander

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// padMargin keeps pad start indices away from the terrain edges.
const padMargin = 5

// TerrainPoint is a single sample of the height field.
type TerrainPoint struct {
	Position     core.Vec2
	IsLandingPad bool
}

// Terrain is an immutable height field over x: an ordered polyline with
// strictly increasing x from 0 to the world width. Landing pads are
// contiguous flat runs of points.
type Terrain struct {
	points []TerrainPoint
	worldW float64
	worldH float64
}

// ValidateTerrain checks generation parameters without generating.
// Used by the CLI to reject bad configs before a game starts.
func ValidateTerrain(tc config.TerrainConfig) error {
	if tc.NumPoints < 2 {
		return fmt.Errorf("terrain: need at least 2 points, got %d", tc.NumPoints)
	}
	if tc.NumPads < 0 {
		return fmt.Errorf("terrain: negative pad count %d", tc.NumPads)
	}
	if tc.NumPads > 0 {
		if tc.PadWidth < 1 {
			return fmt.Errorf("terrain: pad width must be positive, got %d", tc.PadWidth)
		}
		if tc.NumPoints-tc.PadWidth-2*padMargin < 1 {
			return fmt.Errorf("terrain: pads of width %d do not fit in %d points", tc.PadWidth, tc.NumPoints)
		}
	}
	if tc.MinHeightFrac <= 0 || tc.MaxHeightFrac > 1 || tc.MinHeightFrac >= tc.MaxHeightFrac {
		return fmt.Errorf("terrain: invalid height band [%f, %f]", tc.MinHeightFrac, tc.MaxHeightFrac)
	}
	return nil
}

// GenerateTerrain produces a terrain profile for the given world size.
// Points are equally spaced over [0, worldW]; heights are drawn uniformly
// from the configured band of the world height. NumPads random runs of
// PadWidth points are then flattened to the run's first height and flagged
// as landing pads. Pad runs may overlap each other.
//
// The RNG is injected so a fixed seed yields an identical terrain.
func GenerateTerrain(worldW, worldH float64, tc config.TerrainConfig, rng *rand.Rand) (*Terrain, error) {
	if err := ValidateTerrain(tc); err != nil {
		return nil, err
	}

	points := make([]TerrainPoint, tc.NumPoints)
	dx := worldW / float64(tc.NumPoints-1)
	minY := worldH * tc.MinHeightFrac
	maxY := worldH * tc.MaxHeightFrac

	for i := range points {
		points[i] = TerrainPoint{
			Position: core.Vec2{
				X: float64(i) * dx,
				Y: minY + rng.Float64()*(maxY-minY),
			},
		}
	}

	for p := 0; p < tc.NumPads; p++ {
		start := padMargin + rng.Intn(tc.NumPoints-tc.PadWidth-2*padMargin)
		padHeight := points[start].Position.Y
		for i := start; i < start+tc.PadWidth; i++ {
			points[i].Position.Y = padHeight
			points[i].IsLandingPad = true
		}
	}

	return &Terrain{points: points, worldW: worldW, worldH: worldH}, nil
}

// Points returns the terrain samples in x order.
func (t *Terrain) Points() []TerrainPoint {
	return t.points
}

// HeightAt returns the linearly interpolated surface height at x.
// Outside the terrain span it returns the nearest endpoint's height.
func (t *Terrain) HeightAt(x float64) float64 {
	if x <= t.points[0].Position.X {
		return t.points[0].Position.Y
	}
	last := t.points[len(t.points)-1]
	if x >= last.Position.X {
		return last.Position.Y
	}
	for i := 0; i < len(t.points)-1; i++ {
		p1 := t.points[i].Position
		p2 := t.points[i+1].Position
		if x >= p1.X && x <= p2.X {
			if p2.X == p1.X {
				return p1.Y
			}
			frac := (x - p1.X) / (p2.X - p1.X)
			return p1.Y + frac*(p2.Y-p1.Y)
		}
	}
	return last.Position.Y
}

// OnPad reports whether the surface at x belongs to a landing pad: both
// endpoints of the segment containing x must be flagged.
func (t *Terrain) OnPad(x float64) bool {
	for i := 0; i < len(t.points)-1; i++ {
		p1 := t.points[i]
		p2 := t.points[i+1]
		if x >= p1.Position.X && x <= p2.Position.X {
			return p1.IsLandingPad && p2.IsLandingPad
		}
	}
	return false
}

// PolygonPoints returns the terrain outline closed along the bottom of the
// world, suitable for a filled-polygon renderer.
func (t *Terrain) PolygonPoints() []core.Vec2 {
	out := make([]core.Vec2, 0, len(t.points)+2)
	for _, p := range t.points {
		out = append(out, p.Position)
	}
	out = append(out,
		core.Vec2{X: t.worldW, Y: t.worldH},
		core.Vec2{X: 0, Y: t.worldH},
	)
	return out
}
