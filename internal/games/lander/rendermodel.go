package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// ParticleView is a particle reduced to what a renderer needs.
type ParticleView struct {
	Position core.Vec2
	Size     float64
	Color    core.Color
	Alpha    float64
}

// HUD carries the scalar readouts shown to the player.
type HUD struct {
	FuelPercent  float64
	Velocity     core.Vec2
	AngleDegrees float64
}

// RenderModel is the complete world-space drawing output of one frame.
// Any renderer able to draw filled polygons, lines and points can consume
// it; the TUI projection in Render is just one such consumer.
type RenderModel struct {
	Body      [3]core.Vec2 // hull triangle (nose, left, right)
	Legs      [2]core.Vec2 // leg contact points
	Flame     [3]core.Vec2 // engine flame triangle, valid only if ShowFlame
	ShowFlame bool
	ShowShip  bool // hidden after a crash

	TerrainPolygon []core.Vec2
	Stars          []core.Vec2
	Particles      []ParticleView

	HUD      HUD
	GameOver bool
	Safe     bool
}

// BuildRenderModel assembles the current frame's drawing output.
func (g *Game) BuildRenderModel() RenderModel {
	m := RenderModel{
		Body:           g.lander.BodyVertices(),
		Legs:           g.lander.LegPoints(),
		ShowFlame:      g.lander.Thrust > 0 && g.lander.Fuel > 0,
		ShowShip:       !g.gameOver || g.lander.LandedSafely(),
		TerrainPolygon: g.terrain.PolygonPoints(),
		Stars:          g.stars,
		HUD: HUD{
			FuelPercent:  g.fuelPercent(),
			Velocity:     g.lander.Velocity,
			AngleDegrees: g.lander.Angle * 180.0 / math.Pi,
		},
		GameOver: g.gameOver,
		Safe:     g.lander.LandedSafely(),
	}
	if m.ShowFlame {
		m.Flame = g.lander.FlameVertices()
	}
	if g.explosion != nil {
		m.Particles = make([]ParticleView, 0, len(g.explosion.Particles()))
		for _, p := range g.explosion.Particles() {
			m.Particles = append(m.Particles, ParticleView{
				Position: p.Position,
				Size:     p.Size(),
				Color:    p.Color(),
				Alpha:    p.FadeRatio(),
			})
		}
	}
	return m
}
