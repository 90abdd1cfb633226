// Package lander implements the Lunar Lander game: a fuel-limited descent
// onto procedurally generated terrain under lunar gravity.
package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

// DT is the fixed simulation time step. The simulation always advances in
// 1/60 s increments regardless of the real frame rate.
const DT = 1.0 / 60.0

// Local-frame geometry of the craft. The same offsets feed both rendering
// and collision, so what the player sees is what the terrain touches.
var (
	legOffsets = [2]core.Vec2{
		{X: -15.0, Y: -5.0},
		{X: 15.0, Y: -5.0},
	}
	bodyOffsets = [3]core.Vec2{
		{X: 0.0, Y: 15.0},    // nose
		{X: -10.0, Y: -10.0}, // left side
		{X: 10.0, Y: -10.0},  // right side
	}
	flameOffsets = [3]core.Vec2{
		{X: -5.0, Y: -8.0},
		{X: 5.0, Y: -8.0},
		{X: 0.0, Y: -20.0},
	}
)

// Lander holds the kinematic state of the craft.
//
// Position is in the screen frame (y grows downward); Velocity is in the
// physics frame (y grows upward). Tick converts between the two when
// integrating, matching the original sign convention.
type Lander struct {
	Position core.Vec2
	Velocity core.Vec2
	Angle    float64 // radians, always in [0, 2π)
	Thrust   float64 // [0, 1]
	Fuel     float64 // clamps at 0, never increases

	gravity      float64
	thrustPower  float64
	fuelBurnRate float64
	worldW       float64
	maxVelocity  float64
	maxAngle     float64

	// Landing verdict, computed at most once and then frozen.
	safetyChecked bool
	landedSafely  bool
}

// NewLander creates a craft at the given start position with full fuel.
func NewLander(x, y float64, cfg config.LanderConfig) *Lander {
	return &Lander{
		Position:     core.NewVec2(x, y),
		Fuel:         cfg.Physics.Fuel,
		gravity:      cfg.Physics.Gravity,
		thrustPower:  cfg.Physics.ThrustPower,
		fuelBurnRate: cfg.Physics.FuelBurnRate,
		worldW:       cfg.World.Width,
		maxVelocity:  cfg.Landing.MaxVelocity,
		maxAngle:     cfg.Landing.MaxAngle,
	}
}

// ApplyThrust sets the engine throttle, clamped to [0, 1].
// With the tank empty the engine stays off no matter what is requested.
func (l *Lander) ApplyThrust(level float64) {
	if l.Fuel <= 0 {
		l.Thrust = 0
		return
	}
	l.Thrust = core.ClampF(level, 0, 1)
}

// Rotate adds delta radians to the craft's attitude and normalizes the
// result into [0, 2π). Negative deltas wrap correctly.
func (l *Lander) Rotate(delta float64) {
	l.Angle = core.WrapAngle(l.Angle + delta)
}

// Tick advances the craft by one fixed time step: thrust, then gravity,
// then position integration, then the horizontal world bound.
func (l *Lander) Tick() {
	if l.Fuel > 0 && l.Thrust > 0 {
		accel := core.Vec2{
			X: -l.Thrust * math.Cos(l.Angle) * l.thrustPower,
			Y: l.Thrust * math.Sin(l.Angle) * l.thrustPower,
		}
		l.Velocity = l.Velocity.Add(accel.Scale(DT))

		// Fuel drains per tick, not per second. The fixed time step makes
		// the two equivalent up to a constant; changing DT without
		// revisiting this would decouple burn rate from impulse.
		l.Fuel -= l.Thrust * l.fuelBurnRate
		if l.Fuel <= 0 {
			l.Fuel = 0
			l.Thrust = 0
		}
	}

	// Gravity acts in the physics frame where positive y is up.
	l.Velocity.Y -= l.gravity * DT

	// The y subtraction converts back to the screen frame (y grows down).
	l.Position.X += l.Velocity.X * DT
	l.Position.Y -= l.Velocity.Y * DT

	// Horizontal bound only; the craft may leave the top of the world or
	// sink below the surface until collision is evaluated.
	l.Position.X = core.ClampF(l.Position.X, 0, l.worldW)
}

// LegPoints returns the two leg contact points in world space.
// Recomputed on demand; used for both rendering and collision queries.
func (l *Lander) LegPoints() [2]core.Vec2 {
	var pts [2]core.Vec2
	for i, off := range legOffsets {
		pts[i] = l.Position.Add(off.Rotate(l.Angle))
	}
	return pts
}

// BodyVertices returns the three hull vertices (nose, left, right) in
// world space.
func (l *Lander) BodyVertices() [3]core.Vec2 {
	var pts [3]core.Vec2
	for i, off := range bodyOffsets {
		pts[i] = l.Position.Add(off.Rotate(l.Angle))
	}
	return pts
}

// FlameVertices returns the engine flame triangle in world space.
// Only meaningful while Thrust > 0 and fuel remains.
func (l *Lander) FlameVertices() [3]core.Vec2 {
	var pts [3]core.Vec2
	for i, off := range flameOffsets {
		pts[i] = l.Position.Add(off.Rotate(l.Angle))
	}
	return pts
}

// CheckLandingSafety computes the touchdown verdict against the struck
// surface. The first call freezes the result; later calls are no-ops.
// Whether the surface is a landing pad does not enter the verdict.
func (l *Lander) CheckLandingSafety(surfaceAngle float64) {
	if l.safetyChecked {
		return
	}
	speed := l.Velocity.Length()
	relativeAngle := math.Abs(l.Angle - surfaceAngle)

	l.landedSafely = speed <= l.maxVelocity && relativeAngle <= l.maxAngle
	l.safetyChecked = true
}

// SafetyChecked reports whether the landing verdict has been computed.
func (l *Lander) SafetyChecked() bool {
	return l.safetyChecked
}

// LandedSafely reports the frozen landing verdict.
// False until CheckLandingSafety has run.
func (l *Lander) LandedSafely() bool {
	return l.landedSafely
}
