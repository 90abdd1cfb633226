package lander

// Snapshot contains the observable state of a session in primitive types,
// used for determinism checks. Float fields are scaled to integers so two
// runs can be compared exactly.
type Snapshot struct {
	Tick      int
	X         int // position * 1000
	Y         int // position * 1000
	VX        int // velocity * 1000
	VY        int // velocity * 1000
	Angle     int // radians * 1000
	Fuel      int // fuel * 1000
	Score     int
	GameOver  bool
	Safe      bool
	Checked   bool
	Particles int
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	particles := 0
	if g.explosion != nil {
		particles = len(g.explosion.Particles())
	}
	return Snapshot{
		Tick:      g.tickCount,
		X:         int(g.lander.Position.X * 1000),
		Y:         int(g.lander.Position.Y * 1000),
		VX:        int(g.lander.Velocity.X * 1000),
		VY:        int(g.lander.Velocity.Y * 1000),
		Angle:     int(g.lander.Angle * 1000),
		Fuel:      int(g.lander.Fuel * 1000),
		Score:     g.score,
		GameOver:  g.gameOver,
		Safe:      g.lander.LandedSafely(),
		Checked:   g.lander.SafetyChecked(),
		Particles: particles,
	}
}
