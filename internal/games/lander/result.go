package lander

// Result summarizes a finished descent for persistence and end screens.
type Result struct {
	Safe           bool
	PadLanding     bool
	Score          int
	FuelRemaining  float64
	TouchdownSpeed float64
	Ticks          int
}

// Result returns the outcome of the current descent. The second return is
// false while the craft is still flying; once the session is over the
// result is stable because the simulation no longer advances.
func (g *Game) Result() (Result, bool) {
	if !g.gameOver {
		return Result{}, false
	}
	return Result{
		Safe:           g.lander.LandedSafely(),
		PadLanding:     g.padLanding,
		Score:          g.score,
		FuelRemaining:  g.lander.Fuel,
		TouchdownSpeed: g.lander.Velocity.Length(),
		Ticks:          g.tickCount,
	}, true
}
