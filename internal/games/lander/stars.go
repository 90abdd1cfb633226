package lander

import (
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// starCount is the number of background stars scattered over the world.
const starCount = 100

// generateStars scatters fixed background stars across the world.
// Purely cosmetic; regenerated on every reset.
func generateStars(worldW, worldH float64, rng *rand.Rand) []core.Vec2 {
	stars := make([]core.Vec2, starCount)
	for i := range stars {
		stars[i] = core.Vec2{
			X: rng.Float64() * worldW,
			Y: rng.Float64() * worldH,
		}
	}
	return stars
}
