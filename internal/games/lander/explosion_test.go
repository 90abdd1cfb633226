package lander

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

func spawnTestExplosion(seed int64) *Explosion {
	cfg := config.DefaultLanderConfig().Explosion
	rng := rand.New(rand.NewSource(seed))
	return SpawnExplosion(core.Vec2{X: 100, Y: 200}, cfg, rng)
}

func TestSpawnExplosionBurst(t *testing.T) {
	e := spawnTestExplosion(1)

	particles := e.Particles()
	if len(particles) != 100 {
		t.Fatalf("Expected 100 particles, got %d", len(particles))
	}
	if e.Finished() {
		t.Error("A fresh burst should not be finished")
	}

	for i, p := range particles {
		if p.Position.X != 100 || p.Position.Y != 200 {
			t.Fatalf("Particle %d not at origin: %+v", i, p.Position)
		}
		speed := p.Velocity.Length()
		if speed < 50 || speed >= 200 {
			t.Errorf("Particle %d speed %f outside [50, 200)", i, speed)
		}
		if p.Lifetime < 0.5 || p.Lifetime >= 1.5 {
			t.Errorf("Particle %d lifetime %f outside [0.5, 1.5)", i, p.Lifetime)
		}
		if p.Lifetime != p.InitialLifetime {
			t.Errorf("Particle %d initial lifetime not recorded", i)
		}
	}
}

func TestExplosionTickMotion(t *testing.T) {
	e := spawnTestExplosion(2)
	before := e.Particles()[0]

	e.Tick()
	after := e.Particles()[0]

	wantX := before.Position.X + before.Velocity.X*DT
	wantY := before.Position.Y + before.Velocity.Y*DT
	if math.Abs(after.Position.X-wantX) > 1e-9 || math.Abs(after.Position.Y-wantY) > 1e-9 {
		t.Errorf("Particle moved to (%f, %f), expected (%f, %f)",
			after.Position.X, after.Position.Y, wantX, wantY)
	}
	if math.Abs(after.Velocity.Y-(before.Velocity.Y-1.0)) > 1e-9 {
		t.Errorf("Velocity.Y should drop by 1.0 per tick, got %f from %f",
			after.Velocity.Y, before.Velocity.Y)
	}
	if math.Abs(after.Lifetime-(before.Lifetime-DT)) > 1e-9 {
		t.Errorf("Lifetime should drop by DT, got %f from %f", after.Lifetime, before.Lifetime)
	}
}

func TestExplosionFinishesWithinMaxLifetime(t *testing.T) {
	e := spawnTestExplosion(3)

	// Max lifetime is 1.5 s, which is 90 ticks; one extra tick of slack.
	for i := 0; i < 91; i++ {
		e.Tick()
	}
	if !e.Finished() {
		t.Errorf("Burst should be spent after 91 ticks, %d particles remain", len(e.Particles()))
	}

	// Ticking a spent burst is harmless.
	e.Tick()
	if !e.Finished() {
		t.Error("A spent burst must stay finished")
	}
}

func TestExplosionParticleCountDecreasesMonotonically(t *testing.T) {
	e := spawnTestExplosion(4)
	prev := len(e.Particles())

	for i := 0; i < 91; i++ {
		e.Tick()
		n := len(e.Particles())
		if n > prev {
			t.Fatalf("Particle count grew from %d to %d at tick %d", prev, n, i)
		}
		prev = n
	}
}

func TestParticleFade(t *testing.T) {
	tests := []struct {
		name      string
		lifetime  float64
		initial   float64
		wantRatio float64
		wantSize  float64
		wantColor core.Color
	}{
		{"fresh", 1.0, 1.0, 1.0, 2.0, core.ColorBrightYellow},
		{"above the cutoff", 0.7, 1.0, 0.7, 1.4, core.ColorBrightYellow},
		{"below the cutoff", 0.5, 1.0, 0.5, 1.0, core.ColorOrange},
		{"nearly spent", 0.1, 1.0, 0.1, 0.2, core.ColorOrange},
		{"zero initial lifetime", 0.0, 0.0, 0.0, 0.0, core.ColorOrange},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Particle{Lifetime: tc.lifetime, InitialLifetime: tc.initial}

			if math.Abs(p.FadeRatio()-tc.wantRatio) > 1e-9 {
				t.Errorf("FadeRatio = %f, expected %f", p.FadeRatio(), tc.wantRatio)
			}
			if math.Abs(p.Size()-tc.wantSize) > 1e-9 {
				t.Errorf("Size = %f, expected %f", p.Size(), tc.wantSize)
			}
			if p.Color() != tc.wantColor {
				t.Errorf("Color = %v, expected %v", p.Color(), tc.wantColor)
			}
		})
	}
}

func TestSpawnExplosionDeterministic(t *testing.T) {
	a := spawnTestExplosion(42)
	b := spawnTestExplosion(42)

	for i := range a.Particles() {
		if a.Particles()[i] != b.Particles()[i] {
			t.Fatalf("Bursts diverge at particle %d", i)
		}
	}
}
