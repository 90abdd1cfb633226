package lander

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
)

func defaultTerrainConfig() config.TerrainConfig {
	return config.DefaultLanderConfig().Terrain
}

func TestValidateTerrain(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.TerrainConfig)
		wantErr bool
	}{
		{"defaults are valid", func(tc *config.TerrainConfig) {}, false},
		{"too few points", func(tc *config.TerrainConfig) { tc.NumPoints = 1 }, true},
		{"negative pads", func(tc *config.TerrainConfig) { tc.NumPads = -1 }, true},
		{"zero pad width", func(tc *config.TerrainConfig) { tc.PadWidth = 0 }, true},
		{"pads do not fit", func(tc *config.TerrainConfig) { tc.NumPoints = 12 }, true},
		{"no pads skips pad checks", func(tc *config.TerrainConfig) { tc.NumPads = 0; tc.PadWidth = 0 }, false},
		{"inverted height band", func(tc *config.TerrainConfig) { tc.MinHeightFrac = 0.9 }, true},
		{"band above world", func(tc *config.TerrainConfig) { tc.MaxHeightFrac = 1.5 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultTerrainConfig()
			tc.mutate(&cfg)

			err := ValidateTerrain(cfg)
			if tc.wantErr && err == nil {
				t.Error("Expected a validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestGenerateTerrainShape(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	terrain, err := GenerateTerrain(800, 600, defaultTerrainConfig(), rng)
	if err != nil {
		t.Fatalf("GenerateTerrain failed: %v", err)
	}

	points := terrain.Points()
	if len(points) != 100 {
		t.Fatalf("Expected 100 points, got %d", len(points))
	}

	if points[0].Position.X != 0 {
		t.Errorf("First point should be at x=0, got %f", points[0].Position.X)
	}
	if math.Abs(points[99].Position.X-800) > 1e-9 {
		t.Errorf("Last point should be at x=800, got %f", points[99].Position.X)
	}

	minY := 600.0 * 2.0 / 3.0
	maxY := 600.0 * 5.0 / 6.0
	for i, p := range points {
		if i > 0 && p.Position.X <= points[i-1].Position.X {
			t.Fatalf("X not strictly increasing at index %d", i)
		}
		if p.Position.Y < minY || p.Position.Y > maxY {
			t.Errorf("Point %d height %f outside band [%f, %f]", i, p.Position.Y, minY, maxY)
		}
	}
}

func TestGenerateTerrainPads(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	terrain, err := GenerateTerrain(800, 600, defaultTerrainConfig(), rng)
	if err != nil {
		t.Fatalf("GenerateTerrain failed: %v", err)
	}

	points := terrain.Points()
	padCount := 0
	for _, p := range points {
		if p.IsLandingPad {
			padCount++
		}
	}

	// 3 pads of 5 points each; overlapping pads reduce the total.
	if padCount < 5 || padCount > 15 {
		t.Errorf("Pad point count %d outside the expected range [5, 15]", padCount)
	}

	// Every contiguous run of pad points must be level.
	for i := 1; i < len(points); i++ {
		if points[i].IsLandingPad && points[i-1].IsLandingPad {
			if points[i].Position.Y != points[i-1].Position.Y {
				t.Errorf("Pad run not flat at index %d: %f vs %f",
					i, points[i-1].Position.Y, points[i].Position.Y)
			}
		}
	}

	// Pads stay clear of the terrain edges.
	for i := 0; i < padMargin; i++ {
		if points[i].IsLandingPad {
			t.Errorf("Pad too close to the left edge at index %d", i)
		}
	}
}

func TestGenerateTerrainDeterministic(t *testing.T) {
	cfg := defaultTerrainConfig()

	a, err := GenerateTerrain(800, 600, cfg, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("First generation failed: %v", err)
	}
	b, err := GenerateTerrain(800, 600, cfg, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("Second generation failed: %v", err)
	}

	for i := range a.Points() {
		pa, pb := a.Points()[i], b.Points()[i]
		if pa != pb {
			t.Fatalf("Terrains diverge at point %d: %+v vs %+v", i, pa, pb)
		}
	}
}

func flatTestTerrain(y float64, pad bool) *Terrain {
	points := []TerrainPoint{
		{Position: core.Vec2{X: 0, Y: y}, IsLandingPad: pad},
		{Position: core.Vec2{X: 400, Y: y}, IsLandingPad: pad},
		{Position: core.Vec2{X: 800, Y: y}, IsLandingPad: pad},
	}
	return &Terrain{points: points, worldW: 800, worldH: 600}
}

func TestHeightAtInterpolation(t *testing.T) {
	terrain := &Terrain{
		points: []TerrainPoint{
			{Position: core.Vec2{X: 0, Y: 400}},
			{Position: core.Vec2{X: 100, Y: 500}},
			{Position: core.Vec2{X: 200, Y: 450}},
		},
		worldW: 200,
		worldH: 600,
	}

	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"at first point", 0, 400},
		{"mid first segment", 50, 450},
		{"at middle point", 100, 500},
		{"mid second segment", 150, 475},
		{"at last point", 200, 450},
		{"left of terrain", -10, 400},
		{"right of terrain", 300, 450},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := terrain.HeightAt(tc.x)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("HeightAt(%f) = %f, expected %f", tc.x, got, tc.expected)
			}
		})
	}
}

func TestOnPad(t *testing.T) {
	terrain := &Terrain{
		points: []TerrainPoint{
			{Position: core.Vec2{X: 0, Y: 450}},
			{Position: core.Vec2{X: 100, Y: 450}, IsLandingPad: true},
			{Position: core.Vec2{X: 200, Y: 450}, IsLandingPad: true},
			{Position: core.Vec2{X: 300, Y: 450}},
		},
		worldW: 300,
		worldH: 600,
	}

	tests := []struct {
		name string
		x    float64
		want bool
	}{
		{"before pad", 50, false},
		{"inside pad segment", 150, true},
		{"segment trailing out of pad", 250, false},
		{"outside terrain", 500, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := terrain.OnPad(tc.x); got != tc.want {
				t.Errorf("OnPad(%f) = %v, expected %v", tc.x, got, tc.want)
			}
		})
	}
}

func TestPolygonPoints(t *testing.T) {
	terrain := flatTestTerrain(450, false)
	poly := terrain.PolygonPoints()

	if len(poly) != 5 {
		t.Fatalf("Expected 3 terrain points plus 2 closing corners, got %d", len(poly))
	}
	if poly[3] != (core.Vec2{X: 800, Y: 600}) {
		t.Errorf("Bottom-right corner wrong: %+v", poly[3])
	}
	if poly[4] != (core.Vec2{X: 0, Y: 600}) {
		t.Errorf("Bottom-left corner wrong: %+v", poly[4])
	}
}
