package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the default Lunar Lander configuration.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		World: WorldConfig{
			Width:  800.0,
			Height: 600.0,
			StartX: 400.0,
			StartY: 100.0,
		},
		Physics: PhysicsConfig{
			Gravity:      1.62,
			ThrustPower:  3.5,
			Fuel:         100.0,
			FuelBurnRate: 0.5,
			RotationStep: 0.1,
		},
		Terrain: TerrainConfig{
			NumPoints:     100,
			NumPads:       3,
			PadWidth:      5,
			MinHeightFrac: 2.0 / 3.0,
			MaxHeightFrac: 5.0 / 6.0,
		},
		Landing: LandingConfig{
			MaxVelocity: 2.0,
			MaxAngle:    0.15,
			PadBonus:    50,
		},
		Explosion: ExplosionConfig{
			ParticleCount: 100,
			MinSpeed:      50.0,
			MaxSpeed:      200.0,
			MinLifetime:   0.5,
			MaxLifetime:   1.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "lander":
		return defaultLanderYAML
	default:
		return nil
	}
}
