// Package config provides YAML-based game configuration loading and
// difficulty presets for the lander platform.
package config

// LanderConfig contains all configuration for the Lunar Lander game.
type LanderConfig struct {
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Landing   LandingConfig   `yaml:"landing"`
	Explosion ExplosionConfig `yaml:"explosion"`
}

// WorldConfig defines the simulation world and the lander's start state.
// The simulation runs in a fixed world space; the renderer projects it
// onto whatever terminal size is available.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// PhysicsConfig defines the lander's physical parameters.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration, units/s²
	ThrustPower  float64 `yaml:"thrust_power"`   // Acceleration at full thrust, units/s²
	Fuel         float64 `yaml:"fuel"`           // Initial fuel units
	FuelBurnRate float64 `yaml:"fuel_burn_rate"` // Fuel consumed per tick at full thrust
	RotationStep float64 `yaml:"rotation_step"`  // Radians per rotate key press
}

// TerrainConfig defines procedural terrain generation parameters.
type TerrainConfig struct {
	NumPoints     int     `yaml:"num_points"`
	NumPads       int     `yaml:"num_pads"`
	PadWidth      int     `yaml:"pad_width"`
	MinHeightFrac float64 `yaml:"min_height_frac"` // Fraction of world height, top of the band
	MaxHeightFrac float64 `yaml:"max_height_frac"` // Fraction of world height, bottom of the band
}

// LandingConfig defines the touchdown safety thresholds and scoring.
type LandingConfig struct {
	MaxVelocity float64 `yaml:"max_velocity"` // Max safe touchdown speed, units/s
	MaxAngle    float64 `yaml:"max_angle"`    // Max safe attitude deviation, radians
	PadBonus    int     `yaml:"pad_bonus"`    // Score bonus for touching down on a pad
}

// ExplosionConfig defines the crash particle burst.
type ExplosionConfig struct {
	ParticleCount int     `yaml:"particle_count"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	MinLifetime   float64 `yaml:"min_lifetime"`
	MaxLifetime   float64 `yaml:"max_lifetime"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
