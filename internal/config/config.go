// Package config provides YAML-based game configuration loading with
// embedded defaults.
package config

// GameConfig contains all tunable parameters for flipspider.
// The simulation reads world geometry and physics from here; the difficulty
// preset table drives per-run parameters.
type GameConfig struct {
	World     WorldConfig    `yaml:"world"`
	Player    PlayerConfig   `yaml:"player"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Effects   EffectsConfig  `yaml:"effects"`
	Presets   PresetTable    `yaml:"presets"`
}

// WorldConfig defines the fixed world-unit viewport the simulation runs in.
// The render layer scales this into whatever terminal size it has.
type WorldConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorHeight float64 `yaml:"floor_height"`
}

// FloorY returns the y-coordinate of the walkable floor line.
func (w WorldConfig) FloorY() float64 {
	return w.Height - w.FloorHeight
}

// PlayerConfig defines the spider's fixed parameters.
type PlayerConfig struct {
	X          float64 `yaml:"x"`
	Radius     float64 `yaml:"radius"`
	CooldownMs float64 `yaml:"cooldown_ms"`
}

// PhysicsConfig defines vertical motion parameters.
// Gravity is added to velocity once per tick; position integration is scaled
// by dt relative to BaseFrameMs.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	Impulse      float64 `yaml:"impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	BaseFrameMs  float64 `yaml:"base_frame_ms"`
}

// ObstacleConfig defines fixed obstacle geometry.
type ObstacleConfig struct {
	Width float64 `yaml:"width"`
}

// EffectsConfig defines cosmetic transient parameters.
type EffectsConfig struct {
	WebLifetimeMs float64 `yaml:"web_lifetime_ms"`
}

// PresetParams are the per-difficulty run parameters. Table-driven: selecting
// a preset copies these values into the live session, where the ramp then
// tightens them as the score grows.
type PresetParams struct {
	Speed            float64 `yaml:"speed"`
	Spacing          float64 `yaml:"spacing"`
	MinGap           float64 `yaml:"min_gap"`
	MaxGap           float64 `yaml:"max_gap"`
	CollisionPadding float64 `yaml:"collision_padding"`
}

// PresetTable holds the three named difficulty presets.
type PresetTable struct {
	Easy   PresetParams `yaml:"easy"`
	Medium PresetParams `yaml:"medium"`
	Hard   PresetParams `yaml:"hard"`
}
