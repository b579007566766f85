package config

import (
	_ "embed"
)

//go:embed defaults/flipspider.yaml
var defaultYAML []byte

// Default returns the built-in configuration. Values mirror
// defaults/flipspider.yaml and serve as the last-resort fallback if the
// embedded YAML somehow fails to parse.
func Default() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:       480,
			Height:      640,
			FloorHeight: 60,
		},
		Player: PlayerConfig{
			X:          120,
			Radius:     14,
			CooldownMs: 140,
		},
		Physics: PhysicsConfig{
			Gravity:      0.55,
			Impulse:      -8.5,
			MaxFallSpeed: 11.0,
			BaseFrameMs:  16.6667,
		},
		Obstacles: ObstacleConfig{
			Width: 70,
		},
		Effects: EffectsConfig{
			WebLifetimeMs: 180,
		},
		Presets: PresetTable{
			Easy: PresetParams{
				Speed:            2.2,
				Spacing:          320,
				MinGap:           170,
				MaxGap:           230,
				CollisionPadding: 6,
			},
			Medium: PresetParams{
				Speed:            2.8,
				Spacing:          280,
				MinGap:           150,
				MaxGap:           200,
				CollisionPadding: 2,
			},
			Hard: PresetParams{
				Speed:            3.4,
				Spacing:          240,
				MinGap:           135,
				MaxGap:           180,
				CollisionPadding: -4,
			},
		},
	}
}
