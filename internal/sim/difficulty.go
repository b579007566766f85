package sim

import (
	"strings"

	"flipspider/internal/config"
)

// Preset is a closed enumeration of the named difficulty levels.
type Preset int

const (
	PresetEasy Preset = iota
	PresetMedium
	PresetHard
)

// String returns the preset's lowercase name.
func (p Preset) String() string {
	switch p {
	case PresetEasy:
		return "easy"
	case PresetHard:
		return "hard"
	default:
		return "medium"
	}
}

// ParsePreset maps a difficulty name to a preset. Unknown names fall back to
// Medium, so the mapping is total.
func ParsePreset(name string) Preset {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return PresetEasy
	case "hard":
		return PresetHard
	default:
		return PresetMedium
	}
}

// Ramp constants: every rampEvery points the run speeds up and tightens,
// floor-clamped; every phaseEvery points the cosmetic phase advances.
const (
	rampEvery     = 5
	phaseEvery    = 30
	rampSpeedStep = 0.12
	spacingFloor  = 180.0
	minGapFloor   = 120.0

	// maxCollisionPad bounds the signed collision inset in both directions.
	maxCollisionPad = 20.0
)

// Params are the live run parameters. They start as a copy of the selected
// preset's table entry and are tightened in place by the ramp.
type Params struct {
	Speed        float64
	Spacing      float64
	MinGap       float64
	MaxGap       float64
	CollisionPad float64
}

// ParamsForPreset copies the table entry for a preset. Applying the same
// preset twice yields identical parameters.
func ParamsForPreset(p Preset, table config.PresetTable) Params {
	var src config.PresetParams
	switch p {
	case PresetEasy:
		src = table.Easy
	case PresetHard:
		src = table.Hard
	default:
		src = table.Medium
	}
	return Params{
		Speed:        src.Speed,
		Spacing:      src.Spacing,
		MinGap:       src.MinGap,
		MaxGap:       src.MaxGap,
		CollisionPad: src.CollisionPadding,
	}
}

// Ramp tightens the parameters one step: speed up, close the spacing and the
// minimum gap, both floor-clamped so the game stays passable.
func (p *Params) Ramp() {
	p.Speed += rampSpeedStep
	p.Spacing -= 2
	if p.Spacing < spacingFloor {
		p.Spacing = spacingFloor
	}
	p.MinGap--
	if p.MinGap < minGapFloor {
		p.MinGap = minGapFloor
	}
}
