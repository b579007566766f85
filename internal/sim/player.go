// Package sim implements the flipspider simulation core: player physics,
// obstacle lifecycle, collision, scoring and the difficulty ramp. It has no
// UI dependencies; the platform layer drives it through Session and reads it
// back through Snapshot.
package sim

import (
	"flipspider/internal/config"
)

// Player is the controlled spider. X and Radius are fixed for the whole
// process; Y, VY, Alive and CooldownMs are reset at the start of every run
// and mutated each tick while playing.
type Player struct {
	X          float64
	Y          float64
	VY         float64
	Radius     float64
	Alive      bool
	CooldownMs float64
}

// NewPlayer creates a player with the fixed per-process parameters set.
func NewPlayer(cfg config.GameConfig) Player {
	p := Player{
		X:      cfg.Player.X,
		Radius: cfg.Player.Radius,
	}
	p.ResetRun(cfg)
	return p
}

// ResetRun puts the player back at the run starting state: centered in the
// playable band, at rest, alive, cooldown expired.
func (p *Player) ResetRun(cfg config.GameConfig) {
	p.Y = cfg.World.FloorY() / 2
	p.VY = 0
	p.Alive = true
	p.CooldownMs = 0
}

// ApplyImpulse sets the vertical velocity to the upward thrust and starts
// the cooldown. The cooldown is cosmetic timing for the web strand; it does
// not gate further impulses.
func (p *Player) ApplyImpulse(thrust, cooldownMs float64) {
	p.VY = thrust
	p.CooldownMs = cooldownMs
}

// Tick advances the player by dtMs.
//
// Gravity is added to velocity exactly once per call regardless of dtMs;
// only position and cooldown integration are dt-scaled.
func (p *Player) Tick(dtMs float64, phys config.PhysicsConfig) {
	p.VY += phys.Gravity
	if p.VY > phys.MaxFallSpeed {
		p.VY = phys.MaxFallSpeed
	}
	p.Y += p.VY * (dtMs / phys.BaseFrameMs)

	p.CooldownMs -= dtMs
	if p.CooldownMs < 0 {
		p.CooldownMs = 0
	}
}
