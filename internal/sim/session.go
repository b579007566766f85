package sim

import (
	"math"
	"math/rand"

	"flipspider/internal/config"
	"flipspider/internal/core"
	"flipspider/internal/theme"
)

// State is the run state machine: Menu -> Playing -> GameOver, with
// GameOver -> Playing (restart) and GameOver -> Menu (abandon). There is no
// terminal state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "menu"
	}
}

// maxDtMs caps the per-tick time delta so large scheduling gaps (suspended
// terminals, debugger pauses) cannot cause a physics explosion.
const maxDtMs = 32.0

// AudioSink receives fire-and-forget event signals from the session. The
// session never waits on it and works identically with a nil sink.
type AudioSink interface {
	OnImpulse()
	OnRunStarted()
	OnRunEnded()
	OnGameOver()
	OnPhaseChanged(tempo int)
}

// BestStore persists the single best-score value. A nil store or a failing
// store must not affect simulation correctness; the session then runs with
// best starting at 0.
type BestStore interface {
	Best() (int, error)
	SaveBest(score int) error
}

// WebStrand is the transient visual web-throw effect: two endpoints and a
// remaining lifetime. Cosmetic only; it never influences collision or score.
type WebStrand struct {
	FromX, FromY float64
	ToX, ToY     float64
	RemainingMs  float64
}

// Session owns all authoritative game state and advances it one tick at a
// time. All mutation happens inside Tick; input arrives through the queueing
// methods and is applied only at the start of the next tick.
type Session struct {
	cfg    config.GameConfig
	preset Preset
	params Params

	state  State
	player Player
	field  *Field
	score  int
	best   int
	phase  int
	theme  theme.Theme
	web    *WebStrand

	pendingImpulse bool
	lastNow        float64
	clockSet       bool

	seed  int64
	fxRng *rand.Rand // cosmetic randomness only (web anchor points)

	audio AudioSink
	store BestStore
}

// NewSession creates a session in the Menu state. The best score is loaded
// from the store once at startup; a missing or failing store yields best 0.
func NewSession(cfg config.GameConfig, seed int64, audio AudioSink, store BestStore) *Session {
	s := &Session{
		cfg:    cfg,
		preset: PresetMedium,
		state:  StateMenu,
		player: NewPlayer(cfg),
		field:  NewField(seed, cfg),
		theme:  theme.Generate(0),
		seed:   seed,
		fxRng:  rand.New(rand.NewSource(seed + 1)),
		audio:  audio,
		store:  store,
	}
	if store != nil {
		if best, err := store.Best(); err == nil {
			s.best = best
		}
	}
	return s
}

// State returns the current state machine position.
func (s *Session) State() State { return s.state }

// Score returns the current run's score.
func (s *Session) Score() int { return s.score }

// Best returns the best score seen so far, including persisted history.
func (s *Session) Best() int { return s.best }

// Phase returns the cosmetic phase index.
func (s *Session) Phase() int { return s.phase }

// Theme returns the current visual theme.
func (s *Session) Theme() theme.Theme { return s.theme }

// Preset returns the currently selected difficulty preset.
func (s *Session) Preset() Preset { return s.preset }

// Params returns the live difficulty parameters.
func (s *Session) Params() Params { return s.params }

// SelectDifficulty records the preset to use for the next run.
func (s *Session) SelectDifficulty(p Preset) {
	s.preset = p
}

// Reseed sets the obstacle seed used by the next StartRun/Restart. The
// platform calls this with wall-clock entropy between runs; tests leave the
// seed alone for reproducible layouts.
func (s *Session) Reseed(seed int64) {
	s.seed = seed
}

// StartRun applies the selected preset and enters Playing from the menu.
func (s *Session) StartRun(p Preset) {
	if s.state == StatePlaying {
		return
	}
	s.preset = p
	s.beginRun()
}

// Restart re-enters Playing from GameOver with the same preset.
func (s *Session) Restart() {
	if s.state != StateGameOver {
		return
	}
	s.beginRun()
}

// GoToMenu abandons a finished run and returns to the menu.
func (s *Session) GoToMenu() {
	if s.state != StateGameOver {
		return
	}
	s.state = StateMenu
	if s.audio != nil {
		s.audio.OnRunEnded()
	}
}

// beginRun resets every piece of run state: preset parameters, player,
// score, obstacles, transient effects, phase and theme.
func (s *Session) beginRun() {
	s.params = ParamsForPreset(s.preset, s.cfg.Presets)
	s.player.ResetRun(s.cfg)
	s.score = 0
	s.field.Reset(s.seed)
	s.web = nil
	s.pendingImpulse = false
	s.phase = 0
	s.theme = theme.Generate(0)
	s.state = StatePlaying
	if s.audio != nil {
		s.audio.OnPhaseChanged(s.theme.Tempo)
		s.audio.OnRunStarted()
	}
}

// Impulse queues a web throw. It is applied at the start of the next tick,
// never mid-step.
func (s *Session) Impulse() {
	if s.state != StatePlaying {
		return
	}
	s.pendingImpulse = true
}

// Tick advances the simulation to the given wall-clock timestamp in
// milliseconds. The time delta is clamped to maxDtMs; this is the only
// defense against pathological scheduling gaps.
func (s *Session) Tick(nowMs float64) {
	dt := maxDtMs
	if s.clockSet {
		dt = math.Min(maxDtMs, nowMs-s.lastNow)
		if dt < 0 {
			dt = 0
		}
	}
	s.lastNow = nowMs
	s.clockSet = true

	if s.state != StatePlaying {
		return
	}
	s.step(dt)
}

// step runs one simulation tick while playing.
func (s *Session) step(dtMs float64) {
	if s.pendingImpulse {
		s.pendingImpulse = false
		s.applyImpulse()
	}

	s.player.Tick(dtMs, s.cfg.Physics)
	s.decayWeb(dtMs)

	if s.outOfBounds() {
		s.endRun()
		return
	}

	s.field.Advance(s.params.Speed)
	s.field.SpawnIfNeeded(s.params.Spacing, s.params.MinGap, s.params.MaxGap)
	s.scorePass()

	if s.collides() {
		s.endRun()
	}
}

// applyImpulse performs the queued web throw: thrust the player and record
// the cosmetic web strand to a randomized anchor above the spider.
func (s *Session) applyImpulse() {
	s.player.ApplyImpulse(s.cfg.Physics.Impulse, s.cfg.Player.CooldownMs)
	s.web = &WebStrand{
		FromX:       s.player.X,
		FromY:       s.player.Y,
		ToX:         s.player.X - 40 + s.fxRng.Float64()*80,
		ToY:         s.player.Y - 120 - s.fxRng.Float64()*100,
		RemainingMs: s.cfg.Effects.WebLifetimeMs,
	}
	if s.audio != nil {
		s.audio.OnImpulse()
	}
}

// decayWeb expires the transient strand.
func (s *Session) decayWeb(dtMs float64) {
	if s.web == nil {
		return
	}
	s.web.RemainingMs -= dtMs
	if s.web.RemainingMs <= 0 {
		s.web = nil
	}
}

// outOfBounds checks the player circle against the ceiling and the floor
// band.
func (s *Session) outOfBounds() bool {
	if s.player.Y-s.player.Radius < 0 {
		return true
	}
	return s.player.Y+s.player.Radius > s.cfg.World.FloorY()
}

// scorePass marks newly passed obstacles and applies the difficulty ramp and
// phase progression. The Passed flag keeps scoring idempotent.
func (s *Session) scorePass() {
	obstacles := s.field.Obstacles()
	for i := range obstacles {
		o := &obstacles[i]
		if o.Passed || o.X+o.Width >= s.player.X-s.player.Radius {
			continue
		}
		o.Passed = true
		s.score++

		if s.score%rampEvery == 0 {
			s.params.Ramp()
		}
		if s.score%phaseEvery == 0 {
			s.phase++
			s.theme = theme.Generate(s.phase)
			if s.audio != nil {
				s.audio.OnPhaseChanged(s.theme.Tempo)
			}
		}
	}
}

// collides tests the player circle against every obstacle's padded
// rectangles. Positive padding shrinks the rectangles (more forgiving),
// negative grows them (harder); the padding is clamped to ±maxCollisionPad.
func (s *Session) collides() bool {
	pad := core.ClampF(s.params.CollisionPad, -maxCollisionPad, maxCollisionPad)
	c := core.Circle{X: s.player.X, Y: s.player.Y, R: s.player.Radius}
	floorY := s.cfg.World.FloorY()

	for _, o := range s.field.Obstacles() {
		if c.IntersectsRect(o.TopRect().Shrink(pad)) {
			return true
		}
		if c.IntersectsRect(o.BottomRect(floorY).Shrink(pad)) {
			return true
		}
	}
	return false
}

// endRun enters GameOver: freeze the player, fold the score into the best
// value and persist it, and signal the audio collaborator. Best-score
// recording is idempotent and persistence failures are ignored.
func (s *Session) endRun() {
	s.state = StateGameOver
	s.player.Alive = false
	if s.score > s.best {
		s.best = s.score
		if s.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			s.store.SaveBest(s.best)
		}
	}
	if s.audio != nil {
		s.audio.OnGameOver()
	}
}
