package sim

import (
	"flipspider/internal/theme"
)

// ObstacleView is the render-facing copy of one obstacle pair.
type ObstacleView struct {
	X, Width   float64
	GapY, GapH float64
	Passed     bool
	ColorIdx   int
}

// WebView is the render-facing copy of the transient web strand.
type WebView struct {
	FromX, FromY float64
	ToX, ToY     float64
	RemainingMs  float64
}

// Snapshot is an immutable view of the session for the render collaborator.
// The platform reads one snapshot per frame and never mutates session state.
type Snapshot struct {
	State  State
	Preset Preset
	Score  int
	Best   int
	Phase  int

	WorldW float64
	WorldH float64
	FloorH float64

	PlayerX      float64
	PlayerY      float64
	PlayerVY     float64
	PlayerRadius float64
	PlayerAlive  bool

	Obstacles []ObstacleView
	Web       *WebView
	Theme     theme.Theme
}

// Snapshot copies the current public state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:  s.state,
		Preset: s.preset,
		Score:  s.score,
		Best:   s.best,
		Phase:  s.phase,

		WorldW: s.cfg.World.Width,
		WorldH: s.cfg.World.Height,
		FloorH: s.cfg.World.FloorHeight,

		PlayerX:      s.player.X,
		PlayerY:      s.player.Y,
		PlayerVY:     s.player.VY,
		PlayerRadius: s.player.Radius,
		PlayerAlive:  s.player.Alive,

		Theme: s.theme,
	}

	obstacles := s.field.Obstacles()
	snap.Obstacles = make([]ObstacleView, len(obstacles))
	for i, o := range obstacles {
		snap.Obstacles[i] = ObstacleView{
			X:        o.X,
			Width:    o.Width,
			GapY:     o.GapY,
			GapH:     o.GapH,
			Passed:   o.Passed,
			ColorIdx: o.ColorIdx,
		}
	}

	if s.web != nil {
		w := *s.web
		snap.Web = &WebView{
			FromX:       w.FromX,
			FromY:       w.FromY,
			ToX:         w.ToX,
			ToY:         w.ToY,
			RemainingMs: w.RemainingMs,
		}
	}

	return snap
}
