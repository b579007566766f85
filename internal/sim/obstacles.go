package sim

import (
	"math/rand"

	"flipspider/internal/config"
	"flipspider/internal/core"
	"flipspider/internal/theme"
)

const (
	// despawnSlack is how far an obstacle's right edge may scroll past the
	// viewport's left edge before it is removed.
	despawnSlack = 10

	// gapEdgeMargin keeps the gap at least this many world units away from
	// the ceiling and the floor band.
	gapEdgeMargin = 80

	// minGapSpan is the floor for the gap placement range; it keeps spawning
	// defined even for degenerate viewport/gap combinations.
	minGapSpan = 1
)

// Obstacle is one scrolling pair: a top and a bottom rectangle sharing a
// horizontal position, separated by a vertical gap.
type Obstacle struct {
	X        float64 // Left edge, decreasing each tick
	Width    float64
	GapY     float64 // Top of the gap
	GapH     float64
	Passed   bool // Scoring already counted
	ColorIdx int  // Index into the theme obstacle palette, cosmetic
}

// TopRect returns the collision rectangle above the gap.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, 0, o.Width, o.GapY)
}

// BottomRect returns the collision rectangle between the gap and the floor
// band.
func (o Obstacle) BottomRect(floorY float64) core.Rect {
	bottomY := o.GapY + o.GapH
	return core.NewRect(o.X, bottomY, o.Width, floorY-bottomY)
}

// Field owns the obstacle sequence. Insertion order is spawn order is
// left-to-right spatial order; removal only ever happens at the trailing end
// in practice, and survivors always keep their order.
type Field struct {
	obstacles []Obstacle
	rng       *rand.Rand
	worldW    float64
	floorY    float64
	width     float64
}

// NewField creates an empty field with a seeded RNG.
func NewField(seed int64, cfg config.GameConfig) *Field {
	f := &Field{
		obstacles: make([]Obstacle, 0, 8),
		worldW:    cfg.World.Width,
		floorY:    cfg.World.FloorY(),
		width:     cfg.Obstacles.Width,
	}
	f.Reset(seed)
	return f
}

// Reset clears all obstacles and reseeds the RNG.
func (f *Field) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// Obstacles returns the current sequence in spawn order.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// SpawnIfNeeded appends a new obstacle at the right edge when the sequence
// is empty or the most recently spawned obstacle has scrolled left of the
// spacing threshold.
func (f *Field) SpawnIfNeeded(spacing, minGap, maxGap float64) {
	if len(f.obstacles) > 0 && f.obstacles[len(f.obstacles)-1].X >= f.worldW-spacing {
		return
	}

	gapH := minGap
	if maxGap > minGap {
		gapH = minGap + f.rng.Float64()*(maxGap-minGap)
	}

	// Gap start is uniform over the playable band minus the edge margins.
	// The span is clamped so spawning stays defined even when margins plus
	// gap exceed the band.
	span := f.floorY - 2*gapEdgeMargin - gapH
	if span < minGapSpan {
		span = minGapSpan
	}
	gapY := gapEdgeMargin + f.rng.Float64()*span

	f.obstacles = append(f.obstacles, Obstacle{
		X:        f.worldW + f.width,
		Width:    f.width,
		GapY:     gapY,
		GapH:     gapH,
		ColorIdx: f.rng.Intn(theme.PaletteSize),
	})
}

// Advance scrolls every obstacle left by speed (constant per tick, not
// dt-scaled) and removes those fully past the left edge, preserving order.
func (f *Field) Advance(speed float64) {
	for i := range f.obstacles {
		f.obstacles[i].X -= speed
	}

	alive := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.X+o.Width >= -despawnSlack {
			alive = append(alive, o)
		}
	}
	f.obstacles = alive
}
