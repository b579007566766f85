package sim

import (
	"testing"

	"flipspider/internal/config"
)

func TestFieldSpawnWhenEmpty(t *testing.T) {
	cfg := config.Default()
	f := NewField(1, cfg)

	f.SpawnIfNeeded(280, 150, 200)
	if len(f.Obstacles()) != 1 {
		t.Fatalf("obstacle count = %d, want 1", len(f.Obstacles()))
	}

	o := f.Obstacles()[0]
	if o.X != cfg.World.Width+cfg.Obstacles.Width {
		t.Errorf("spawn X = %v, want %v", o.X, cfg.World.Width+cfg.Obstacles.Width)
	}
	if o.Width != cfg.Obstacles.Width {
		t.Errorf("spawn Width = %v, want %v", o.Width, cfg.Obstacles.Width)
	}
}

func TestFieldSpawnGate(t *testing.T) {
	cfg := config.Default()
	f := NewField(1, cfg)
	spacing := 280.0

	f.SpawnIfNeeded(spacing, 150, 200)

	// Newest obstacle is still right of the threshold: no spawn
	f.SpawnIfNeeded(spacing, 150, 200)
	if len(f.Obstacles()) != 1 {
		t.Fatalf("spawned while gate closed: count = %d", len(f.Obstacles()))
	}

	// Scroll until the newest obstacle crosses worldW - spacing
	for f.Obstacles()[len(f.Obstacles())-1].X >= cfg.World.Width-spacing {
		f.Advance(2.8)
	}
	f.SpawnIfNeeded(spacing, 150, 200)
	if len(f.Obstacles()) != 2 {
		t.Fatalf("gate open but no spawn: count = %d", len(f.Obstacles()))
	}
}

func TestFieldGapBounds(t *testing.T) {
	cfg := config.Default()
	f := NewField(42, cfg)
	floorY := cfg.World.FloorY()
	minGap, maxGap := 150.0, 200.0

	for i := 0; i < 200; i++ {
		f.Reset(int64(i))
		f.SpawnIfNeeded(280, minGap, maxGap)
		o := f.Obstacles()[0]

		if o.GapH < minGap || o.GapH > maxGap {
			t.Fatalf("seed %d: GapH = %v, want [%v, %v]", i, o.GapH, minGap, maxGap)
		}
		if o.GapY < 80 {
			t.Fatalf("seed %d: GapY = %v, want >= 80 from ceiling", i, o.GapY)
		}
		if o.GapY+o.GapH > floorY-80+1 {
			t.Fatalf("seed %d: gap bottom = %v, want <= %v", i, o.GapY+o.GapH, floorY-80)
		}
	}
}

func TestFieldDegenerateGapStillSpawns(t *testing.T) {
	// Gap taller than the playable band leaves no placement span; the span
	// clamp keeps spawning defined instead of panicking or stalling.
	cfg := config.Default()
	f := NewField(1, cfg)

	huge := cfg.World.FloorY() * 2
	f.SpawnIfNeeded(280, huge, huge)
	if len(f.Obstacles()) != 1 {
		t.Fatal("degenerate gap prevented spawning")
	}
	if got := f.Obstacles()[0].GapY; got < 80 {
		t.Errorf("GapY = %v, want >= margin even when degenerate", got)
	}
}

func TestFieldAdvanceAndDespawn(t *testing.T) {
	cfg := config.Default()
	f := NewField(1, cfg)
	f.SpawnIfNeeded(280, 150, 200)

	o := f.Obstacles()[0]
	start := o.X

	f.Advance(3)
	if got := f.Obstacles()[0].X; got != start-3 {
		t.Errorf("X after Advance(3) = %v, want %v", got, start-3)
	}

	// Drag the obstacle to exactly the removal boundary: right edge at -10
	// keeps it, one more unit drops it.
	dist := o.X + o.Width + 10
	f.Advance(dist - 3)
	if len(f.Obstacles()) != 1 {
		t.Fatal("obstacle at the boundary was removed early")
	}
	f.Advance(1)
	if len(f.Obstacles()) != 0 {
		t.Fatal("obstacle past the boundary was not removed")
	}
}

func TestFieldOrderPreserved(t *testing.T) {
	cfg := config.Default()
	f := NewField(9, cfg)

	// Tight spacing keeps several obstacles alive at once
	for len(f.Obstacles()) < 4 {
		f.Advance(2.8)
		f.SpawnIfNeeded(100, 150, 200)
	}

	obstacles := f.Obstacles()
	for i := 1; i < len(obstacles); i++ {
		if obstacles[i].X <= obstacles[i-1].X {
			t.Fatalf("obstacles out of order at %d: %v then %v", i, obstacles[i-1].X, obstacles[i].X)
		}
	}
}

func TestFieldResetDeterminism(t *testing.T) {
	cfg := config.Default()
	a := NewField(77, cfg)
	b := NewField(77, cfg)

	for i := 0; i < 5; i++ {
		a.SpawnIfNeeded(280, 150, 200)
		b.SpawnIfNeeded(280, 150, 200)
		for j := 0; j < 120; j++ {
			a.Advance(2.8)
			b.Advance(2.8)
		}
	}

	oa, ob := a.Obstacles(), b.Obstacles()
	if len(oa) != len(ob) {
		t.Fatalf("field lengths differ: %d vs %d", len(oa), len(ob))
	}
	for i := range oa {
		if oa[i] != ob[i] {
			t.Fatalf("obstacle %d differs: %+v vs %+v", i, oa[i], ob[i])
		}
	}
}

func TestObstacleRects(t *testing.T) {
	o := Obstacle{X: 100, Width: 70, GapY: 200, GapH: 150}
	floorY := 580.0

	top := o.TopRect()
	if top.X != 100 || top.Y != 0 || top.W != 70 || top.H != 200 {
		t.Errorf("TopRect() = %+v", top)
	}

	bottom := o.BottomRect(floorY)
	if bottom.X != 100 || bottom.Y != 350 || bottom.W != 70 || bottom.H != 230 {
		t.Errorf("BottomRect() = %+v", bottom)
	}
}
