package maze

import (
	"testing"
	"time"

	"github.com/vovakirdan/chomp/internal/core"
)

// wallGrid returns a 10x10 open grid with walls at the given tiles.
func wallGrid(cell int, walls ...[2]int) *Grid {
	kinds := makeKinds(10, 10)
	for _, w := range walls {
		kinds[w[0]][w[1]] = Wall
	}
	return NewGrid(kinds, cell)
}

func TestResolveCollisionClampsMovementAxis(t *testing.T) {
	g := wallGrid(16, [2]int{4, 2})
	e := &Entity{
		Position:  core.V(54, 40),
		HalfSize:  core.V(8, 8),
		Direction: DirRight,
	}
	c := NewController(e, g, DefaultSnapGranularity)

	got := c.ResolveCollision(e.Position, core.V(10, 0))
	if got != core.V(56, 40) {
		t.Errorf("ResolveCollision() = %v, expected (56, 40)", got)
	}
}

func TestResolveCollisionPerDirection(t *testing.T) {
	tests := []struct {
		name     string
		dir      Direction
		pos      core.Vec2
		disp     core.Vec2
		wall     [2]int
		expected core.Vec2
	}{
		{"up", DirUp, core.V(40, 54), core.V(0, -10), [2]int{2, 2}, core.V(40, 56)},
		{"down", DirDown, core.V(40, 54), core.V(0, 10), [2]int{2, 4}, core.V(40, 56)},
		{"left", DirLeft, core.V(58, 40), core.V(-10, 0), [2]int{2, 2}, core.V(56, 40)},
		{"right", DirRight, core.V(54, 40), core.V(10, 0), [2]int{4, 2}, core.V(56, 40)},
		{"free", DirRight, core.V(40, 40), core.V(3, 0), [2]int{9, 9}, core.V(43, 40)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := &Entity{Position: tc.pos, HalfSize: core.V(8, 8), Direction: tc.dir}
			c := NewController(e, wallGrid(16, tc.wall), DefaultSnapGranularity)

			if got := c.ResolveCollision(tc.pos, tc.disp); got != tc.expected {
				t.Errorf("ResolveCollision(%v, %v) = %v, expected %v", tc.pos, tc.disp, got, tc.expected)
			}
		})
	}
}

func TestResolveCollisionNoneDoesNotClamp(t *testing.T) {
	g := wallGrid(16, [2]int{4, 2})
	e := &Entity{Position: core.V(54, 40), HalfSize: core.V(8, 8), Direction: DirNone}
	c := NewController(e, g, DefaultSnapGranularity)

	if got := c.ResolveCollision(e.Position, core.V(10, 0)); got != core.V(64, 40) {
		t.Errorf("ResolveCollision() = %v, expected (64, 40)", got)
	}
}

func TestResolveCollisionFirstHitOnly(t *testing.T) {
	// Walls above (3,1) and to the right (4,2) of tile (3,2).
	g := wallGrid(16, [2]int{3, 1}, [2]int{4, 2})
	e := &Entity{Position: core.V(54, 40), HalfSize: core.V(8, 8), Direction: DirRight}
	c := NewController(e, g, DefaultSnapGranularity)

	// The box at (64, 40) spans y 32..48 and touches the up wall only at
	// its edge, so the right wall is the first real hit.
	if got := c.ResolveCollision(e.Position, core.V(10, 0)); got != core.V(56, 40) {
		t.Errorf("ResolveCollision() = %v, expected (56, 40)", got)
	}

	// Overlap the up wall too; it wins and clamps x against its left edge.
	got := c.ResolveCollision(core.V(54, 39), core.V(10, 0))
	if got != core.V(40, 39) {
		t.Errorf("ResolveCollision() = %v, expected (40, 39)", got)
	}
}

func TestProcessInputPriority(t *testing.T) {
	tests := []struct {
		name     string
		keys     []core.Key
		start    Direction
		expected Direction
	}{
		{"up and right", []core.Key{core.KeyUp, core.KeyRight}, DirNone, DirRight},
		{"up and down", []core.Key{core.KeyUp, core.KeyDown}, DirNone, DirDown},
		{"down and left", []core.Key{core.KeyDown, core.KeyLeft}, DirNone, DirLeft},
		{"all", []core.Key{core.KeyUp, core.KeyDown, core.KeyLeft, core.KeyRight}, DirNone, DirRight},
		{"none keeps direction", nil, DirLeft, DirLeft},
		{"unrelated key", []core.Key{core.KeyPause}, DirUp, DirUp},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := core.NewInputState()
			var events []core.KeyEvent
			for _, k := range tc.keys {
				events = append(events, core.Press(k))
			}
			in.Refresh(events)

			e := &Entity{Direction: tc.start}
			c := NewController(e, NewOpenGrid(4, 4, 16), DefaultSnapGranularity)
			c.ProcessInput(in)

			if e.Direction != tc.expected {
				t.Errorf("Direction = %v, expected %v", e.Direction, tc.expected)
			}
		})
	}
}

func TestProcessInputHeldKey(t *testing.T) {
	in := core.NewInputState()
	in.Refresh([]core.KeyEvent{core.Press(core.KeyDown)})
	in.Refresh(nil)

	e := &Entity{}
	NewController(e, NewOpenGrid(4, 4, 16), DefaultSnapGranularity).ProcessInput(in)
	if e.Direction != DirDown {
		t.Errorf("Direction = %v, expected down from a held key", e.Direction)
	}
}

func TestDisplacement(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected core.Vec2
	}{
		{DirUp, core.V(0, -5)},
		{DirDown, core.V(0, 5)},
		{DirLeft, core.V(-5, 0)},
		{DirRight, core.V(5, 0)},
		{DirNone, core.V(0, 0)},
	}

	for _, tc := range tests {
		if got := Displacement(tc.dir, 0.25, 20); got != tc.expected {
			t.Errorf("Displacement(%v) = %v, expected %v", tc.dir, got, tc.expected)
		}
	}
}

func TestSnapToGrid(t *testing.T) {
	tests := []struct {
		in, expected core.Vec2
		g            float64
	}{
		{core.V(101, 50), core.V(104, 48), 8},
		{core.V(100, 52), core.V(104, 56), 8}, // halves round up
		{core.V(99.6, 43.4), core.V(104, 40), 8},
		{core.V(16, 0), core.V(16, 0), 8},
		{core.V(-3, -5), core.V(0, -8), 8},
		{core.V(7, 7), core.V(7, 7), 0},
	}

	for _, tc := range tests {
		if got := SnapToGrid(tc.in, tc.g); got != tc.expected {
			t.Errorf("SnapToGrid(%v, %v) = %v, expected %v", tc.in, tc.g, got, tc.expected)
		}
	}
}

func TestRotation(t *testing.T) {
	tests := []struct {
		dir      Direction
		expected float64
	}{
		{DirUp, 270},
		{DirDown, 90},
		{DirLeft, 180},
		{DirRight, 0},
		{DirNone, 45},
	}

	for _, tc := range tests {
		if got := Rotation(tc.dir, 45); got != tc.expected {
			t.Errorf("Rotation(%v) = %v, expected %v", tc.dir, got, tc.expected)
		}
	}
}

func TestUpdateSnapsOnTurn(t *testing.T) {
	src := &core.ManualTime{}
	f := core.NewFrameContext(src, time.Second)

	e := &Entity{
		Position:          core.V(101, 50),
		HalfSize:          core.V(8, 8),
		Direction:         DirRight,
		PreviousDirection: DirRight,
		Speed:             0.125,
	}
	c := NewController(e, NewOpenGrid(20, 20, 16), 8)

	// Zero elapsed time: only the turn snap moves the entity.
	f.Begin([]core.KeyEvent{core.Press(core.KeyUp)})
	c.Update(f.Input, f.Clock)

	if e.Position != core.V(104, 48) {
		t.Errorf("Position = %v, expected (104, 48)", e.Position)
	}
	if e.Direction != DirUp || e.PreviousDirection != DirUp {
		t.Errorf("Direction/PreviousDirection = %v/%v, expected up/up", e.Direction, e.PreviousDirection)
	}
	if e.Rotation != 270 {
		t.Errorf("Rotation = %v, expected 270", e.Rotation)
	}

	// Keep going up for 80ms without turning: no snap.
	src.Advance(80)
	f.Begin(nil)
	c.Update(f.Input, f.Clock)

	if e.Position != core.V(104, 38) {
		t.Errorf("Position = %v, expected (104, 38)", e.Position)
	}
}

func TestUpdateStopsAtWall(t *testing.T) {
	src := &core.ManualTime{}
	f := core.NewFrameContext(src, time.Second)

	g := wallGrid(16, [2]int{6, 2})
	e := &Entity{
		Position:          core.V(72, 40),
		HalfSize:          core.V(8, 8),
		Direction:         DirRight,
		PreviousDirection: DirRight,
		Speed:             0.1,
	}
	c := NewController(e, g, 8)

	for range 20 {
		src.Advance(16)
		f.Begin(nil)
		c.Update(f.Input, f.Clock)
		if e.Bounds().Intersects(g.Tile(6, 2).Rect) {
			t.Fatalf("entity entered the wall at %v", e.Position)
		}
	}

	if e.Position.X != 88 {
		t.Errorf("Position.X = %v, expected 88", e.Position.X)
	}
}

func TestEntityPose(t *testing.T) {
	e := &Entity{Position: core.V(3, 4), Rotation: 90}
	p := e.Pose()
	if p.Position != core.V(3, 4) || p.Rotation != 90 {
		t.Errorf("Pose() = %+v, expected {(3,4) 90}", p)
	}
}
