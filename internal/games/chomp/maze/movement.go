package maze

import (
	"math"

	"github.com/vovakirdan/chomp/internal/core"
)

// Direction is the movement direction of an entity.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for the direction in world space (y grows down).
func (d Direction) Delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// DefaultSnapGranularity is the alignment applied to positions on a turn.
const DefaultSnapGranularity = 8

// Entity is a controllable actor. Position is the center of its box.
type Entity struct {
	Position          core.Vec2
	HalfSize          core.Vec2
	Direction         Direction
	PreviousDirection Direction
	Speed             float64 // world units per millisecond
	Rotation          float64 // degrees, visual only
}

// Bounds returns the entity's current world box.
func (e *Entity) Bounds() core.RectF {
	return boxAt(e.Position, e.HalfSize)
}

// Pose is what the renderer needs to draw an entity.
type Pose struct {
	Position core.Vec2
	Rotation float64
}

// Pose returns the entity's current pose.
func (e *Entity) Pose() Pose {
	return Pose{Position: e.Position, Rotation: e.Rotation}
}

func boxAt(center, half core.Vec2) core.RectF {
	return core.NewRectF(center.X-half.X, center.Y-half.Y, 2*half.X, 2*half.Y)
}

// neighbourOffsets is the fixed scan order used by collision resolution:
// up, down, left, right, up-left, up-right, down-left, down-right.
var neighbourOffsets = [8][2]int{
	{0, -1},
	{0, 1},
	{-1, 0},
	{1, 0},
	{-1, -1},
	{1, -1},
	{-1, 1},
	{1, 1},
}

// Controller moves one entity through a grid, one frame at a time.
type Controller struct {
	Entity *Entity

	grid *Grid
	snap float64
}

// NewController binds an entity to a grid. snap is the turn alignment
// granularity in world units.
func NewController(e *Entity, grid *Grid, snap float64) *Controller {
	return &Controller{Entity: e, grid: grid, snap: snap}
}

// Grid returns the grid the controller moves through.
func (c *Controller) Grid() *Grid {
	return c.grid
}

// Update runs one frame of movement: input, displacement, collision,
// turn snapping and rotation.
func (c *Controller) Update(in *core.InputState, clock *core.Clock) {
	e := c.Entity

	c.ProcessInput(in)

	disp := Displacement(e.Direction, e.Speed, clock.DeltaTime)
	e.Position = c.ResolveCollision(e.Position, disp)

	if e.Direction != e.PreviousDirection {
		e.Position = SnapToGrid(e.Position, c.snap)
	}

	e.Rotation = Rotation(e.Direction, e.Rotation)
	e.PreviousDirection = e.Direction
}

// ProcessInput checks Up, Down, Left, Right in that order; each active key
// overwrites the direction, so the last one wins. With no active key the
// direction is left unchanged.
func (c *Controller) ProcessInput(in *core.InputState) {
	if active(in, core.KeyUp) {
		c.Entity.Direction = DirUp
	}
	if active(in, core.KeyDown) {
		c.Entity.Direction = DirDown
	}
	if active(in, core.KeyLeft) {
		c.Entity.Direction = DirLeft
	}
	if active(in, core.KeyRight) {
		c.Entity.Direction = DirRight
	}
}

func active(in *core.InputState, k core.Key) bool {
	return in.IsKeyDown(k) || in.IsKeyHeld(k)
}

// Displacement returns the axis-aligned move for one frame.
func Displacement(d Direction, speed, dt float64) core.Vec2 {
	dx, dy := d.Delta()
	return core.V(dx*speed*dt, dy*speed*dt)
}

// ResolveCollision applies disp to pos and pushes the result out of the
// first wall found among the eight neighbours of pos's tile. Only the axis
// of the current direction is corrected, and scanning stops at the first hit.
func (c *Controller) ResolveCollision(pos, disp core.Vec2) core.Vec2 {
	half := c.Entity.HalfSize
	tx, ty := c.grid.WorldToTile(pos.X, pos.Y)

	proposed := pos.Add(disp)
	box := boxAt(proposed, half)

	for _, off := range neighbourOffsets {
		tile := c.grid.Tile(tx+off[0], ty+off[1])
		if tile.Kind != Wall || !box.Intersects(tile.Rect) {
			continue
		}

		switch c.Entity.Direction {
		case DirUp:
			proposed.Y = tile.Rect.Bottom() + half.Y
		case DirDown:
			proposed.Y = tile.Rect.Top() - half.Y
		case DirLeft:
			proposed.X = tile.Rect.Right() + half.X
		case DirRight:
			proposed.X = tile.Rect.Left() - half.X
		}
		break
	}

	return proposed
}

// SnapToGrid rounds both components to the nearest multiple of granularity,
// rounding halves up.
func SnapToGrid(p core.Vec2, granularity float64) core.Vec2 {
	if granularity <= 0 {
		return p
	}
	return core.V(snapAxis(p.X, granularity), snapAxis(p.Y, granularity))
}

func snapAxis(v, g float64) float64 {
	v = math.Round(v)
	rem := math.Mod(v, g)
	if rem < 0 {
		rem += g
	}
	if rem >= g/2 {
		return v + (g - rem)
	}
	return v - rem
}

// Rotation maps a direction to its facing angle in degrees. DirNone keeps
// the current angle.
func Rotation(d Direction, current float64) float64 {
	switch d {
	case DirUp:
		return 270
	case DirDown:
		return 90
	case DirLeft:
		return 180
	case DirRight:
		return 0
	default:
		return current
	}
}
