package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/communityrpg/maps"
	"github.com/milk9111/communityrpg/viewport"
)

// TicksPerSecond is the fixed update rate; velocities are per tick.
const TicksPerSecond = 60

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeWall
)

// CollisionWorld moves the player through a top-down world and stops it at
// wall tiles. There is no gravity.
type CollisionWorld struct {
	space *cp.Space

	playerBody  *cp.Body
	playerShape *cp.Shape
	wallRects   []viewport.Rect
}

// NewCollisionWorld builds static boxes for walls and a body for the
// player's box.
func NewCollisionWorld(walls []maps.Tile, player viewport.Rect) *CollisionWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	cw := &CollisionWorld{space: space, wallRects: MergeRects(walls)}
	for _, r := range cw.wallRects {
		shape := cp.NewBox2(space.StaticBody, cp.BB{L: r.Left, B: r.Bottom, R: r.Right, T: r.Top}, 0)
		shape.SetFriction(0)
		shape.SetElasticity(0)
		shape.SetCollisionType(collisionTypeWall)
		space.AddShape(shape)
	}

	w := player.Right - player.Left
	h := player.Top - player.Bottom
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: player.Left + w/2, Y: player.Bottom + h/2})
	space.AddBody(body)

	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypePlayer)
	space.AddShape(shape)

	cw.playerBody = body
	cw.playerShape = shape
	return cw
}

// WallCount is the number of static boxes after merging.
func (cw *CollisionWorld) WallCount() int {
	return len(cw.wallRects)
}

// Step moves p by its per-tick velocity, resolving wall contacts, and
// writes the resolved centre back.
func (cw *CollisionWorld) Step(p *Player) {
	cw.playerBody.SetVelocity(p.ChangeX*TicksPerSecond, p.ChangeY*TicksPerSecond)
	cw.space.Step(1.0 / TicksPerSecond)

	pos := cw.playerBody.Position()
	p.CenterX = pos.X
	p.CenterY = pos.Y
	cw.playerBody.SetVelocity(0, 0)
}

// MergeRects greedily merges grid-aligned tiles of equal size into larger
// boxes so the physics space holds fewer shapes. Tiles of a different size
// or off the grid are kept as single boxes.
func MergeRects(tiles []maps.Tile) []viewport.Rect {
	if len(tiles) == 0 {
		return nil
	}

	type cell struct{ col, row int }
	cw, ch := tiles[0].W, tiles[0].H
	cells := make(map[cell]bool)
	var out []viewport.Rect
	minC, minR := math.MaxInt, math.MaxInt
	maxC, maxR := math.MinInt, math.MinInt

	for _, t := range tiles {
		col := int(math.Round(t.Left / cw))
		row := int(math.Round(t.Bottom / ch))
		aligned := t.W == cw && t.H == ch &&
			math.Abs(t.Left-float64(col)*cw) < 1e-6 && math.Abs(t.Bottom-float64(row)*ch) < 1e-6
		if !aligned {
			out = append(out, viewport.Rect{Left: t.Left, Right: t.Right(), Bottom: t.Bottom, Top: t.Top()})
			continue
		}
		cells[cell{col, row}] = true
		minC, maxC = min(minC, col), max(maxC, col)
		minR, maxR = min(minR, row), max(maxR, row)
	}

	processed := make(map[cell]bool, len(cells))
	free := func(c cell) bool { return cells[c] && !processed[c] }

	for row := minR; row <= maxR; row++ {
		for col := minC; col <= maxC; col++ {
			if !free(cell{col, row}) {
				continue
			}

			w := 1
			for free(cell{col + w, row}) {
				w++
			}

			h := 1
		heightLoop:
			for {
				for xi := col; xi < col+w; xi++ {
					if !free(cell{xi, row + h}) {
						break heightLoop
					}
				}
				h++
			}

			for y := row; y < row+h; y++ {
				for x := col; x < col+w; x++ {
					processed[cell{x, y}] = true
				}
			}
			out = append(out, viewport.Rect{
				Left:   float64(col) * cw,
				Right:  float64(col+w) * cw,
				Bottom: float64(row) * ch,
				Top:    float64(row+h) * ch,
			})
		}
	}
	return out
}
