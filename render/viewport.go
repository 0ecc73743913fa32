package render

import (
	"math"

	"github.com/lixenwraith/storm-arena/engine"
)

// Viewport maps the camera rectangle onto a block of terminal cells
// One cell covers ViewW/Cols by ViewH/Rows world units
type Viewport struct {
	Col, Row   int
	Cols, Rows int
	Camera     engine.Camera
}

// CellSize returns the world extent of one cell
func (v Viewport) CellSize() (float64, float64) {
	if v.Cols <= 0 || v.Rows <= 0 {
		return 0, 0
	}
	return v.Camera.W / float64(v.Cols), v.Camera.H / float64(v.Rows)
}

// ToCell projects a world point to a screen cell; ok is false outside the viewport
func (v Viewport) ToCell(x, y float64) (col, row int, ok bool) {
	cw, ch := v.CellSize()
	if cw == 0 || ch == 0 {
		return 0, 0, false
	}
	c := int(math.Floor((x - v.Camera.X) / cw))
	r := int(math.Floor((y - v.Camera.Y) / ch))
	ok = c >= 0 && c < v.Cols && r >= 0 && r < v.Rows
	return v.Col + c, v.Row + r, ok
}

// ToWorld returns the world point at the center of a screen cell
func (v Viewport) ToWorld(col, row int) (float64, float64) {
	cw, ch := v.CellSize()
	return v.Camera.X + (float64(col-v.Col)+0.5)*cw,
		v.Camera.Y + (float64(row-v.Row)+0.5)*ch
}

// cellOrigin returns the world top-left of a viewport-relative cell
func (v Viewport) cellOrigin(c, r int) (float64, float64) {
	cw, ch := v.CellSize()
	return v.Camera.X + float64(c)*cw, v.Camera.Y + float64(r)*ch
}
