package engine

import (
	"slices"

	"github.com/lixenwraith/storm-arena/component"
	"github.com/lixenwraith/storm-arena/parameter"
	"github.com/lixenwraith/storm-arena/vmath"
)

// CanPlace reports whether the rectangle overlaps no existing wall
func (w *World) CanPlace(rect vmath.Rect) bool {
	for _, wall := range w.Walls {
		if vmath.RectsOverlap(rect, wall.Rect) {
			return false
		}
	}
	return true
}

// PlaceWall unconditionally appends a full-durability wall
// Callers check CanPlace first
func (w *World) PlaceWall(rect vmath.Rect) *component.Wall {
	wall := &component.Wall{
		Rect:          rect,
		Durability:    parameter.WallDurability,
		MaxDurability: parameter.WallDurability,
	}
	w.Walls = append(w.Walls, wall)
	return wall
}

// RemoveWall deletes the wall at index, preserving placement order
func (w *World) RemoveWall(index int) bool {
	if index < 0 || index >= len(w.Walls) {
		return false
	}
	w.Walls = slices.Delete(w.Walls, index, index+1)
	return true
}

// CircleBlocked reports whether the circle intersects any wall
func (w *World) CircleBlocked(x, y, r float64) bool {
	for _, wall := range w.Walls {
		if vmath.CircleInRect(x, y, r, wall.Rect) {
			return true
		}
	}
	return false
}

// LineOfSight reports whether no wall contains either endpoint of the segment
func (w *World) LineOfSight(x1, y1, x2, y2 float64) bool {
	for _, wall := range w.Walls {
		if vmath.SegmentTouchesRect(x1, y1, x2, y2, wall.Rect) {
			return false
		}
	}
	return true
}
