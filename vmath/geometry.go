// Package vmath provides the float geometry used by movement and collision
package vmath

import "math"

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle midpoint
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// CircleInRect reports whether the circle reaches into the rectangle
// The closest rectangle point is found by clamping the center into the bounds
func CircleInRect(cx, cy, r float64, rect Rect) bool {
	x := Clamp(cx, rect.X, rect.X+rect.W)
	y := Clamp(cy, rect.Y, rect.Y+rect.H)
	dx, dy := cx-x, cy-y
	return dx*dx+dy*dy < r*r
}

// RectsOverlap is a strict AABB test; rectangles sharing only an edge do not overlap
func RectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

// PointInRectOpen reports whether the point lies strictly inside the rectangle
func PointInRectOpen(x, y float64, rect Rect) bool {
	return x > rect.X && x < rect.X+rect.W && y > rect.Y && y < rect.Y+rect.H
}

// pointInRectClosed includes the boundary
func pointInRectClosed(x, y float64, rect Rect) bool {
	return x >= rect.X && x <= rect.X+rect.W && y >= rect.Y && y <= rect.Y+rect.H
}

// SegmentTouchesRect reports whether either segment endpoint lies inside the rectangle
// Only endpoints are tested: a segment crossing the rectangle with both ends outside returns false
func SegmentTouchesRect(x1, y1, x2, y2 float64, rect Rect) bool {
	return pointInRectClosed(x1, y1, rect) || pointInRectClosed(x2, y2, rect)
}
