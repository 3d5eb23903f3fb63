// Package physics provides collision detection, wrapping and random utilities.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return mgl64.Vec2{x2 - x1, y2 - y1}.Len()
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// CirclesOverlap checks if two circles overlap (touching does not count).
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Direction returns the unit vector pointing from (fromX, fromY) to (toX, toY).
// Coincident points yield the +X axis, matching atan2(0, 0) = 0.
func Direction(fromX, fromY, toX, toY float64) (float64, float64) {
	angle := math.Atan2(toY-fromY, toX-fromX)
	return math.Cos(angle), math.Sin(angle)
}

// Rotate rotates the offset (x, y) around the origin by angle radians.
func Rotate(x, y, angle float64) (float64, float64) {
	v := mgl64.Rotate2D(angle).Mul2x1(mgl64.Vec2{x, y})
	return v.X(), v.Y()
}
