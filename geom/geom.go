// Package geom holds the shared pose, path and box value types used as the
// data interchange surface between the walk engine and its consumers
// (renderers, test harnesses). All types are plain values; callers may copy
// them freely.
package geom

import "math"

// Point is a position in space. The walk engine only drives X and Y; Z is
// carried through unchanged for interop with 3D pose consumers.
type Point struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y, Z: p.Z + other.Z}
}

// Sub returns the component-wise difference of p and other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y, Z: p.Z - other.Z}
}

// Dist returns the planar (XY) Euclidean distance between p and other.
func (p Point) Dist(other Point) float64 {
	// math.Hypot for numerical stability.
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Quaternion is an orientation placeholder. The walk engine never rotates,
// so waypoints carry the zero quaternion.
type Quaternion struct {
	X, Y, Z, W float64
}

// Identity returns the identity rotation.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// Pose is a single waypoint: a position plus an (unused) orientation.
type Pose struct {
	Point       Point
	Orientation Quaternion
}

// Path is an ordered waypoint sequence. Insertion order is generation order.
type Path struct {
	Waypoints []Pose
}

// Len returns the number of waypoints in the path.
func (p Path) Len() int {
	return len(p.Waypoints)
}

// First returns the first waypoint, or the zero Pose for an empty path.
func (p Path) First() Pose {
	if len(p.Waypoints) == 0 {
		return Pose{}
	}
	return p.Waypoints[0]
}

// Last returns the last waypoint, or the zero Pose for an empty path.
func (p Path) Last() Pose {
	if len(p.Waypoints) == 0 {
		return Pose{}
	}
	return p.Waypoints[len(p.Waypoints)-1]
}

// Size holds axis-aligned dimensions.
type Size struct {
	X, Y, Z float64
}

// Box is an axis-aligned bounding box anchored at its center.
type Box struct {
	Center Pose
	Size   Size
}
