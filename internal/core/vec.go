package core

import (
	"fmt"
	"math"
)

// Vec2 is a 2D value used interchangeably as a point, a displacement or a size.
// All operations are component-wise and return new values.
// Division by zero and NaN follow IEEE-754 and are not guarded.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// Unscale divides both components by k.
func (v Vec2) Unscale(k float64) Vec2 {
	return Vec2{X: v.X / k, Y: v.Y / k}
}

// Equals reports exact component equality (no epsilon).
func (v Vec2) Equals(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Magnitude returns the Euclidean norm.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dot returns the dot product v·o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 2D cross product v×o.
// The sign tells which side of v the vector o lies on.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - o.X*v.Y
}

// Floor truncates toward negative infinity and returns integer coordinates.
func (v Vec2) Floor() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// String formats the vector for HUD and trace output.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", v.X, v.Y)
}
