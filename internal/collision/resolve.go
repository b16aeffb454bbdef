package collision

import "github.com/vovakirdan/tui-slide/internal/core"

// Axis names the coordinate a resolution snapped.
type Axis int

const (
	// AxisX means the actor hit a vertical face (a wall); x was corrected.
	AxisX Axis = iota
	// AxisY means the actor hit a horizontal face (floor or ceiling); y was corrected.
	AxisY
)

// String returns "x" or "y".
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Resolution is the outcome of ResolveSlide.
type Resolution struct {
	// Origin is the corrected hitbox origin.
	Origin core.Vec2
	// Axis is the coordinate that was snapped; the other one is left as moved.
	Axis Axis
	// Corner is the obstacle corner the actor's leading corner was tested against.
	Corner core.Vec2
	// Leading is the offset from the hitbox origin to its leading corner.
	Leading core.Vec2
}

// LeadingOffsets picks, per axis, the actor corner that faces the direction of
// travel (ho, relative to the hitbox origin) and the obstacle corner that faces
// the actor (bo, relative to the obstacle origin). Zero displacement counts as
// positive on that axis.
func LeadingOffsets(d, hitbox, obstacle core.Vec2) (ho, bo core.Vec2) {
	if d.X >= 0 {
		ho.X, bo.X = hitbox.X, 0
	} else {
		ho.X, bo.X = 0, obstacle.X
	}
	if d.Y >= 0 {
		ho.Y, bo.Y = hitbox.Y, 0
	} else {
		ho.Y, bo.Y = 0, obstacle.Y
	}
	return ho, bo
}

// BlockedAxis decides which face of the obstacle the leading corner ran into.
// c and pc are the leading corner this frame and last frame, corner is the
// obstacle corner facing it. The movement dp = c - pc and the vector from pc
// to the corner form a half-plane test: the operand order flips for the
// off-diagonal quadrants so that a non-negative cross product always means the
// trajectory passes the corner on the wall side. Zero selects AxisX.
func BlockedAxis(c, pc, corner core.Vec2) Axis {
	dp := c.Sub(pc)
	toCorner := corner.Sub(pc)

	var side float64
	if (dp.X >= 0 && dp.Y >= 0) || (dp.X < 0 && dp.Y < 0) {
		side = toCorner.Cross(dp)
	} else {
		side = dp.Cross(toCorner)
	}

	if side >= 0 {
		return AxisX
	}
	return AxisY
}

// Snap moves the leading corner c onto the obstacle corner along one axis only.
func Snap(c, corner core.Vec2, axis Axis) core.Vec2 {
	if axis == AxisX {
		return core.Vec2{X: corner.X, Y: c.Y}
	}
	return core.Vec2{X: c.X, Y: corner.Y}
}

// ResolveSlide corrects an overlapping hitbox. current and previous are the
// hitbox origins this frame and last frame, size is the hitbox size.
// It must only be called when Collides(NewBox(current, size), obstacle) is true;
// it performs no check of its own and handles exactly one obstacle.
func ResolveSlide(current, previous, size core.Vec2, obstacle Box) Resolution {
	ho, bo := LeadingOffsets(current.Sub(previous), size, obstacle.Size)

	c := current.Add(ho)
	pc := previous.Add(ho)
	corner := obstacle.Origin.Add(bo)

	axis := BlockedAxis(c, pc, corner)

	return Resolution{
		Origin:  Snap(c, corner, axis).Sub(ho),
		Axis:    axis,
		Corner:  corner,
		Leading: ho,
	}
}
