// Package collision detects overlap between an actor and a single static
// axis-aligned obstacle and corrects the actor's position so it slides along
// the face that blocked it.
//
// Everything here is a pure function of its inputs. There is no validation:
// negative sizes and NaN coordinates produce whatever IEEE-754 arithmetic and
// comparison produce.
package collision

import "github.com/vovakirdan/tui-slide/internal/core"

// Box is an axis-aligned rectangle in world units with y growing downward.
// Origin is the top-left corner and Origin+Size the bottom-right corner.
type Box struct {
	Origin core.Vec2
	Size   core.Vec2
}

// NewBox creates a box from its top-left corner and size.
func NewBox(origin, size core.Vec2) Box {
	return Box{Origin: origin, Size: size}
}

// Max returns the bottom-right corner.
func (b Box) Max() core.Vec2 {
	return b.Origin.Add(b.Size)
}

// Collides reports whether two boxes overlap with positive area.
// Boxes that share only an edge or a corner do not collide, so an actor
// resting flush against an obstacle is not in contact.
func Collides(a, b Box) bool {
	return CollidesRects(a.Origin, a.Size, b.Origin, b.Size)
}

// CollidesRects is Collides over bare origin/size pairs.
func CollidesRects(r1, s1, r2, s2 core.Vec2) bool {
	return r2.X < r1.X+s1.X && r1.X < r2.X+s2.X && r2.Y < r1.Y+s1.Y && r1.Y < r2.Y+s2.Y
}
