package collision

import "github.com/vovakirdan/tui-slide/internal/core"

// Body is the per-frame state of the moving actor.
//
// Position is the sprite origin. The hitbox sits at Position+Inset and has
// size Hitbox. Previous is last frame's Position after any correction, which
// is what the resolver uses to infer the direction of approach.
type Body struct {
	Position core.Vec2
	Previous core.Vec2
	Hitbox   core.Vec2
	Inset    core.Vec2
}

// NewBody places a body at rest at position.
func NewBody(position, hitbox, inset core.Vec2) Body {
	return Body{
		Position: position,
		Previous: position,
		Hitbox:   hitbox,
		Inset:    inset,
	}
}

// InsetFor returns the hitbox offset inside a sprite cell: centred
// horizontally and aligned to the bottom edge.
func InsetFor(sprite, hitbox core.Vec2) core.Vec2 {
	return core.Vec2{X: (sprite.X - hitbox.X) / 2, Y: sprite.Y - hitbox.Y}
}

// Box returns the body's current hitbox.
func (b Body) Box() Box {
	return Box{Origin: b.Position.Add(b.Inset), Size: b.Hitbox}
}

// PreviousBox returns last frame's hitbox.
func (b Body) PreviousBox() Box {
	return Box{Origin: b.Previous.Add(b.Inset), Size: b.Hitbox}
}

// Move records the current position as previous and applies an unconstrained delta.
func (b Body) Move(delta core.Vec2) Body {
	b.Previous = b.Position
	b.Position = b.Position.Add(delta)
	return b
}

// Contact describes what Step did in one frame.
type Contact struct {
	// Hit is true when the candidate overlapped the obstacle and was corrected.
	Hit bool
	// Axis is the corrected coordinate; meaningful only when Hit is true.
	Axis Axis
	// Candidate is the unconstrained position after the move.
	Candidate core.Vec2
	// Corrected is the final position; equal to Candidate when Hit is false.
	Corrected core.Vec2
}

// Step advances the body by delta and resolves a collision with obstacle.
// When the moved hitbox does not overlap, the candidate position is kept as is.
func Step(b Body, delta core.Vec2, obstacle Box) (Body, Contact) {
	b = b.Move(delta)
	contact := Contact{Candidate: b.Position, Corrected: b.Position}

	if !Collides(b.Box(), obstacle) {
		return b, contact
	}

	res := ResolveSlide(b.Box().Origin, b.PreviousBox().Origin, b.Hitbox, obstacle)
	b.Position = res.Origin.Sub(b.Inset)

	contact.Hit = true
	contact.Axis = res.Axis
	contact.Corrected = b.Position
	return b, contact
}
