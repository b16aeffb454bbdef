package collision

import (
	"testing"

	"github.com/vovakirdan/tui-slide/internal/core"
)

// The sample arena: a 100x100 obstacle and a 24x30 hitbox inside a 32x32 sprite.
var (
	obstacle = NewBox(core.V(300, 200), core.V(100, 100))
	hitbox   = core.V(24, 30)
	inset    = InsetFor(core.V(32, 32), hitbox)
)

func TestCollides(t *testing.T) {
	a := NewBox(core.V(0, 0), core.V(10, 10))

	tests := []struct {
		name     string
		b        Box
		expected bool
	}{
		{"shared right edge", NewBox(core.V(10, 0), core.V(10, 10)), false},
		{"shared bottom edge", NewBox(core.V(0, 10), core.V(10, 10)), false},
		{"shared corner only", NewBox(core.V(10, 10), core.V(10, 10)), false},
		{"one unit overlap", NewBox(core.V(9, 0), core.V(10, 10)), true},
		{"fractional overlap", NewBox(core.V(9.75, 9.75), core.V(1, 1)), true},
		{"contained", NewBox(core.V(2, 2), core.V(3, 3)), true},
		{"separated", NewBox(core.V(20, 20), core.V(5, 5)), false},
		{"overlap on x only", NewBox(core.V(5, 12), core.V(10, 10)), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(a, tc.b); got != tc.expected {
				t.Errorf("Collides(a, b) = %v, expected %v", got, tc.expected)
			}
			if got := Collides(tc.b, a); got != tc.expected {
				t.Errorf("Collides(b, a) = %v, expected %v", got, tc.expected)
			}
			if got := CollidesRects(a.Origin, a.Size, tc.b.Origin, tc.b.Size); got != tc.expected {
				t.Errorf("CollidesRects() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInsetFor(t *testing.T) {
	if !inset.Equals(core.V(4, 2)) {
		t.Errorf("InsetFor() = %v, expected (4, 2)", inset)
	}
}

func TestLeadingOffsets(t *testing.T) {
	size := core.V(100, 50)

	tests := []struct {
		name   string
		d      core.Vec2
		ho, bo core.Vec2
	}{
		{"right-down", core.V(4, 4), core.V(24, 30), core.V(0, 0)},
		{"zero counts as positive", core.V(0, 0), core.V(24, 30), core.V(0, 0)},
		{"left", core.V(-4, 0), core.V(0, 30), core.V(100, 0)},
		{"up", core.V(0, -4), core.V(24, 0), core.V(0, 50)},
		{"left-up", core.V(-1, -1), core.V(0, 0), core.V(100, 50)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ho, bo := LeadingOffsets(tc.d, hitbox, size)
			if !ho.Equals(tc.ho) || !bo.Equals(tc.bo) {
				t.Errorf("LeadingOffsets(%v) = %v, %v; expected %v, %v", tc.d, ho, bo, tc.ho, tc.bo)
			}
		})
	}
}

func TestBlockedAxis(t *testing.T) {
	corner := core.V(0, 0)

	tests := []struct {
		name     string
		pc, c    core.Vec2
		expected Axis
	}{
		// Moving right with the leading corner below the corner: wall.
		{"right below corner", core.V(-2, 5), core.V(2, 5), AxisX},
		// Moving down with the leading corner right of the corner: floor.
		{"down right of corner", core.V(5, -2), core.V(5, 2), AxisY},
		// Moving left below a right-hand corner: wall.
		{"left below corner", core.V(2, 5), core.V(-2, 5), AxisX},
		// Moving up with the leading corner right of the corner: ceiling.
		{"up right of corner", core.V(5, 2), core.V(5, -2), AxisY},
		// Diagonal passing below the corner hits the wall.
		{"diagonal below", core.V(-3, -1), core.V(1, 3), AxisX},
		// Diagonal passing beside the corner hits the floor.
		{"diagonal beside", core.V(-1, -3), core.V(3, 1), AxisY},
		// Exactly through the corner: zero cross product, wall wins.
		{"through corner", core.V(-2, -2), core.V(2, 2), AxisX},
		// No movement at all: zero cross product, wall wins.
		{"stationary", core.V(1, 1), core.V(1, 1), AxisX},
		// Both components negative take the same operand order as both positive.
		{"up-left diagonal beside", core.V(3, 1), core.V(-1, -3), AxisX},
		{"up-left diagonal below", core.V(1, 3), core.V(-3, -1), AxisY},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := BlockedAxis(tc.c, tc.pc, corner); got != tc.expected {
				t.Errorf("BlockedAxis(%v, %v) = %v, expected %v", tc.c, tc.pc, got, tc.expected)
			}
		})
	}
}

func TestSnap(t *testing.T) {
	c := core.V(302, 250)
	corner := core.V(300, 200)

	if got := Snap(c, corner, AxisX); !got.Equals(core.V(300, 250)) {
		t.Errorf("Snap(AxisX) = %v", got)
	}
	if got := Snap(c, corner, AxisY); !got.Equals(core.V(302, 200)) {
		t.Errorf("Snap(AxisY) = %v", got)
	}
}

func TestStepScenarios(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Vec2
		delta    core.Vec2
		hit      bool
		axis     Axis
		expected core.Vec2
	}{
		{
			name:     "clear of obstacle passes through",
			start:    core.V(100, 100),
			delta:    core.V(4, 4),
			expected: core.V(104, 104),
		},
		{
			name:     "flush against left face is not a contact",
			start:    core.V(268, 218),
			delta:    core.V(4, 0),
			expected: core.V(272, 218),
		},
		{
			name:     "horizontal block from the left",
			start:    core.V(270, 218),
			delta:    core.V(4, 0),
			hit:      true,
			axis:     AxisX,
			expected: core.V(272, 218),
		},
		{
			name:     "horizontal block from the right",
			start:    core.V(398, 218),
			delta:    core.V(-4, 0),
			hit:      true,
			axis:     AxisX,
			expected: core.V(396, 218),
		},
		{
			name:     "vertical block from above",
			start:    core.V(316, 166),
			delta:    core.V(0, 4),
			hit:      true,
			axis:     AxisY,
			expected: core.V(316, 168),
		},
		{
			name:     "vertical block from below",
			start:    core.V(316, 300),
			delta:    core.V(0, -4),
			hit:      true,
			axis:     AxisY,
			expected: core.V(316, 298),
		},
		{
			name:     "diagonal into left face slides down",
			start:    core.V(272, 218),
			delta:    core.V(4, 4),
			hit:      true,
			axis:     AxisX,
			expected: core.V(272, 222),
		},
		{
			name:     "diagonal onto top face slides right",
			start:    core.V(316, 168),
			delta:    core.V(4, 4),
			hit:      true,
			axis:     AxisY,
			expected: core.V(320, 168),
		},
		{
			name:     "45 degrees into the corner snaps x",
			start:    core.V(270, 166),
			delta:    core.V(4, 4),
			hit:      true,
			axis:     AxisX,
			expected: core.V(272, 170),
		},
		{
			name:     "already overlapping with no input snaps x",
			start:    core.V(306, 208),
			delta:    core.V(0, 0),
			hit:      true,
			axis:     AxisX,
			expected: core.V(272, 208),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBody(tc.start, hitbox, inset)
			next, contact := Step(b, tc.delta, obstacle)

			if contact.Hit != tc.hit {
				t.Fatalf("Hit = %v, expected %v", contact.Hit, tc.hit)
			}
			if tc.hit && contact.Axis != tc.axis {
				t.Errorf("Axis = %v, expected %v", contact.Axis, tc.axis)
			}
			if !next.Position.Equals(tc.expected) {
				t.Errorf("Position = %v, expected %v", next.Position, tc.expected)
			}
			if !contact.Corrected.Equals(next.Position) {
				t.Errorf("Corrected = %v, body at %v", contact.Corrected, next.Position)
			}
			if !contact.Candidate.Equals(tc.start.Add(tc.delta)) {
				t.Errorf("Candidate = %v, expected %v", contact.Candidate, tc.start.Add(tc.delta))
			}
			if !next.Previous.Equals(tc.start) {
				t.Errorf("Previous = %v, expected %v", next.Previous, tc.start)
			}
		})
	}
}

func TestStepCornerDeterminism(t *testing.T) {
	b := NewBody(core.V(270, 166), hitbox, inset)

	first, c1 := Step(b, core.V(4, 4), obstacle)
	second, c2 := Step(b, core.V(4, 4), obstacle)

	if first != second || c1 != c2 {
		t.Errorf("identical inputs gave different results: %+v vs %+v", c1, c2)
	}
}

// TestStepInvariants sweeps every approach around the obstacle and checks that
// a resolved contact changes exactly one axis and leaves the actor outside.
func TestStepInvariants(t *testing.T) {
	deltas := []core.Vec2{}
	for _, dx := range []float64{-4, 0, 4} {
		for _, dy := range []float64{-4, 0, 4} {
			deltas = append(deltas, core.V(dx, dy))
		}
	}

	contacts := 0
	for x := 260.0; x <= 410; x += 2 {
		for y := 160.0; y <= 310; y += 2 {
			b := NewBody(core.V(x, y), hitbox, inset)
			if Collides(b.Box(), obstacle) {
				continue
			}

			for _, d := range deltas {
				next, contact := Step(b, d, obstacle)

				if !contact.Hit {
					if !next.Position.Equals(contact.Candidate) {
						t.Fatalf("no contact but position moved from candidate: %+v", contact)
					}
					continue
				}
				contacts++

				dxChanged := next.Position.X != contact.Candidate.X
				dyChanged := next.Position.Y != contact.Candidate.Y
				if dxChanged == dyChanged {
					t.Fatalf("start %v delta %v: expected exactly one corrected axis, got %+v", b.Position, d, contact)
				}
				if (contact.Axis == AxisX) != dxChanged {
					t.Fatalf("start %v delta %v: axis %v does not match change %+v", b.Position, d, contact.Axis, contact)
				}
				if Collides(next.Box(), obstacle) {
					t.Fatalf("start %v delta %v: still overlapping after correction at %v", b.Position, d, next.Position)
				}

				// No further input: the corrected position must stay clear.
				rest, again := Step(next, core.V(0, 0), obstacle)
				if again.Hit || !rest.Position.Equals(next.Position) {
					t.Fatalf("start %v delta %v: resting after correction moved the actor", b.Position, d)
				}
			}
		}
	}

	if contacts == 0 {
		t.Fatal("sweep produced no contacts")
	}
}

func TestAxisString(t *testing.T) {
	if AxisX.String() != "x" || AxisY.String() != "y" {
		t.Errorf("Axis strings = %q, %q", AxisX.String(), AxisY.String())
	}
}
