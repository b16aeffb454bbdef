package slide

import "github.com/vovakirdan/tui-slide/internal/core"

// heldKeys turns discrete key presses into held directions.
// Terminals report presses (and auto-repeat), never releases, so each press
// keeps its direction active for a fixed number of ticks.
type heldKeys struct {
	hold  int
	ticks [4]int // indexed by action - core.ActionLeft
}

func newHeldKeys(hold int) heldKeys {
	if hold < 1 {
		hold = 1
	}
	return heldKeys{hold: hold}
}

// opposite returns the direction that cancels a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	default:
		return core.ActionUp
	}
}

// Apply latches every movement action present in the frame.
// Pressing a direction releases its opposite immediately.
func (h *heldKeys) Apply(in core.InputFrame) {
	for a := core.ActionLeft; a <= core.ActionDown; a++ {
		if !in.Has(a) {
			continue
		}
		h.ticks[a-core.ActionLeft] = h.hold
		h.ticks[opposite(a)-core.ActionLeft] = 0
	}
}

// Direction returns the unit-per-axis direction of the held keys.
func (h heldKeys) Direction() core.Vec2 {
	var d core.Vec2
	if h.ticks[core.ActionLeft-core.ActionLeft] > 0 {
		d.X--
	}
	if h.ticks[core.ActionRight-core.ActionLeft] > 0 {
		d.X++
	}
	if h.ticks[core.ActionUp-core.ActionLeft] > 0 {
		d.Y--
	}
	if h.ticks[core.ActionDown-core.ActionLeft] > 0 {
		d.Y++
	}
	return d
}

// Tick ages every held direction by one tick.
func (h *heldKeys) Tick() {
	for i := range h.ticks {
		if h.ticks[i] > 0 {
			h.ticks[i]--
		}
	}
}

// Release drops every held direction.
func (h *heldKeys) Release() {
	h.ticks = [4]int{}
}
