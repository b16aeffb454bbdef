// Package scenario replays scripted movement through the collision core
// without a terminal. Scenarios are YAML files; running one yields a
// per-frame record of candidate and corrected positions.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-slide/internal/collision"
	"github.com/vovakirdan/tui-slide/internal/config"
	"github.com/vovakirdan/tui-slide/internal/core"
)

// ErrInvalidScenario is returned (wrapped) for scenarios that cannot be run.
var ErrInvalidScenario = errors.New("scenario: invalid")

// MaxFrames caps the total ticks a parsed scenario may replay.
const MaxFrames = 1 << 20

// YAMLScenario is the file format.
type YAMLScenario struct {
	Name     string       `yaml:"name"`
	Actor    YAMLActor    `yaml:"actor"`
	Obstacle YAMLObstacle `yaml:"obstacle"`
	Steps    []YAMLStep   `yaml:"steps"`
}

// YAMLActor describes the actor. Sprite defaults to the hitbox size.
type YAMLActor struct {
	Position config.Vec  `yaml:"position"`
	Sprite   *config.Vec `yaml:"sprite,omitempty"`
	Hitbox   config.Vec  `yaml:"hitbox"`
	Speed    float64     `yaml:"speed"`
}

// YAMLObstacle describes the static obstacle.
type YAMLObstacle struct {
	Origin config.Vec `yaml:"origin"`
	Size   config.Vec `yaml:"size"`
}

// YAMLStep is one input held for Repeat frames (default 1).
// Move is a comma separated list of left, right, up, down; "none" or empty idles.
type YAMLStep struct {
	Move   string `yaml:"move"`
	Repeat int    `yaml:"repeat,omitempty"`
}

// Step is a parsed YAMLStep.
type Step struct {
	Direction core.Vec2
	Repeat    int
}

// Scenario is a parsed, validated scenario ready to run.
type Scenario struct {
	Name     string
	Body     collision.Body
	Obstacle collision.Box
	Speed    float64
	Steps    []Step
}

// Frame records one replayed tick.
type Frame struct {
	Index    int
	Delta    core.Vec2
	Previous core.Vec2
	Position core.Vec2
	Contact  collision.Contact
}

// Load reads and parses a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (Scenario, error) {
	var ys YAMLScenario
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Scenario{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	a := ys.Actor
	if a.Hitbox.X < 0 || a.Hitbox.Y < 0 {
		return Scenario{}, fmt.Errorf("%w: negative actor hitbox", ErrInvalidScenario)
	}
	if ys.Obstacle.Size.X < 0 || ys.Obstacle.Size.Y < 0 {
		return Scenario{}, fmt.Errorf("%w: negative obstacle size", ErrInvalidScenario)
	}

	hitbox := core.V(a.Hitbox.X, a.Hitbox.Y)
	sprite := hitbox
	if a.Sprite != nil {
		sprite = core.V(a.Sprite.X, a.Sprite.Y)
	}

	speed := a.Speed
	if speed == 0 {
		speed = 4
	}

	s := Scenario{
		Name:     ys.Name,
		Body:     collision.NewBody(core.V(a.Position.X, a.Position.Y), hitbox, collision.InsetFor(sprite, hitbox)),
		Obstacle: collision.NewBox(core.V(ys.Obstacle.Origin.X, ys.Obstacle.Origin.Y), core.V(ys.Obstacle.Size.X, ys.Obstacle.Size.Y)),
		Speed:    speed,
		Steps:    make([]Step, 0, len(ys.Steps)),
	}

	total := 0
	for i, st := range ys.Steps {
		dir, err := ParseMove(st.Move)
		if err != nil {
			return Scenario{}, fmt.Errorf("step %d: %w", i+1, err)
		}
		repeat := st.Repeat
		switch {
		case repeat < 0:
			return Scenario{}, fmt.Errorf("%w: step %d: negative repeat %d", ErrInvalidScenario, i+1, repeat)
		case repeat == 0:
			repeat = 1
		case repeat > MaxFrames:
			return Scenario{}, fmt.Errorf("%w: step %d: repeat %d exceeds %d", ErrInvalidScenario, i+1, repeat, MaxFrames)
		}
		if total > MaxFrames-repeat {
			return Scenario{}, fmt.Errorf("%w: step %d: more than %d frames in total", ErrInvalidScenario, i+1, MaxFrames)
		}
		total += repeat
		s.Steps = append(s.Steps, Step{Direction: dir, Repeat: repeat})
	}

	return s, nil
}

// ParseMove converts "right,down" style input into a per-axis direction.
// Each direction is a flag: repeats are idempotent and opposites cancel.
func ParseMove(move string) (core.Vec2, error) {
	var left, right, up, down bool
	for _, part := range strings.Split(move, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "", "none":
		case "left":
			left = true
		case "right":
			right = true
		case "up":
			up = true
		case "down":
			down = true
		default:
			return core.Vec2{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidScenario, part)
		}
	}

	var d core.Vec2
	if left {
		d.X--
	}
	if right {
		d.X++
	}
	if up {
		d.Y--
	}
	if down {
		d.Y++
	}
	return d, nil
}

// Frames returns the total number of ticks the scenario runs for.
func (s Scenario) Frames() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Repeat
	}
	return n
}

// Run replays every step through collision.Step.
func (s Scenario) Run() []Frame {
	frames := make([]Frame, 0, min(s.Frames(), MaxFrames))
	body := s.Body

	for _, st := range s.Steps {
		delta := st.Direction.Scale(s.Speed)
		for i := 0; i < st.Repeat; i++ {
			var contact collision.Contact
			body, contact = collision.Step(body, delta, s.Obstacle)
			frames = append(frames, Frame{
				Index:    len(frames) + 1,
				Delta:    delta,
				Previous: body.Previous,
				Position: body.Position,
				Contact:  contact,
			})
		}
	}

	return frames
}
