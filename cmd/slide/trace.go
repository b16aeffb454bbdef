package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/scenario"
)

var flagContactsOnly bool

var traceCmd = &cobra.Command{
	Use:   "trace <scenario.yaml>",
	Short: "Replay a scenario and print every frame",
	Long: `Replay scripted input through the collision resolver without a terminal UI.

A scenario names the actor, the obstacle and a list of input steps:

  actor:
    position: { x: 264, y: 218 }
    sprite: { x: 32, y: 32 }
    hitbox: { x: 24, y: 30 }
    speed: 4
  obstacle:
    origin: { x: 300, y: 200 }
    size: { x: 100, y: 100 }
  steps:
    - move: right,down
      repeat: 3

Examples:
  slide trace configs/scenarios/wall_slide.yaml
  slide trace configs/scenarios/corner.yaml --contacts-only`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	traceCmd.Flags().BoolVar(&flagContactsOnly, "contacts-only", false, "Only print frames that hit the obstacle")
}

func runTrace(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "trace"})

	s, err := scenario.Load(args[0])
	if err != nil {
		return err
	}

	frames := s.Run()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Frame", "Move", "Candidate", "Position", "Contact")

	contacts := 0
	for _, f := range frames {
		contact := "-"
		if f.Contact.Hit {
			contacts++
			contact = f.Contact.Axis.String()
		} else if flagContactsOnly {
			continue
		}
		t.Row(
			fmt.Sprintf("%d", f.Index),
			f.Delta.String(),
			f.Contact.Candidate.String(),
			f.Position.String(),
			contact,
		)
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())

	name := s.Name
	if name == "" {
		name = args[0]
	}
	logger.Info("replayed", "scenario", name, "frames", len(frames), "contacts", contacts)
	return nil
}
