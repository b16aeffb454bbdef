// slide is a terminal sandbox for axis-aligned collision and sliding.
//
// Usage:
//
//	slide list                    - List available modes
//	slide play <mode>             - Play a mode
//	slide menu                    - Start menu to pick modes interactively
//	slide serve                   - Start SSH server for remote play
//	slide scores <mode>           - Show stored runs for a mode
//	slide trace <scenario.yaml>   - Replay a scripted scenario headlessly
//	slide config                  - Print the default config
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--db <path>      - Set database path (default: ~/.arcade/slide.db)
//	--config <path>  - Use a custom slide config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slide/internal/core"
	"github.com/vovakirdan/tui-slide/internal/games/slide"
	"github.com/vovakirdan/tui-slide/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slide",
	Short: "Slide - push a box into a block and watch it slide",
	Long: `Slide is a terminal sandbox for axis-aligned box collision.

Steer the actor with the arrow keys. Moving into the obstacle corrects
exactly one axis, so diagonal input slides along the blocking face.

Available commands:
  list     - Show all available modes
  play     - Play a specific mode directly
  menu     - Interactive mode picker menu
  serve    - Start SSH server for remote play
  scores   - View stored runs
  trace    - Replay a scenario file frame by frame
  config   - Print or install the default config

Examples:
  slide list
  slide play slide
  slide play slide_run --difficulty hard
  slide serve --ssh :2222
  slide trace configs/scenarios/wall_slide.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		slide.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom slide config YAML")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(traceCmd)
}

// runtimeConfig builds the runtime config for a screen of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if width > 0 && height > 0 {
		cfg.ScreenW, cfg.ScreenH = width, height
	}
	cfg.TickRate = flagFPS
	return cfg
}
