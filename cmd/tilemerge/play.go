package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/game"
	"github.com/vovakirdan/tilemerge/internal/logging"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/registry"
)

var (
	flagWidth  int
	flagHeight int
	flagPreset string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a local game.

Without --width/--height/--preset the setup screen opens, prefilled with
the configured board size.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  R                 - New board, same size
  M/Esc             - Back to setup
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Examples:
  tilemerge play
  tilemerge play --preset small
  tilemerge play --width 8 --height 2
  tilemerge play --seed 7 --log-file ./tilemerge.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (1-16)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (1-16)")
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board size preset (see 'tilemerge presets')")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	opts, err := playOptions(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tilemerge presets' to see available presets.")
		os.Exit(1)
	}

	// Logging to stderr would corrupt the alternate screen: file or nothing.
	logger, err := logging.New(cfg.Log, "tilemerge", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		Seed:      flagSeed,
		MovePause: cfg.Pacing.MovePause(),
	}

	if runErr := tui.Run(rc, opts, logger.Logger); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// playOptions resolves the board size from flags, then config.
func playOptions(cfg config.Config) (tui.SessionOptions, error) {
	switch {
	case flagPreset != "":
		p, err := registry.Lookup(flagPreset)
		if err != nil {
			return tui.SessionOptions{}, err
		}
		return tui.SessionOptions{Initial: tui.Selection{Width: p.Width, Height: p.Height}, AutoStart: true}, nil

	case flagWidth != 0 || flagHeight != 0:
		w, h := flagWidth, flagHeight
		if w == 0 {
			w = cfg.Board.Width
		}
		if h == 0 {
			h = cfg.Board.Height
		}
		if err := game.ValidateSize(w, h); err != nil {
			return tui.SessionOptions{}, err
		}
		return tui.SessionOptions{Initial: tui.Selection{Width: w, Height: h}, AutoStart: true}, nil
	}

	return tui.SessionOptions{Initial: configSize(cfg)}, nil
}

// configSize returns the configured board size, preferring a named preset.
func configSize(cfg config.Config) tui.Selection {
	if cfg.Board.Preset != "" {
		if p, err := registry.Lookup(cfg.Board.Preset); err == nil {
			return tui.Selection{Width: p.Width, Height: p.Height}
		}
	}
	return tui.Selection{Width: cfg.Board.Width, Height: cfg.Board.Height}
}
