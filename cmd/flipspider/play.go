package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flipspider/internal/audio"
	"flipspider/internal/config"
	"flipspider/internal/core"
	"flipspider/internal/platform/tui"
	"flipspider/internal/sim"
	"flipspider/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/W    - Throw web (impulse)
  Up/Down    - Pick difficulty in the menu
  Enter      - Start run
  R          - Restart (after game over)
  X          - Export the final frame (after game over)
  Esc        - Back to menu (after game over)
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - Slow scroll, wide gaps, forgiving hitbox
  medium - The intended balance
  hard   - Fast scroll, narrow gaps, hitbox larger than the sprite

Examples:
  flipspider play
  flipspider play --difficulty hard
  flipspider play --config ./my-flipspider.yaml --mute
  flipspider play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty preset: easy, medium, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable all sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the initial screen buffer
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	// Open best-score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Sound is optional; a headless or speakerless host just plays silent
	var sink sim.AudioSink
	director := audio.NewDirector()
	if flagMute {
		director.SetMuted(true)
	} else if initErr := director.Initialize(); initErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", initErr)
	}
	sink = director

	runErr := tui.Run(gameCfg, store, sink, cfg, sim.ParsePreset(flagDifficulty))

	director.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
