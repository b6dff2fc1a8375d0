package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/velebak/tui-invaders/internal/config"
	"github.com/velebak/tui-invaders/internal/engine"
	"github.com/velebak/tui-invaders/internal/game"
	platformterm "github.com/velebak/tui-invaders/internal/platform/term"
	"github.com/velebak/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round",
	Long: `Start a round directly, skipping the menu.

Controls:
  Left/Right  - Steer the ship
  Up/Space    - Fire
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower invaders
  normal - Default speeds
  hard   - Faster invaders, one extra row

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := newLogger()

	cfg, err := loadGameConfig(config.Preset(flagDifficulty))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage, the round still works
		store = nil
	}

	score, err := playRound(cfg, logger)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error running round: %v\n", err)
		os.Exit(1)
	}

	reportScore(score, config.Preset(flagDifficulty), store)
	if store != nil {
		store.Close()
	}
}

// loadGameConfig loads the gameplay config, applies the difficulty
// preset, and checks the grid fits the terminal.
func loadGameConfig(preset config.Preset) (config.Game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < cfg.Grid.Width || h < cfg.Grid.Height {
			return cfg, fmt.Errorf("terminal %dx%d too small, need at least %dx%d",
				w, h, cfg.Grid.Width, cfg.Grid.Height)
		}
	}

	return cfg, nil
}

// playRound runs one complete round and returns the final score.
func playRound(cfg config.Game, logger *log.Logger) (int, error) {
	w := engine.NewWorld(cfg.Grid.Width, cfg.Grid.Height)
	ship := game.Setup(w, cfg)

	driver, err := platformterm.NewDefault(cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return 0, err
	}

	opts := engine.Options{
		Logger: logger,
	}
	if flagFPS > 0 {
		opts.MinFrameTime = time.Second / time.Duration(flagFPS)
	}

	logger.Debug("round starting", "grid_w", cfg.Grid.Width, "grid_h", cfg.Grid.Height, "fps", flagFPS)
	if err := engine.Run(w, driver, opts); err != nil {
		return 0, err
	}

	score := game.FinalScore(w, ship)
	logger.Debug("round finished", "score", score)
	return score, nil
}

// reportScore prints the result and persists it.
func reportScore(score int, preset config.Preset, store *storage.Store) {
	fmt.Printf("Score: %d\n", score)

	if store == nil {
		return
	}
	if _, err := store.SaveScore(score, string(preset)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save score: %v\n", err)
		return
	}
	if best, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
