package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/tessro/serenade/internal/audio"
	"github.com/tessro/serenade/internal/display"
	serrors "github.com/tessro/serenade/internal/errors"
	"github.com/tessro/serenade/internal/hearts"
	"github.com/tessro/serenade/internal/player"
	"github.com/tessro/serenade/internal/tui"
	"github.com/tessro/serenade/internal/tui/styles"
	"github.com/tessro/serenade/internal/wizard"
)

var (
	playDir      string
	playPick     bool
	playHeadless bool
	playRefresh  int
	playNoHearts bool
)

var playCmd = &cobra.Command{
	Use:   "play [playlist.toml]",
	Short: "Play a playlist",
	Long: `Play a playlist file or a directory of audio files.

In a terminal the interactive player opens paused on the first track.
When stdout is not a terminal, or with --headless, playback starts at once
and events are printed as they happen.

Keyboard shortcuts:
  Space        Play/Pause
  p, ←         Previous track
  n, →         Next track
  j/k, ↓/↑     Move the playlist cursor
  Enter        Play the track under the cursor
  0-9          Seek to 0%-90%
  ?            Help
  q, Ctrl+C    Quit

Click a track to play it, or the progress bar to seek.

Examples:
  serenade play mix.toml
  serenade play --dir ~/Music/ep
  serenade play mix.toml --pick
  serenade play mix.toml --headless --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&playDir, "dir", "d", "", "play the audio files in a directory")
	playCmd.Flags().BoolVar(&playPick, "pick", false, "choose the first track interactively")
	playCmd.Flags().BoolVar(&playHeadless, "headless", false, "print events instead of opening the player")
	playCmd.Flags().IntVar(&playRefresh, "refresh", 0, "screen refresh interval in milliseconds")
	playCmd.Flags().BoolVar(&playNoHearts, "no-hearts", false, "disable the hearts background")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	pl, warnings, err := loadPlaylist(args, playDir)
	if err != nil {
		return err
	}

	headless := playHeadless || !wizard.IsTerminal()
	var console io.Writer
	if headless && verbose {
		console = os.Stderr
	}
	logger, closer, err := newLogger(console)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	for _, w := range warnings {
		logger.Warn().Err(w).Msg("playlist entry skipped")
		if headless {
			fmt.Fprintf(os.Stderr, "warning: %v\n", w)
		}
	}

	el := audio.New(logger)
	defer func() { _ = el.Close() }()

	// Set once the TUI exists; events are not bound until then.
	var report func(error)
	c := player.New(pl, el, display.NewSurface(), player.Options{
		ProgressInterval: cfg.Player.ProgressIntervalDuration(),
		Logger:           logger,
		OnError: func(err error) {
			if report != nil {
				report(err)
			} else if headless {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
		},
	})

	var app *tui.App
	if !headless {
		if err := styles.Apply(cfg.TUI.Theme); err != nil {
			return err
		}
		app = tui.NewApp(c, newHearts(logger), refreshInterval())
		report = app.ReportError
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c.Bind(ctx)
	defer func() { _ = c.Close() }()

	if err := c.Init(); err != nil {
		logger.Warn().Err(err).Msg("first track failed to load")
	}

	picked := false
	if playPick && !pl.IsEmpty() {
		index, ok, err := wizard.NewInteractive().PromptTrack(pl)
		if err != nil {
			return err
		}
		if ok {
			picked = true
			if err := c.Select(index); err != nil {
				return err
			}
		}
	}

	if headless {
		if err := startHeadless(c, picked); err != nil {
			return err
		}
		return runHeadless(ctx, c)
	}
	return tui.Run(app)
}

// startHeadless starts playback unless a picked track is already playing.
// There is no input in headless mode, so an empty playlist is an error.
func startHeadless(c *player.Controller, picked bool) error {
	if c.Playlist().IsEmpty() {
		return serrors.WithSuggestion(serrors.ErrEmptyPlaylist,
			"add [[track]] entries to the playlist or point --dir at a folder with audio files")
	}
	if picked {
		return nil
	}
	return c.TogglePlay()
}

func refreshInterval() time.Duration {
	if playRefresh > 0 {
		return time.Duration(playRefresh) * time.Millisecond
	}
	return time.Duration(cfg.TUI.RefreshInterval) * time.Millisecond
}

// newHearts builds the hearts background, or returns nil when it is off.
func newHearts(logger zerolog.Logger) *hearts.Generator {
	if playNoHearts || !cfg.Hearts.IsEnabled() {
		return nil
	}
	interval, lifetime, minDur, maxDur := cfg.Hearts.Durations()
	return hearts.NewGenerator(hearts.NewField(), hearts.Options{
		Interval:    interval,
		Lifetime:    lifetime,
		MinSize:     float64(cfg.Hearts.MinSize),
		MaxSize:     float64(cfg.Hearts.MaxSize),
		MinDuration: minDur,
		MaxDuration: maxDur,
		Logger:      logger.With().Str("component", "hearts").Logger(),
	})
}
