package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tessro/serenade/internal/player"
	"github.com/tessro/serenade/internal/tail"
)

var (
	tailNoEmoji   bool
	tailTimestamp bool
	tailFormat    string
	tailInterval  time.Duration
)

func init() {
	playCmd.Flags().BoolVar(&tailNoEmoji, "no-emoji", false, "disable emoji in headless output")
	playCmd.Flags().BoolVarP(&tailTimestamp, "timestamp", "t", false, "show timestamps in headless output")
	playCmd.Flags().StringVarP(&tailFormat, "format", "f", "", "custom format template for headless output")
	playCmd.Flags().DurationVarP(&tailInterval, "interval", "i", 250*time.Millisecond, "headless poll interval")
}

// runHeadless prints playback events until ctx is cancelled.
func runHeadless(ctx context.Context, c *player.Controller) error {
	formatter := tail.NewFormatter(
		tail.WithEmoji(!tailNoEmoji),
		tail.WithTimestamp(tailTimestamp),
		tail.WithTemplate(tailFormat),
		tail.WithJSON(JSONOutput()),
	)

	if !JSONOutput() {
		fmt.Printf("%s: %d tracks\n", c.Playlist().Name, c.Playlist().Len())
	}

	watcher := tail.NewWatcher(c.Surface(), tailInterval)

	errCh := make(chan error, 1)
	go func() {
		errCh <- watcher.Start(ctx)
	}()

	for {
		select {
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			fmt.Println(formatter.Format(event))

		case err := <-errCh:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}
