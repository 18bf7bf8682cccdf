// Package player drives an audio element from a playlist and keeps the
// display surfaces in step with it.
package player

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/tessro/serenade/internal/core"
	"github.com/tessro/serenade/internal/cover"
	"github.com/tessro/serenade/internal/display"
	serrors "github.com/tessro/serenade/internal/errors"
)

// EmptyTitle is shown in place of a title when the playlist has no tracks.
const EmptyTitle = "No tracks in the playlist"

// Options configures a Controller.
type Options struct {
	// ProgressInterval is the progress refresh cadence while playing.
	ProgressInterval time.Duration
	// VideoFactory builds video covers. Defaults to cover.DefaultVideoFactory.
	VideoFactory cover.VideoFactory
	// OnError receives errors raised while handling media events, which
	// have no caller to return to.
	OnError func(error)
	Logger  zerolog.Logger
}

// Controller owns the playback session. All methods are safe for
// concurrent use and are serialized.
type Controller struct {
	mu sync.Mutex

	playlist *core.Playlist
	session  *core.Session
	audio    core.Audio
	surface  *display.Surface
	newVideo cover.VideoFactory
	onError  func(error)
	log      zerolog.Logger

	video       core.Video // current cover clip, nil for image covers
	metadataSrc string     // source whose loaded-metadata updates the duration
	poll        *poller

	bindCancel context.CancelFunc
	bindDone   chan struct{}
}

// New creates a controller. Call Init before any other method.
func New(pl *core.Playlist, audio core.Audio, surface *display.Surface, opts Options) *Controller {
	if pl == nil {
		pl = core.NewPlaylist("", nil)
	}
	if opts.VideoFactory == nil {
		opts.VideoFactory = cover.DefaultVideoFactory
	}
	c := &Controller{
		playlist: pl,
		session:  core.NewSession(pl.Len()),
		audio:    audio,
		surface:  surface,
		newVideo: opts.VideoFactory,
		onError:  opts.OnError,
		log:      opts.Logger.With().Str("component", "player").Logger(),
	}
	c.poll = newPoller(opts.ProgressInterval, c.UpdateProgress)
	return c
}

// Playlist returns the playlist being played.
func (c *Controller) Playlist() *core.Playlist {
	return c.playlist
}

// Surface returns the display surfaces the controller writes to.
func (c *Controller) Surface() *display.Surface {
	return c.surface
}

// Init prepares the initial display: the first track is loaded but not
// played. An empty playlist shows a placeholder instead.
func (c *Controller) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playlist.IsEmpty() {
		c.surface.SetTrackInfo(EmptyTitle, "")
		c.surface.SetActive(-1)
		return nil
	}
	return c.loadLocked(0)
}

// Index returns the current track index; ok is false for an empty playlist.
func (c *Controller) Index() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Index()
}

// IsPlaying reports whether the session is playing.
func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.IsPlaying()
}

// PollerActive reports whether progress polling is running.
func (c *Controller) PollerActive() bool {
	return c.poll.Active()
}

// Load makes the track at index current and refreshes every surface.
// If the session is playing, the new track starts immediately.
func (c *Controller) Load(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(index)
}

func (c *Controller) loadLocked(index int) error {
	track, err := c.playlist.At(index)
	if err != nil {
		return err
	}

	if c.video != nil {
		_ = c.video.Pause()
		c.video = nil
	}
	cov := display.Cover{Kind: track.CoverKind, Asset: track.Cover}
	if track.IsVideoCover() {
		c.video = c.newVideo(track.Cover)
		cov.Video = c.video
	}
	cov.Overlay = true
	c.surface.SetCover(cov)

	c.surface.SetTrackInfo(track.Title, track.Artist)
	c.surface.SetActive(index)

	var errs []error
	c.audio.SetSource(track.Source)
	if err := c.audio.Load(); err != nil {
		errs = append(errs, fmt.Errorf("load %q: %w", track.Source, err))
	}

	if c.session.IsPlaying() {
		if err := c.audio.Play(); err != nil {
			errs = append(errs, fmt.Errorf("%w: play %q: %w", serrors.ErrPlaybackRejected, track.Source, err))
			c.session.SetPlaying(false)
			c.surface.SetPlayLabel(display.LabelPlay)
			c.surface.SetCoverPlaying(false)
		} else if c.video != nil {
			if err := c.video.Play(); err != nil {
				errs = append(errs, err)
			}
		}
	}

	c.surface.SetProgress(0)
	c.surface.SetElapsed(core.FormatTime(0))
	c.surface.SetDuration(core.FormatTime(0))
	c.metadataSrc = track.Source

	c.session.SetIndex(index)

	err = errors.Join(errs...)
	ev := c.log.Debug()
	if err != nil {
		ev = c.log.Warn().Err(err)
	}
	ev.Int("index", index).Str("src", track.Source).Msg("track loaded")
	return err
}

// TogglePlay flips between playing and paused. If the audio element
// refuses to play, the session stays paused and the refusal is returned.
func (c *Controller) TogglePlay() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playlist.IsEmpty() {
		return serrors.ErrEmptyPlaylist
	}
	if c.session.IsPlaying() {
		return c.pauseLocked()
	}
	return c.playLocked()
}

func (c *Controller) playLocked() error {
	if err := c.audio.Play(); err != nil {
		c.log.Warn().Err(err).Msg("play rejected")
		if !errors.Is(err, serrors.ErrPlaybackRejected) {
			err = fmt.Errorf("%w: %w", serrors.ErrPlaybackRejected, err)
		}
		return err
	}

	var err error
	if c.video != nil {
		err = c.video.Play()
	}
	c.session.SetPlaying(true)
	c.surface.SetPlayLabel(display.LabelPause)
	c.surface.SetCoverPlaying(true)
	return err
}

func (c *Controller) pauseLocked() error {
	errs := []error{c.audio.Pause()}
	if c.video != nil {
		errs = append(errs, c.video.Pause())
	}
	c.session.SetPlaying(false)
	c.surface.SetPlayLabel(display.LabelPlay)
	c.surface.SetCoverPlaying(false)
	return errors.Join(errs...)
}

// Prev moves to the previous track, wrapping to the last one.
func (c *Controller) Prev() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i, ok := c.session.Index()
	if !ok {
		return serrors.ErrEmptyPlaylist
	}
	return c.loadLocked(c.playlist.PrevIndex(i))
}

// Next moves to the next track, wrapping to the first one.
func (c *Controller) Next() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextLocked()
}

func (c *Controller) nextLocked() error {
	i, ok := c.session.Index()
	if !ok {
		return serrors.ErrEmptyPlaylist
	}
	return c.loadLocked(c.playlist.NextIndex(i))
}

// Select loads the track at index and starts playing it regardless of
// the previous play state.
func (c *Controller) Select(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playlist.IsEmpty() {
		return serrors.ErrEmptyPlaylist
	}
	if err := c.loadLocked(index); err != nil {
		if !c.playlist.Valid(index) {
			return err
		}
		c.log.Warn().Err(err).Int("index", index).Msg("select")
	}
	return c.playLocked()
}

// SetProgress seeks to the position a click at x on a bar of the given
// width points at. It does nothing until the duration is known.
func (c *Controller) SetProgress(x, width int) error {
	if width <= 0 {
		return nil
	}
	return c.SeekFraction(float64(x) / float64(width))
}

// SeekFraction seeks to f (0..1) of the current track.
func (c *Controller) SeekFraction(f float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.playlist.IsEmpty() {
		return serrors.ErrEmptyPlaylist
	}
	d, ok := c.audio.Duration()
	if !ok || d <= 0 {
		return nil
	}
	f = min(max(f, 0), 1)

	if err := c.audio.Seek(time.Duration(f * float64(d))); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	c.updateProgressLocked()
	return nil
}

// UpdateProgress copies the playback position onto the progress bar and
// elapsed text. It does nothing while the duration is unknown.
func (c *Controller) UpdateProgress() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateProgressLocked()
}

func (c *Controller) updateProgressLocked() {
	d, ok := c.audio.Duration()
	if !ok || d <= 0 {
		return
	}
	pos := c.audio.Position()
	c.surface.SetProgress(min(float64(pos)/float64(d)*100, 100))
	c.surface.SetElapsed(core.FormatTime(pos.Seconds()))
}

// HandleEvent reacts to one media lifecycle signal.
func (c *Controller) HandleEvent(ev core.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.log.Debug().Stringer("event", ev.Type).Str("src", ev.Source).Msg("media event")

	switch ev.Type {
	case core.EventEnded:
		if !c.isCurrentLocked(ev.Source) {
			return
		}
		if err := c.nextLocked(); err != nil {
			c.report(fmt.Errorf("advance after end: %w", err))
		}
	case core.EventPlay:
		c.poll.Start()
		if c.video != nil {
			if err := c.video.Play(); err != nil {
				c.report(err)
			}
		}
	case core.EventPause:
		c.poll.Stop()
		if c.video != nil {
			_ = c.video.Pause()
		}
	case core.EventLoadedMetadata:
		if ev.Source == c.metadataSrc {
			c.surface.SetDuration(core.FormatDuration(ev.Duration))
		}
	}
}

// isCurrentLocked reports whether src is the committed track's source.
// Ended signals queued before a track change carry the old source.
func (c *Controller) isCurrentLocked(src string) bool {
	i, ok := c.session.Index()
	if !ok {
		return false
	}
	t, err := c.playlist.At(i)
	return err == nil && t.Source == src
}

func (c *Controller) report(err error) {
	c.log.Error().Err(err).Msg("event handling failed")
	if c.onError != nil {
		c.onError(err)
	}
}

// Bind starts delivering the audio element's signals to HandleEvent until
// ctx is done, Close is called, or the element closes its channel.
func (c *Controller) Bind(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.bindCancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.bindCancel = cancel
	c.bindDone = done

	events := c.audio.Events()
	go func() {
		defer close(done)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				c.HandleEvent(ev)
			}
		}
	}()
}

// Close stops event delivery and progress polling and pauses the cover
// clip. It does not close the audio element.
func (c *Controller) Close() error {
	c.mu.Lock()
	cancel, done := c.bindCancel, c.bindDone
	c.bindCancel, c.bindDone = nil, nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}

	c.mu.Lock()
	c.poll.Stop()
	if c.video != nil {
		_ = c.video.Pause()
	}
	c.mu.Unlock()

	c.poll.wait()
	return nil
}
