//go:build (linux && cgo) || windows || darwin

package audio

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Available indicates whether audio output is supported in this build.
const Available = true

type speakerSink struct {
	initialized bool
}

func newSink() sink {
	return &speakerSink{}
}

func (s *speakerSink) init(sr beep.SampleRate) error {
	if s.initialized {
		return nil
	}
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

func (s *speakerSink) play(st beep.Streamer) { speaker.Play(st) }
func (s *speakerSink) lock()                 { speaker.Lock() }
func (s *speakerSink) unlock()               { speaker.Unlock() }

func (s *speakerSink) clear() {
	if s.initialized {
		speaker.Clear()
	}
}
