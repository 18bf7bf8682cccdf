//go:build !((linux && cgo) || windows || darwin)

package audio

import (
	"github.com/gopxl/beep/v2"
	serrors "github.com/tessro/serenade/internal/errors"
)

// Available indicates whether audio output is supported in this build.
// Audio requires cgo for native sound libraries on this platform.
const Available = false

type nullSink struct{}

func newSink() sink {
	return nullSink{}
}

func (nullSink) init(beep.SampleRate) error { return serrors.ErrAudioUnavailable }
func (nullSink) play(beep.Streamer)         {}
func (nullSink) lock()                      {}
func (nullSink) unlock()                    {}
func (nullSink) clear()                     {}
