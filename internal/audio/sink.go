package audio

import "github.com/gopxl/beep/v2"

// sink is the audio output. The speaker implementation needs cgo on
// linux; builds without it get a sink that always refuses to start.
type sink interface {
	init(sr beep.SampleRate) error
	play(s beep.Streamer)
	lock()
	unlock()
	clear()
}
