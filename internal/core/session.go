package core

// Session is the mutable playback state: which track is selected and
// whether audio is playing. The zero value is an empty, paused session.
type Session struct {
	index     int
	hasIndex  bool
	isPlaying bool
}

// NewSession creates a session for a playlist of the given length.
// A non-empty playlist starts at index 0.
func NewSession(length int) *Session {
	return &Session{hasIndex: length > 0}
}

// Index returns the current track index. ok is false when there is no
// track to point at.
func (s *Session) Index() (index int, ok bool) {
	return s.index, s.hasIndex
}

// SetIndex commits a new current index.
func (s *Session) SetIndex(i int) {
	s.index = i
	s.hasIndex = true
}

// IsPlaying reports the play state.
func (s *Session) IsPlaying() bool {
	return s.isPlaying
}

// SetPlaying sets the play state.
func (s *Session) SetPlaying(playing bool) {
	s.isPlaying = playing
}
