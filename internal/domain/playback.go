package domain

// Event names a playback transition broadcast to observers.
type Event int

const (
	EventPlay Event = iota
	EventStop
)

func (e Event) String() string {
	switch e {
	case EventPlay:
		return "play"
	case EventStop:
		return "stop"
	default:
		return "unknown"
	}
}

// PlaybackState is replaced as a whole on every transition. A stop keeps the
// track that was last played so surfaces can keep showing it.
type PlaybackState struct {
	Track   Track
	Playing bool
}

func (s PlaybackState) HasTrack() bool { return !s.Track.IsEmpty() }

// Glyph is the icon a surface's play control shows.
type Glyph int

const (
	GlyphPlay Glyph = iota
	GlyphPause
)

func (g Glyph) String() string {
	if g == GlyphPause {
		return "⏸"
	}
	return "▶"
}
