package ports

// MediaHandle is the single audio stream shared by every surface.
type MediaHandle interface {
	SetSource(uri string) error
	Play() error
	Pause() error
	// SetVolume takes a level between 0.0 and 1.0.
	SetVolume(level float64) error
	Close() error
}
