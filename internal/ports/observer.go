package ports

import (
	"errors"

	"github.com/gabrielcapilla/triplay/internal/domain"
)

var ErrNotImplemented = errors.New("observer: method Update(event, state) must be implemented")

// Observer reacts to playback transitions. Implementations must be comparable
// (usually pointers) so they can be removed from a notifier by reference.
type Observer interface {
	Update(event domain.Event, state domain.PlaybackState) error
}

// UnimplementedObserver can be embedded by observers that have not written
// Update yet. Calling it is a programming error.
type UnimplementedObserver struct{}

func (UnimplementedObserver) Update(domain.Event, domain.PlaybackState) error {
	return ErrNotImplemented
}
