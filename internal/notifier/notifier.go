// Package notifier holds the playback state and broadcasts every transition
// to the registered observers.
package notifier

import (
	"fmt"

	"github.com/gabrielcapilla/triplay/internal/domain"
	"github.com/gabrielcapilla/triplay/internal/logger"
	"github.com/gabrielcapilla/triplay/internal/ports"
)

// Notifier is not safe for concurrent use; it is driven from the UI loop.
type Notifier struct {
	observers []ports.Observer
	state     domain.PlaybackState
}

func New() *Notifier {
	return &Notifier{}
}

func (n *Notifier) AddObserver(o ports.Observer) {
	n.observers = append(n.observers, o)
}

// RemoveObserver drops the first registration of o, if any.
func (n *Notifier) RemoveObserver(o ports.Observer) {
	for i, registered := range n.observers {
		if registered == o {
			n.observers = append(n.observers[:i:i], n.observers[i+1:]...)
			return
		}
	}
}

func (n *Notifier) Observers() []ports.Observer {
	out := make([]ports.Observer, len(n.observers))
	copy(out, n.observers)
	return out
}

func (n *Notifier) State() domain.PlaybackState { return n.state }

func (n *Notifier) Play(track domain.Track) error {
	n.state = domain.PlaybackState{Track: track, Playing: true}
	return n.notify(domain.EventPlay)
}

func (n *Notifier) Stop() error {
	n.state = domain.PlaybackState{Track: n.state.Track, Playing: false}
	return n.notify(domain.EventStop)
}

// notify stops at the first failing observer; later observers are not called.
func (n *Notifier) notify(event domain.Event) error {
	state := n.state
	logger.Log.Debug().
		Str("event", event.String()).
		Str("title", state.Track.Title).
		Int("observers", len(n.observers)).
		Msg("Notifying observers")

	for i, o := range n.observers {
		if err := o.Update(event, state); err != nil {
			return fmt.Errorf("notify %s: observer %d: %w", event, i, err)
		}
	}
	return nil
}
