package app

import (
	"time"

	"github.com/gabrielcapilla/triplay/internal/domain"
	"github.com/gabrielcapilla/triplay/internal/ports"
)

// HistoryRecorder writes every started track to the store.
type HistoryRecorder struct {
	store ports.StorageService
	now   func() time.Time
}

func NewHistoryRecorder(store ports.StorageService) *HistoryRecorder {
	return &HistoryRecorder{store: store, now: time.Now}
}

func (h *HistoryRecorder) Update(event domain.Event, state domain.PlaybackState) error {
	if event != domain.EventPlay || !state.HasTrack() {
		return nil
	}
	return h.store.AddToHistory(domain.HistoryEntry{Track: state.Track, PlayedAt: h.now()})
}
