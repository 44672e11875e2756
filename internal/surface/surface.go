// Package surface contains the three observers that mirror playback state
// on screen: the main player, the sidebar player and the mini player.
package surface

import (
	"errors"
	"fmt"

	"github.com/gabrielcapilla/triplay/internal/domain"
	"github.com/gabrielcapilla/triplay/internal/ports"
)

var ErrUnknownEvent = errors.New("surface: unknown playback event")

func glyphFor(event domain.Event) (domain.Glyph, error) {
	switch event {
	case domain.EventPlay:
		return domain.GlyphPause, nil
	case domain.EventStop:
		return domain.GlyphPlay, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownEvent, int(event))
	}
}

func renderTrack(region ports.Region, state domain.PlaybackState) {
	if !state.HasTrack() {
		return
	}
	region.SetInfo(state.Track.Title, state.Track.Artist)
	region.SetCover(state.Track.Cover)
}

// MainView owns the page's only media handle.
type MainView struct {
	region ports.Region
	media  ports.MediaHandle
}

func NewMainView(region ports.Region, media ports.MediaHandle) *MainView {
	return &MainView{region: region, media: media}
}

func (v *MainView) Media() ports.MediaHandle { return v.media }

func (v *MainView) Update(event domain.Event, state domain.PlaybackState) error {
	glyph, err := glyphFor(event)
	if err != nil {
		return err
	}

	switch event {
	case domain.EventPlay:
		if err := v.media.SetSource(state.Track.File); err != nil {
			return fmt.Errorf("load %q: %w", state.Track.File, err)
		}
		if err := v.media.Play(); err != nil {
			return fmt.Errorf("play: %w", err)
		}
	case domain.EventStop:
		if err := v.media.Pause(); err != nil {
			return fmt.Errorf("pause: %w", err)
		}
	}

	v.region.SetGlyph(glyph)
	renderTrack(v.region, state)
	return nil
}

type SidebarView struct {
	region ports.Region
}

func NewSidebarView(region ports.Region) *SidebarView {
	return &SidebarView{region: region}
}

func (v *SidebarView) Update(event domain.Event, state domain.PlaybackState) error {
	glyph, err := glyphFor(event)
	if err != nil {
		return err
	}
	v.region.SetGlyph(glyph)
	renderTrack(v.region, state)
	return nil
}

type MiniView struct {
	region ports.Region
}

func NewMiniView(region ports.Region) *MiniView {
	return &MiniView{region: region}
}

func (v *MiniView) Update(event domain.Event, state domain.PlaybackState) error {
	glyph, err := glyphFor(event)
	if err != nil {
		return err
	}
	v.region.SetGlyph(glyph)
	renderTrack(v.region, state)
	return nil
}
