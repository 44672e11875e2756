// Package app builds the object graph once at startup: the notifier, the three
// surface views bound to their regions, and the gesture handlers.
package app

import (
	"errors"

	"github.com/gabrielcapilla/triplay/internal/domain"
	"github.com/gabrielcapilla/triplay/internal/logger"
	"github.com/gabrielcapilla/triplay/internal/notifier"
	"github.com/gabrielcapilla/triplay/internal/ports"
	"github.com/gabrielcapilla/triplay/internal/surface"
)

var (
	ErrMissingRegion = errors.New("app: every surface needs a display region")
	ErrMissingMedia  = errors.New("app: main surface needs a media handle")
)

var DefaultTrack = domain.Track{
	Title:  "Better Day",
	Artist: "Penguin Music",
	File:   "songs/better-day.mp3",
	Cover:  "songs/better-day.webp",
}

type Options struct {
	MainRegion    ports.Region
	SidebarRegion ports.Region
	MiniRegion    ports.Region
	Media         ports.MediaHandle
	// Track is what the play control starts. DefaultTrack when empty.
	Track domain.Track
	// Store is optional; when set every play is recorded in the history.
	Store ports.StorageService
}

type Context struct {
	Notifier *notifier.Notifier
	Main     *surface.MainView
	Sidebar  *surface.SidebarView
	Mini     *surface.MiniView
	History  *HistoryRecorder

	track  domain.Track
	volume int
}

func Initialize(opts Options) (*Context, error) {
	if opts.MainRegion == nil || opts.SidebarRegion == nil || opts.MiniRegion == nil {
		return nil, ErrMissingRegion
	}
	if opts.Media == nil {
		return nil, ErrMissingMedia
	}

	track := opts.Track
	if track.IsEmpty() {
		track = DefaultTrack
	}

	ctx := &Context{
		Notifier: notifier.New(),
		Main:     surface.NewMainView(opts.MainRegion, opts.Media),
		Sidebar:  surface.NewSidebarView(opts.SidebarRegion),
		Mini:     surface.NewMiniView(opts.MiniRegion),
		track:    track,
		volume:   100,
	}

	ctx.Notifier.AddObserver(ctx.Main)
	ctx.Notifier.AddObserver(ctx.Sidebar)
	ctx.Notifier.AddObserver(ctx.Mini)

	if opts.Store != nil {
		ctx.History = NewHistoryRecorder(opts.Store)
		ctx.Notifier.AddObserver(ctx.History)
	}

	logger.Log.Info().
		Str("track", track.Title).
		Int("observers", len(ctx.Notifier.Observers())).
		Msg("Player surfaces wired")
	return ctx, nil
}

func (c *Context) Track() domain.Track { return c.track }

func (c *Context) Playing() bool { return c.Notifier.State().Playing }

// TogglePlay is the handler shared by the play control of every surface.
func (c *Context) TogglePlay() error {
	if c.Notifier.State().Playing {
		return c.Notifier.Stop()
	}
	return c.Notifier.Play(c.track)
}

func (c *Context) Volume() int { return c.volume }

// SetVolume takes the 0-100 value of the volume control and drives the media
// handle directly; volume changes are not broadcast.
func (c *Context) SetVolume(percent int) error {
	percent = max(0, min(100, percent))
	logger.Log.Info().Int("volume", percent).Msg("Volume")
	if err := c.Main.Media().SetVolume(float64(percent) / 100); err != nil {
		return err
	}
	c.volume = percent
	return nil
}
