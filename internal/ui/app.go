package ui

import (
	"fmt"

	"github.com/gabrielcapilla/triplay/internal/app"
	"github.com/gabrielcapilla/triplay/internal/domain"
	"github.com/gabrielcapilla/triplay/internal/logger"
	"github.com/gabrielcapilla/triplay/internal/ports"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	MIN_WIDTH  = 50
	MIN_HEIGHT = 15

	sidebarWidth = 24
	volumeStep   = 5
)

type AppModel struct {
	width, height int
	player        *app.Context
	panels        map[surfaceID]*panel
	focus         surfaceID
	store         ports.StorageService
	historyLimit  int
	history       list.Model
	volumeBar     progress.Model
	help          help.Model
	keys          keyMap
	status        string
	err           error
	styles        Styles
}

// NewAppModel binds the three surface panels to a freshly wired player.
// store may be nil, in which case no history is kept or shown.
func NewAppModel(media ports.MediaHandle, store ports.StorageService, cfg domain.Config) (AppModel, error) {
	panels := map[surfaceID]*panel{
		mainSurface:    {},
		sidebarSurface: {},
		miniSurface:    {},
	}

	player, err := app.Initialize(app.Options{
		MainRegion:    panels[mainSurface],
		SidebarRegion: panels[sidebarSurface],
		MiniRegion:    panels[miniSurface],
		Media:         media,
		Track:         cfg.Track,
		Store:         store,
	})
	if err != nil {
		return AppModel{}, err
	}
	if err := player.SetVolume(cfg.InitialVolume); err != nil {
		return AppModel{}, fmt.Errorf("could not set initial volume: %w", err)
	}

	return AppModel{
		player:       player,
		panels:       panels,
		focus:        mainSurface,
		store:        store,
		historyLimit: cfg.HistoryLimit,
		history:      newHistoryList(),
		volumeBar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		help:         help.New(),
		keys:         defaultKeyMap(),
		status:       "Stopped",
		styles:       DefaultStyles(),
	}, nil
}

func (m AppModel) Init() tea.Cmd {
	return loadHistoryCmd(m.store, m.historyLimit)
}

func (m AppModel) pressPlay(surface surfaceID) (AppModel, tea.Cmd) {
	m.focus = surface
	logger.Log.Debug().Str("surface", surface.String()).Msg("Play control pressed")

	err := m.player.TogglePlay()
	m.status = "Stopped"
	if m.player.Playing() {
		m.status = "Playing"
	}
	if err != nil {
		logger.Log.Error().Err(err).Str("surface", surface.String()).Msg("Toggle failed")
		m.err = err
		return m, nil
	}

	m.err = nil
	if !m.player.Playing() {
		return m, nil
	}
	return m, loadHistoryCmd(m.store, m.historyLimit)
}

func (m AppModel) setVolume(percent int) AppModel {
	if err := m.player.SetVolume(percent); err != nil {
		logger.Log.Error().Err(err).Int("volume", percent).Msg("Could not set volume")
		m.err = err
		return m
	}
	m.err = nil
	return m
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case ports.HistoryLoadedMsg:
		cmd := m.history.SetItems(historyItems(msg.Entries))
		return m, cmd
	case ports.HistoryErrorMsg:
		logger.Log.Error().Err(msg.Err).Msg("Could not load history")
		m.err = msg.Err
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PlayMain):
			return m.pressPlay(mainSurface)
		case key.Matches(msg, m.keys.PlaySidebar):
			return m.pressPlay(sidebarSurface)
		case key.Matches(msg, m.keys.PlayMini):
			return m.pressPlay(miniSurface)
		case key.Matches(msg, m.keys.Toggle):
			return m.pressPlay(m.focus)
		case key.Matches(msg, m.keys.Focus):
			if msg.String() == "shift+tab" {
				m.focus = (m.focus + 2) % 3
			} else {
				m.focus = (m.focus + 1) % 3
			}
			return m, nil
		case key.Matches(msg, m.keys.VolumeUp):
			return m.setVolume(m.player.Volume() + volumeStep), nil
		case key.Matches(msg, m.keys.VolumeDown):
			return m.setVolume(m.player.Volume() - volumeStep), nil
		case key.Matches(msg, m.keys.VolumeMute):
			return m.setVolume(0), nil
		case key.Matches(msg, m.keys.VolumeMax):
			return m.setVolume(100), nil
		}
	}
	return m, nil
}

func (m AppModel) box(surface surfaceID) lipgloss.Style {
	if surface == m.focus {
		return m.styles.FocusedBox
	}
	return m.styles.Box
}

func (m AppModel) View() string {
	if m.width < MIN_WIDTH || m.height < MIN_HEIGHT {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, "Terminal too small")
	}

	availableWidth := m.width - m.styles.App.GetHorizontalFrameSize()
	frame := m.styles.Box.GetHorizontalFrameSize()

	miniHeight := 1
	helpHeight := 1
	statusHeight := 1
	bodyHeight := m.height - (miniHeight + 2) - helpHeight - statusHeight - m.styles.App.GetVerticalFrameSize() - 2

	sidebarInner := sidebarWidth - frame
	sidebar := m.box(sidebarSurface).
		Width(sidebarInner).
		Height(bodyHeight).
		Render(m.panels[sidebarSurface].renderSidebar(m.styles, sidebarInner))

	mainOuter := availableWidth - sidebarWidth - 2
	mainInner := mainOuter - frame

	m.volumeBar.Width = max(10, mainInner-10)
	volume := m.styles.Label.Render("vol ") +
		m.volumeBar.ViewAs(float64(m.player.Volume())/100) +
		fmt.Sprintf(" %3d%%", m.player.Volume())

	player := lipgloss.JoinVertical(lipgloss.Left,
		m.panels[mainSurface].renderMain(m.styles, mainInner),
		"",
		volume,
	)
	playerHeight := lipgloss.Height(player)

	m.history.SetSize(mainInner, max(0, bodyHeight-playerHeight-1))
	mainContent := lipgloss.JoinVertical(lipgloss.Left, player, "", m.history.View())
	mainPanel := m.box(mainSurface).Width(mainInner).Height(bodyHeight).Render(mainContent)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", mainPanel)

	miniInner := availableWidth - frame
	mini := m.box(miniSurface).
		Width(miniInner).
		Render(m.panels[miniSurface].renderMini(m.styles, miniInner))

	status := m.styles.Status.Render(m.status + " · focus: " + m.focus.String())
	if m.err != nil {
		status = m.styles.ErrorText.Render(fmt.Sprintf("Error: %v", m.err))
	}

	helpView := m.styles.Help.Width(availableWidth).Render(m.help.View(m.keys))

	return m.styles.App.Render(lipgloss.JoinVertical(lipgloss.Top,
		body,
		mini,
		status,
		helpView,
	))
}
