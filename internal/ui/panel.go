package ui

import (
	"github.com/gabrielcapilla/triplay/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

type surfaceID int

const (
	mainSurface surfaceID = iota
	sidebarSurface
	miniSurface
)

func (s surfaceID) String() string {
	switch s {
	case mainSurface:
		return "main"
	case sidebarSurface:
		return "sidebar"
	default:
		return "mini"
	}
}

// panel is the terminal region of one surface. It implements ports.Region.
type panel struct {
	glyph  domain.Glyph
	title  string
	artist string
	cover  string
}

func (p *panel) SetGlyph(g domain.Glyph) { p.glyph = g }

func (p *panel) SetInfo(title, artist string) {
	p.title = title
	p.artist = artist
}

func (p *panel) SetCover(uri string) { p.cover = uri }

func (p *panel) info() string {
	if p.title == "" {
		return "..."
	}
	return p.title
}

func (p *panel) renderMain(s Styles, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Glyph.Render(p.glyph.String())+"  "+s.PlayerTitle.Render(truncate(p.info(), width-3)),
		s.PlayerArtist.Render(truncate(p.artist, width)),
		s.Cover.Render(truncate(coverLabel(p.cover), width)),
	)
}

func (p *panel) renderSidebar(s Styles, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Cover.Render(truncate(coverLabel(p.cover), width)),
		s.PlayerTitle.Render(truncate(p.info(), width)),
		s.PlayerArtist.Render(truncate(p.artist, width)),
		"",
		s.Glyph.Render(p.glyph.String()),
	)
}

func (p *panel) renderMini(s Styles, width int) string {
	line := p.info()
	if p.artist != "" {
		line += " - " + p.artist
	}
	return s.Glyph.Render(p.glyph.String()) + " " + truncate(line, width-2)
}

func coverLabel(cover string) string {
	if cover == "" {
		return "[no cover]"
	}
	return "[" + cover + "]"
}
