package ui

import "github.com/charmbracelet/lipgloss"

var highlightColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}

type Styles struct {
	App          lipgloss.Style
	Box          lipgloss.Style
	FocusedBox   lipgloss.Style
	Glyph        lipgloss.Style
	PlayerTitle  lipgloss.Style
	PlayerArtist lipgloss.Style
	Cover        lipgloss.Style
	Label        lipgloss.Style
	Status       lipgloss.Style
	ErrorText    lipgloss.Style
	Help         lipgloss.Style
}

func DefaultStyles() Styles {
	s := Styles{}
	s.App = lipgloss.NewStyle().Padding(0, 1)
	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	s.FocusedBox = s.Box.BorderForeground(highlightColor)
	s.Glyph = lipgloss.NewStyle().Foreground(highlightColor).Bold(true)
	s.PlayerTitle = lipgloss.NewStyle().Bold(true)
	s.PlayerArtist = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	s.Cover = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	s.Label = lipgloss.NewStyle().Foreground(highlightColor)
	s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	s.ErrorText = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	s.Help = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return s
}
