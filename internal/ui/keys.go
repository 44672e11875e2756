package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PlayMain    key.Binding
	PlaySidebar key.Binding
	PlayMini    key.Binding
	Toggle      key.Binding
	Focus       key.Binding
	VolumeUp    key.Binding
	VolumeDown  key.Binding
	VolumeMute  key.Binding
	VolumeMax   key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PlayMain:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "main ▶/⏸")),
		PlaySidebar: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "sidebar ▶/⏸")),
		PlayMini:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "mini ▶/⏸")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "play/pause")),
		Focus:       key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "focus")),
		VolumeUp:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "vol up")),
		VolumeDown:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "vol down")),
		VolumeMute:  key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "mute")),
		VolumeMax:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "max volume")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Focus, k.VolumeUp, k.VolumeDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayMain, k.PlaySidebar, k.PlayMini, k.Toggle, k.Focus},
		{k.VolumeUp, k.VolumeDown, k.VolumeMute, k.VolumeMax, k.Quit},
	}
}
