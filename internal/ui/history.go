package ui

import (
	"github.com/gabrielcapilla/triplay/internal/domain"
	"github.com/gabrielcapilla/triplay/internal/ports"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type historyItem struct{ entry domain.HistoryEntry }

func (i historyItem) FilterValue() string { return i.entry.Track.Title }
func (i historyItem) Title() string       { return i.entry.Track.Title }
func (i historyItem) Description() string {
	return i.entry.Track.Artist + " · " + i.entry.PlayedAt.Local().Format("Jan 2 15:04")
}

func loadHistoryCmd(store ports.StorageService, limit int) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := store.GetHistory(limit)
		if err != nil {
			return ports.HistoryErrorMsg{Err: err}
		}
		return ports.HistoryLoadedMsg{Entries: entries}
	}
}

func newHistoryList() list.Model {
	li := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	li.Title = "Recently played"
	li.SetShowStatusBar(false)
	li.SetFilteringEnabled(false)
	li.SetShowHelp(false)
	li.SetShowPagination(false)
	return li
}

func historyItems(entries []domain.HistoryEntry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = historyItem{entry: entry}
	}
	return items
}
