package ports

import "github.com/gabrielcapilla/triplay/internal/domain"

type HistoryLoadedMsg struct{ Entries []domain.HistoryEntry }
type HistoryErrorMsg struct{ Err error }

type GestureErrorMsg struct{ Err error }
