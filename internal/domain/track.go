package domain

import "time"

type Track struct {
	Title  string `mapstructure:"title" json:"title"`
	Artist string `mapstructure:"artist" json:"artist"`
	File   string `mapstructure:"file" json:"file"`
	Cover  string `mapstructure:"cover" json:"cover"`
}

func (t Track) IsEmpty() bool { return t == Track{} }

type HistoryEntry struct {
	Track    Track     `json:"track"`
	PlayedAt time.Time `json:"playedAt"`
}
