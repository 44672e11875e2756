package domain

type Config struct {
	MpvSocketPath string `mapstructure:"mpvSocketPath"`
	HistoryLimit  int    `mapstructure:"historyLimit"`
	InitialVolume int    `mapstructure:"initialVolume"`
	Track         Track  `mapstructure:"track"`
}
