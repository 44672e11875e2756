package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gabrielcapilla/triplay/internal/domain"
	"github.com/gabrielcapilla/triplay/internal/logger"
	"github.com/gabrielcapilla/triplay/internal/ports"

	"github.com/spf13/viper"
)

type ViperConfigService struct {
	v *viper.Viper
}

// NewViperConfigService looks for config.yml in dir; an empty dir means the
// triplay folder inside the user config directory.
func NewViperConfigService(dir string) ports.ConfigService {
	v := viper.New()

	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			logger.Log.Warn().Err(err).Msg("Could not find user config directory, using current directory")
		} else {
			dir = filepath.Join(configDir, "triplay")
		}
	}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Log.Error().Err(err).Msg("Could not create triplay config directory")
		} else {
			v.AddConfigPath(dir)
		}
	}

	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")

	v.SetDefault("mpvSocketPath", filepath.Join(os.TempDir(), "triplay-mpv.sock"))
	v.SetDefault("historyLimit", 20)
	v.SetDefault("initialVolume", 100)
	v.SetDefault("track.title", "Better Day")
	v.SetDefault("track.artist", "Penguin Music")
	v.SetDefault("track.file", "songs/better-day.mp3")
	v.SetDefault("track.cover", "songs/better-day.webp")

	return &ViperConfigService{v: v}
}

func (s *ViperConfigService) Load() (domain.Config, error) {
	var cfg domain.Config

	if err := s.v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			logger.Log.Info().Msg("Config file not found, creating with default values.")
			if err := s.v.SafeWriteConfig(); err != nil {
				return cfg, err
			}
		} else {
			return cfg, err
		}
	}

	if err := s.v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}
