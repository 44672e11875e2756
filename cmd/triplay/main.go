package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabrielcapilla/triplay/internal/logger"
	"github.com/gabrielcapilla/triplay/internal/services/config"
	"github.com/gabrielcapilla/triplay/internal/services/player"
	"github.com/gabrielcapilla/triplay/internal/services/storage"
	"github.com/gabrielcapilla/triplay/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "triplay: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", "", "directory holding config.yml (default: user config dir)")
	debug := flag.Bool("debug", false, "log every playback transition")
	flag.Parse()

	logFile, err := logger.Init(*debug)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer logFile.Close()

	cfg, err := config.NewViperConfigService(*configDir).Load()
	if err != nil {
		return fmt.Errorf("could not load config: %w", err)
	}

	dataDir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("could not get the user's config directory: %w", err)
	}
	appDir := filepath.Join(dataDir, "triplay")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("could not create the triplay directory: %w", err)
	}

	store, err := storage.NewBboltStore(filepath.Join(appDir, "triplay.db"))
	if err != nil {
		return fmt.Errorf("error initializing the storage service: %w", err)
	}
	defer store.Close()

	media := player.NewMpvPlayer(cfg.MpvSocketPath)
	defer media.Close()

	model, err := ui.NewAppModel(media, store, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Log.Error().Err(err).Msg("Program exited with error")
		return err
	}
	return nil
}
