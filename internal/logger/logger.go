package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger = zerolog.Nop()

// Init points Log at triplay.log inside the user config dir. Stdout is owned
// by the terminal UI, so nothing is written there.
func Init(debug bool) (io.Closer, error) {
	logPath := "/tmp/triplay.log"
	configDir, err := os.UserConfigDir()
	if err == nil {
		appDir := filepath.Join(configDir, "triplay")
		if err := os.MkdirAll(appDir, 0755); err == nil {
			logPath = filepath.Join(appDir, "triplay.log")
		}
	}

	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	Log = zerolog.New(file).Level(level).With().Timestamp().Caller().Logger()
	Log.Info().Str("path", logPath).Msg("Logger initialized")
	return file, nil
}
