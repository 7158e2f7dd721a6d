package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable, e.g. YTGRAB_LOG_LEVEL
const EnvPrefix = "YTGRAB"

// Env holds process-level overrides read from the environment
type Env struct {
	LogLevel      string `envconfig:"LOG_LEVEL" default:"INFO"`
	ConverterPath string `envconfig:"CONVERTER_PATH"`
	YtDlpPath     string `envconfig:"YTDLP_PATH"`
	HistoryPath   string `envconfig:"HISTORY_PATH"`
	ProbeTitles   bool   `envconfig:"PROBE_TITLES" default:"true"`
}

// LoadEnv reads environment variables and populates Env. HistoryPath defaults
// to history.db under the user config directory.
func LoadEnv() (*Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("error processing env: %w", err)
	}

	if env.HistoryPath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config dir: %w", err)
		}
		env.HistoryPath = filepath.Join(dir, "ytgrab", "history.db")
	}

	return &env, nil
}

func (e *Env) SlogLevel() slog.Level {
	switch strings.ToUpper(e.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
