package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-deluxe/internal/apperror"
)

const (
	FrontendTUI = "tui"
	FrontendGUI = "gui"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	Frontend string `yaml:"frontend" env:"TICTACTOE_FRONTEND" env-default:"tui"`
	Pulse    Pulse  `yaml:"pulse"`
	Window   Window `yaml:"window"`
}

type Pulse struct {
	Interval time.Duration `yaml:"interval" env:"TICTACTOE_PULSE_INTERVAL" env-default:"60ms"`
}

type Window struct {
	Title string `yaml:"title" env:"TICTACTOE_WINDOW_TITLE" env-default:"Tic-Tac-Toe Deluxe"`
	Scale int    `yaml:"scale" env:"TICTACTOE_WINDOW_SCALE" env-default:"1"`
}

// MustLoad - load configuration from the yml file at path, or from defaults and environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config file %s: %w", path, err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("read config from env: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.Frontend {
	case FrontendTUI, FrontendGUI:
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownFrontend, that.Frontend)
	}

	if that.Pulse.Interval <= 0 {
		return fmt.Errorf("%w: pulse interval must be positive, got %s", apperror.ErrInvalidConfig, that.Pulse.Interval)
	}

	if that.Window.Scale <= 0 {
		return fmt.Errorf("%w: window scale must be positive, got %d", apperror.ErrInvalidConfig, that.Window.Scale)
	}

	return nil
}
