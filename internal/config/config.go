package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env-default:"warn" validate:"oneof=debug info warn error"`
	Display  Display `yaml:"display"`
}

// Display - how the board is drawn on the terminal.
type Display struct {
	HumanMarker    string `yaml:"human-marker" env-default:"X" validate:"len=1,nefield=OpponentMarker,nefield=EmptyMarker"`
	OpponentMarker string `yaml:"opponent-marker" env-default:"O" validate:"len=1,nefield=EmptyMarker"`
	EmptyMarker    string `yaml:"empty-marker" env-default:"-" validate:"len=1"`
	SeparatorWidth int    `yaml:"separator-width" env-default:"39" validate:"min=1"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// MustLoad - load all configurations from the config.yml file, falling back to defaults when it does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// only env-default tags are declared, so this fills in defaults without touching the environment
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to apply defaults: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err = validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
