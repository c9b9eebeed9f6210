package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrInvalidLogLevel  = errors.New("log level must be one of debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("log format must be json or text")
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"info"`
	LogFormat string  `yaml:"log-format" env:"OTHELLO_LOG_FORMAT" env-default:"json"`
	Players   Players `yaml:"players"`
	Console   Console `yaml:"console"`
}

// Players are registered on every new game when set.
type Players struct {
	Black string `yaml:"black" env:"OTHELLO_BLACK_PLAYER"`
	White string `yaml:"white" env:"OTHELLO_WHITE_PLAYER"`
}

// Console switches default to off. cleanenv applies env-default to zero values only.
type Console struct {
	Plain     bool `yaml:"plain" env:"OTHELLO_CONSOLE_PLAIN"`
	HideMoves bool `yaml:"hide-moves" env:"OTHELLO_CONSOLE_HIDE_MOVES"`
}

// Load - reads the yaml file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidLogLevel, that.LogLevel)
	}

	switch that.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("%w, got %q", ErrInvalidLogFormat, that.LogFormat)
	}

	return nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
