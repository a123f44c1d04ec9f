package config

import (
	"errors"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"golang.org/x/text/width"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	AskNames bool    `yaml:"ask-names" env:"ASK_NAMES" env-default:"true"`
	Players  Players `yaml:"players"`
}

type Players struct {
	FirstName  string `yaml:"first-name" env:"PLAYER_ONE_NAME" env-default:"Player 1"`
	FirstMark  string `yaml:"first-mark" env:"PLAYER_ONE_MARK" env-default:"X"`
	SecondName string `yaml:"second-name" env:"PLAYER_TWO_NAME" env-default:"Player 2"`
	SecondMark string `yaml:"second-mark" env:"PLAYER_TWO_MARK" env-default:"O"`
}

// Load - reads the config file when it exists, the environment otherwise.
// A .env file in the working directory is loaded first; a missing one is ignored.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if !isMark(that.Players.FirstMark) || !isMark(that.Players.SecondMark) || that.Players.FirstMark == that.Players.SecondMark {
		return fmt.Errorf("%w: %q and %q", apperror.ErrInvalidMarks, that.Players.FirstMark, that.Players.SecondMark)
	}

	return nil
}

// isMark - one printable, single-width character, so a board slot stays three columns wide.
func isMark(mark string) bool {
	if utf8.RuneCountInString(mark) != 1 {
		return false
	}

	r, _ := utf8.DecodeRuneInString(mark)
	if !unicode.IsGraphic(r) || unicode.IsSpace(r) || unicode.Is(unicode.Mn, r) {
		return false
	}

	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return false
	default:
		return true
	}
}
