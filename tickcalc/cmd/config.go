package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of the environment variables read by LoadConfig,
// for example TICKCALC_WIDTH=64.
const EnvPrefix = "TICKCALC_"

// Config holds the defaults of the global flags. Flags given on the command
// line take precedence.
type Config struct {
	Width    int    `env:"WIDTH" envDefault:"32"`
	Output   string `env:"OUTPUT" envDefault:"text"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// LoadConfig loads the given env files, or ./.env when none is given, and
// then parses the TICKCALC_ variables. A missing env file is not an error.
// Variables already set in the environment win over the files.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading env file: %w", err)
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	return cfg, nil
}
