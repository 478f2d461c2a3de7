// Package config resolves file locations from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Prefix is the environment variable prefix, e.g. SOCCERSTATS_RAW_PATH.
const Prefix = "soccerstats"

// Config holds the input and output locations of the two components.
type Config struct {
	// RawPath is the per-competition source file read by the clean command.
	RawPath string `split_words:"true" default:"top5-players.csv"`

	// CleanedPath is the merged file written by clean and read by every dashboard command.
	CleanedPath string `split_words:"true" default:"cleaned_merged_top5_players_with_squads.csv"`
}

// Load reads the optional dotenv files, then the environment. Variables already
// set in the environment win over values from the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug().Str("file", f).Msg("no dotenv file")
				continue
			}
			log.Warn().Err(err).Str("file", f).Msg("failed to load dotenv file")
		}
	}

	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return &c, nil
}
