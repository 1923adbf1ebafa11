// Package common provides configuration and path helpers shared by the
// ferret service and CLI.
package common

import (
	"log/slog"
	"os"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/ferret-sh/ferret/pkg/fuzzy"
)

// Config is the service configuration, loadable from ferret.toml. The
// scoring fields mirror fuzzy.Weights so deployments can tune ranking
// without code changes; the defaults reproduce the reference scores.
type Config struct {
	MinScore    int      `koanf:"min_score" desc:"minimum score for ranked results" default:"1"`
	IncludeDirs bool     `koanf:"include_dirs" desc:"include directories when walking roots" default:"false"`
	Roots       []string `koanf:"roots" desc:"directories walked for candidates in serve mode" default:"user home"`

	AdjacencyBonus         int `koanf:"adjacency_bonus" desc:"bonus for a match directly after another match" default:"5"`
	SeparatorBonus         int `koanf:"separator_bonus" desc:"bonus for a match after '_' or space" default:"10"`
	CamelBonus             int `koanf:"camel_bonus" desc:"bonus for a match on a camelCase boundary" default:"10"`
	UnmatchedPenalty       int `koanf:"unmatched_penalty" desc:"penalty per unmatched subject character" default:"-1"`
	UnmatchedPrefixPenalty int `koanf:"unmatched_prefix_penalty" desc:"penalty per subject character before the first match" default:"0"`
	MaxPrefixPenalty       int `koanf:"max_prefix_penalty" desc:"cap for the total prefix penalty" default:"0"`
}

// DefaultConfig returns the built-in defaults, scoring constants taken
// from fuzzy.DefaultWeights.
func DefaultConfig() *Config {
	w := fuzzy.DefaultWeights()
	home, _ := os.UserHomeDir()

	return &Config{
		MinScore:               1,
		Roots:                  []string{home},
		AdjacencyBonus:         w.AdjacencyBonus,
		SeparatorBonus:         w.SeparatorBonus,
		CamelBonus:             w.CamelBonus,
		UnmatchedPenalty:       w.UnmatchedPenalty,
		UnmatchedPrefixPenalty: w.UnmatchedPrefixPenalty,
		MaxPrefixPenalty:       w.MaxPrefixPenalty,
	}
}

// Weights converts the configured scoring constants into fuzzy.Weights.
func (c *Config) Weights() fuzzy.Weights {
	return fuzzy.Weights{
		AdjacencyBonus:         c.AdjacencyBonus,
		SeparatorBonus:         c.SeparatorBonus,
		CamelBonus:             c.CamelBonus,
		UnmatchedPenalty:       c.UnmatchedPenalty,
		UnmatchedPrefixPenalty: c.UnmatchedPrefixPenalty,
		MaxPrefixPenalty:       c.MaxPrefixPenalty,
	}
}

// LoadServiceConfig returns the defaults merged with the user's
// ferret.toml, if one exists.
func LoadServiceConfig() *Config {
	config := DefaultConfig()
	LoadConfig("ferret", config)

	return config
}

// LoadConfig merges <name>.toml from the config dir over the defaults
// already set on config. Malformed configuration is fatal.
func LoadConfig(name string, config any) {
	defaults := koanf.New(".")

	err := defaults.Load(structs.Provider(config, "koanf"), nil)
	if err != nil {
		slog.Error(name, "config", err)
		os.Exit(1)
	}

	userConfig := ConfigFile(name)

	if FileExists(userConfig) {
		user := koanf.New("")

		err := user.Load(file.Provider(userConfig), toml.Parser())
		if err != nil {
			slog.Error(name, "config", err)
			os.Exit(1)
		}

		err = defaults.Merge(user)
		if err != nil {
			slog.Error(name, "config", err)
			os.Exit(1)
		}

		err = defaults.Unmarshal("", config)
		if err != nil {
			slog.Error(name, "config", err)
			os.Exit(1)
		}
	} else {
		slog.Info(name, "config", "not found. using default config")
	}
}
