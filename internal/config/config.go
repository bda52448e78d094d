// Package config loads importer configuration from YAML. Every field has
// a compiled-in default so the importer runs without a config file; a
// file overrides only what it sets.
package config

import (
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/FottenSC/FrameData/internal/errors"
	"github.com/FottenSC/FrameData/internal/movelist"
)

// DefaultCharacters is the Tekken 8 roster as named in Wavu Wiki page
// titles. Adjust via config when the roster changes.
var DefaultCharacters = []string{
	"Alisa", "Anna", "Asuka", "Azucena", "Bryan", "Claudio", "Clive",
	"Devil_Jin", "Dragunov", "Eddy", "Feng", "Heihachi", "Hwoarang",
	"Jack-8", "Jin", "Jun", "Kazuya", "King", "Kuma", "Lars", "Law",
	"Lee", "Leo", "Leroy", "Lidia", "Lili", "Nina", "Panda", "Paul",
	"Raven", "Reina", "Shaheen", "Steve", "Victor", "Xiaoyu",
	"Yoshimitsu", "Zafina",
}

const defaultFetchInterval = "1.5s"

// Config is the importer configuration.
type Config struct {
	// APIBaseURL is the MediaWiki API endpoint.
	APIBaseURL string `yaml:"apiBaseUrl"`
	// UserAgent identifies the importer to the wiki.
	UserAgent string `yaml:"userAgent"`
	// Characters to import, as used in movelist page titles.
	Characters []string `yaml:"characters"`
	// FetchInterval is the minimum delay between page fetches, as a Go
	// duration string. The wiki is a community site; be polite.
	FetchInterval string `yaml:"fetchInterval"`

	// Heuristic tables for the movelist parser. Empty maps fall back to
	// the parser defaults.
	NoteReplacements    map[string]string `yaml:"noteReplacements"`
	HitFallbacks        map[string]string `yaml:"hitFallbacks"`
	CounterHitFallbacks map[string]string `yaml:"counterHitFallbacks"`
	AdvantageFallback   string            `yaml:"advantageFallback"`

	// FetchEvery is FetchInterval parsed; populated by Validate.
	FetchEvery time.Duration `yaml:"-"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Characters:    append([]string(nil), DefaultCharacters...),
		FetchInterval: defaultFetchInterval,
	}
}

// Load reads a YAML config file. An empty path yields the defaults. The
// returned config is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument,
				"failed to parse config "+path)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config and fills in defaults for anything unset.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if len(c.Characters) == 0 {
		c.Characters = append([]string(nil), DefaultCharacters...)
	}
	for _, char := range c.Characters {
		if char == "" {
			vb.InvalidField("characters", "contains an empty name")
			break
		}
	}

	if c.FetchInterval == "" {
		c.FetchInterval = defaultFetchInterval
	}
	every, err := time.ParseDuration(c.FetchInterval)
	if err != nil {
		vb.InvalidField("fetchInterval", err.Error())
	} else if every < 0 {
		vb.InvalidField("fetchInterval", "must not be negative")
	} else {
		c.FetchEvery = every
	}

	return vb.Build()
}

// ParserConfig builds the movelist parser configuration carrying this
// config's heuristic tables.
func (c *Config) ParserConfig() *movelist.Config {
	return &movelist.Config{
		NoteReplacements:    c.NoteReplacements,
		HitFallbacks:        c.HitFallbacks,
		CounterHitFallbacks: c.CounterHitFallbacks,
		AdvantageFallback:   c.AdvantageFallback,
	}
}
