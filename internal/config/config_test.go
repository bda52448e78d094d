package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FottenSC/FrameData/internal/config"
	"github.com/FottenSC/FrameData/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultCharacters, cfg.Characters)
	assert.Equal(t, 1500*time.Millisecond, cfg.FetchEvery)
	assert.Empty(t, cfg.APIBaseURL, "client applies its own default")
}

func TestLoadFile(t *testing.T) {
	t.Run("file overrides only what it sets", func(t *testing.T) {
		path := writeConfig(t, `
characters:
  - Alisa
  - Bryan
fetchInterval: 2s
hitFallbacks:
  "Some page#Frag": "+10"
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"Alisa", "Bryan"}, cfg.Characters)
		assert.Equal(t, 2*time.Second, cfg.FetchEvery)
		assert.Equal(t, "+10", cfg.HitFallbacks["Some page#Frag"])
		assert.Nil(t, cfg.NoteReplacements, "unset maps stay nil for parser defaults")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "characters: [unclosed")
		_, err := config.Load(path)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestValidate(t *testing.T) {
	t.Run("empty character name rejected", func(t *testing.T) {
		cfg := config.Default()
		cfg.Characters = []string{"Alisa", ""}
		err := cfg.Validate()
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("bad interval rejected", func(t *testing.T) {
		cfg := config.Default()
		cfg.FetchInterval = "soon"
		assert.True(t, errors.IsInvalidArgument(cfg.Validate()))
	})

	t.Run("negative interval rejected", func(t *testing.T) {
		cfg := config.Default()
		cfg.FetchInterval = "-1s"
		assert.True(t, errors.IsInvalidArgument(cfg.Validate()))
	})

	t.Run("empty roster falls back to default", func(t *testing.T) {
		cfg := &config.Config{}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, config.DefaultCharacters, cfg.Characters)
		assert.Equal(t, 1500*time.Millisecond, cfg.FetchEvery)
	})
}

func TestParserConfig(t *testing.T) {
	cfg := config.Default()
	cfg.AdvantageFallback = "+1"
	cfg.NoteReplacements = map[string]string{"Spike": "Spike"}

	pc := cfg.ParserConfig()
	assert.Equal(t, "+1", pc.AdvantageFallback)
	assert.Equal(t, "Spike", pc.NoteReplacements["Spike"])
	assert.Empty(t, pc.MoveTemplate, "parser applies its own template defaults")
}
