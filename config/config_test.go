package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rating-rank/utils"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(utils.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SAMPLE_SIZE", "250")
	t.Setenv("CONFIDENCE", "0.99")
	t.Setenv("SEED", "42")
	t.Setenv("PREVIEW_ROWS", "0")
	t.Setenv("CSV_OUTPUT_PATH", "/tmp/ratings.csv")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(utils.NewNopLogger())
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.SampleSize)
	assert.Equal(t, 0.99, cfg.Confidence)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 0, cfg.PreviewRows)
	assert.Equal(t, "/tmp/ratings.csv", cfg.CSVOutputPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsUnparsable(t *testing.T) {
	t.Setenv("SAMPLE_SIZE", "lots")

	_, err := Load(utils.NewNopLogger())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"zero sample size", func(c *Config) { c.SampleSize = 0 }, true},
		{"negative sample size", func(c *Config) { c.SampleSize = -3 }, true},
		{"confidence zero", func(c *Config) { c.Confidence = 0 }, true},
		{"confidence one", func(c *Config) { c.Confidence = 1 }, true},
		{"confidence above one", func(c *Config) { c.Confidence = 1.5 }, true},
		{"confidence 0.5", func(c *Config) { c.Confidence = 0.5 }, false},
		{"negative max votes", func(c *Config) { c.MaxVotes = -1 }, true},
		{"zero max votes", func(c *Config) { c.MaxVotes = 0 }, false},
		{"empty ids", func(c *Config) { c.IDLength = 0 }, true},
		{"negative preview", func(c *Config) { c.PreviewRows = -1 }, true},
		{"unknown log level", func(c *Config) { c.LogLevel = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
