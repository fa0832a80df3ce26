package volley

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	volleytest "github.com/arloliu/volley/testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, 2, cfg.Degradation)
	require.Equal(t, 1, cfg.PerPeriod)
	require.Equal(t, 1, cfg.PerTarget)
	require.Equal(t, ModeSingle, cfg.Mode())
	require.Equal(t, 64, cfg.MaxTargets)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, 1024, cfg.Cache.MaxEntries)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "volley", cfg.Server.MetricsNamespace)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, 2, cfg.Degradation)
		require.Equal(t, ModeSingle, cfg.Mode())
		require.Equal(t, 64, cfg.MaxTargets)
		require.False(t, cfg.Cache.Enabled)
		require.Equal(t, 1024, cfg.Cache.MaxEntries)
		require.Equal(t, ":8080", cfg.Server.Addr)
		require.NoError(t, cfg.Validate())
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Degradation: 3,
			PerPeriod:   2,
			PerTarget:   2,
			MaxTargets:  16,
			Cache:       CacheConfig{Enabled: true, MaxEntries: 8},
			Server: ServerConfig{
				Addr:             ":9090",
				ReadTimeout:      time.Second,
				ShutdownTimeout:  2 * time.Second,
				MetricsNamespace: "fire",
			},
		}
		SetDefaults(&cfg)

		// All custom values should be preserved
		require.Equal(t, 3, cfg.Degradation)
		require.Equal(t, ModePairs, cfg.Mode())
		require.Equal(t, 16, cfg.MaxTargets)
		require.Equal(t, 8, cfg.Cache.MaxEntries)
		require.Equal(t, ":9090", cfg.Server.Addr)
		require.Equal(t, time.Second, cfg.Server.ReadTimeout)
		require.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
		require.Equal(t, "fire", cfg.Server.MetricsNamespace)
	})

	t.Run("keeps a lone zero budget", func(t *testing.T) {
		cfg := Config{PerPeriod: 2}
		SetDefaults(&cfg)

		require.Equal(t, Mode{PerPeriod: 2, PerTarget: 0}, cfg.Mode())
		require.ErrorIs(t, cfg.Validate(), ErrUnsupportedConfiguration)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("rejects k below two", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Degradation = 1

		err := cfg.Validate()
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.ErrorIs(t, err, ErrInvalidCoefficient)
	})

	t.Run("rejects unsupported modes", func(t *testing.T) {
		for _, mode := range []Mode{{PerPeriod: 1, PerTarget: 2}, {PerPeriod: 3, PerTarget: 3}, {PerPeriod: 2, PerTarget: 1}} {
			cfg := DefaultConfig()
			cfg.PerPeriod, cfg.PerTarget = mode.PerPeriod, mode.PerTarget

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig, "mode=%s", mode)
			require.ErrorIs(t, err, ErrUnsupportedConfiguration, "mode=%s", mode)
		}
	})

	t.Run("rejects bad bounds", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxTargets = 0
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

		cfg = DefaultConfig()
		cfg.Cache.MaxEntries = -1
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

		cfg = DefaultConfig()
		cfg.Server.ReadTimeout = -time.Second
		require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
	})
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTargets = 1000
	cfg.Degradation = 500
	cfg.Cache.MaxEntries = 0

	require.NotPanics(t, func() {
		cfg.ValidateWithWarnings(volleytest.NewTestLogger(t))
	})
}

// TestConfig_YAML demonstrates that time.Duration works directly with YAML unmarshaling
func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
degradation: 3
perPeriod: 2
perTarget: 2
maxTargets: 32
cache:
  enabled: true
  maxEntries: 10
server:
  addr: ":9000"
  readTimeout: 5s
  shutdownTimeout: 1m
  metricsNamespace: "ops"
`

	var cfg Config
	err := yaml.Unmarshal([]byte(yamlConfig), &cfg)
	require.NoError(t, err)

	require.Equal(t, 3, cfg.Degradation)
	require.Equal(t, ModePairs, cfg.Mode())
	require.Equal(t, 32, cfg.MaxTargets)
	require.True(t, cfg.Cache.Enabled)
	require.Equal(t, 10, cfg.Cache.MaxEntries)
	require.Equal(t, ":9000", cfg.Server.Addr)
	require.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	require.Equal(t, time.Minute, cfg.Server.ShutdownTimeout)
	require.Equal(t, "ops", cfg.Server.MetricsNamespace)
}

func TestLoadConfig(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "volley.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	t.Run("keeps defaults for missing fields", func(t *testing.T) {
		cfg, err := LoadConfig(write(t, "perPeriod: 2\nperTarget: 2\n"))
		require.NoError(t, err)

		require.Equal(t, ModePairs, cfg.Mode())
		require.Equal(t, 2, cfg.Degradation)
		require.True(t, cfg.Cache.Enabled)
		require.Equal(t, 64, cfg.MaxTargets)
	})

	t.Run("accepts an empty file", func(t *testing.T) {
		cfg, err := LoadConfig(write(t, ""))
		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		_, err := LoadConfig(write(t, "degradaton: 3\n"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		_, err := LoadConfig(write(t, "degradation: 1\n"))
		require.ErrorIs(t, err, ErrInvalidCoefficient)
	})

	t.Run("reports missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()
	require.False(t, cfg.Cache.Enabled)
	require.NoError(t, cfg.Validate())
}
