package volley

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/volley/power"
)

// CacheConfig controls the optimizer result cache.
type CacheConfig struct {
	// Enabled turns the result cache on. Runs with identical matrix, mode and
	// degradation coefficient are then served from memory.
	Enabled bool `yaml:"enabled"`

	// MaxEntries bounds the number of cached results.
	//
	// Default: 1024
	MaxEntries int `yaml:"maxEntries"`
}

// ServerConfig controls the HTTP surface started by `volley serve`.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// ReadTimeout bounds reading a full request including its body.
	ReadTimeout time.Duration `yaml:"readTimeout"`

	// ShutdownTimeout is the maximum time to wait for in-flight requests on shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	// MetricsNamespace prefixes every exported Prometheus metric.
	MetricsNamespace string `yaml:"metricsNamespace"`
}

// Config is the configuration for the Optimizer.
//
// All duration fields accept standard Go duration strings like "5s", "1m".
type Config struct {
	// Degradation is the coefficient k. An attacked target keeps 1/k of its
	// power in the attacked period. Must be at least 2.
	Degradation int `yaml:"degradation"`

	// PerPeriod is m, the number of targets attacked in each period.
	PerPeriod int `yaml:"perPeriod"`

	// PerTarget is r, the maximum number of attacks a single target receives.
	PerTarget int `yaml:"perTarget"`

	// MaxTargets bounds the matrix size accepted by the optimizer.
	// The exact solver is O(n³), so this keeps a single request bounded.
	MaxTargets int `yaml:"maxTargets"`

	// Cache controls the result cache.
	Cache CacheConfig `yaml:"cache"`

	// Server controls the HTTP surface.
	Server ServerConfig `yaml:"server"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Degradation: 2,
		PerPeriod:   1,
		PerTarget:   1,
		MaxTargets:  64,
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 1024,
		},
		Server: ServerConfig{
			Addr:             ":8080",
			ReadTimeout:      10 * time.Second,
			ShutdownTimeout:  10 * time.Second,
			MetricsNamespace: "volley",
		},
	}
}

// SetDefaults fills in missing configuration values with production defaults.
//
// The mode is only defaulted when both PerPeriod and PerTarget are zero, since
// a zero attack budget on its own is a meaningful (if infeasible) request.
// Cache.Enabled is left alone; a zero value means disabled.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Degradation == 0 {
		cfg.Degradation = defaults.Degradation
	}
	if cfg.PerPeriod == 0 && cfg.PerTarget == 0 {
		cfg.PerPeriod = defaults.PerPeriod
		cfg.PerTarget = defaults.PerTarget
	}
	if cfg.MaxTargets == 0 {
		cfg.MaxTargets = defaults.MaxTargets
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = defaults.Cache.MaxEntries
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaults.Server.Addr
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaults.Server.ReadTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaults.Server.ShutdownTimeout
	}
	if cfg.Server.MetricsNamespace == "" {
		cfg.Server.MetricsNamespace = defaults.Server.MetricsNamespace
	}
}

// Mode returns the configured attack limits.
func (cfg *Config) Mode() Mode {
	return Mode{PerPeriod: cfg.PerPeriod, PerTarget: cfg.PerTarget}
}

// Validate checks configuration constraints and returns error for invalid values.
//
// Hard Validation Rules:
//   - Degradation >= 2 (k = 1 would divide by zero in the discount)
//   - (PerPeriod, PerTarget) is (1,1) or (2,2)
//   - MaxTargets >= 1
//   - Cache.MaxEntries >= 0
//   - Server timeouts are non-negative
//
// Returns:
//   - error: ErrInvalidConfig wrapped with a clear explanation, nil if valid
func (cfg *Config) Validate() error {
	// Rule 1: degradation coefficient
	if _, err := power.Discount(cfg.Degradation); err != nil {
		return fmt.Errorf("%w: degradation: %w", ErrInvalidConfig, err)
	}

	// Rule 2: supported mode
	if cfg.Mode().Kind() == KindUnsupported {
		return fmt.Errorf("%w: mode %s: %w", ErrInvalidConfig, cfg.Mode(), ErrUnsupportedConfiguration)
	}

	// Rule 3: size bound
	if cfg.MaxTargets < 1 {
		return fmt.Errorf("%w: MaxTargets must be >= 1, got %d", ErrInvalidConfig, cfg.MaxTargets)
	}

	// Rule 4: cache bound
	if cfg.Cache.MaxEntries < 0 {
		return fmt.Errorf("%w: Cache.MaxEntries must be >= 0, got %d", ErrInvalidConfig, cfg.Cache.MaxEntries)
	}

	// Rule 5: server timeouts
	if cfg.Server.ReadTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf(
			"%w: server timeouts must be >= 0, got read=%v shutdown=%v",
			ErrInvalidConfig, cfg.Server.ReadTimeout, cfg.Server.ShutdownTimeout,
		)
	}

	return nil
}

// ValidateWithWarnings checks configuration and logs warnings for non-recommended values.
//
// This is called after Validate() in NewOptimizer() to provide operator guidance.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	// Warn if matrices may get large enough for the cubic solver to be slow
	if cfg.MaxTargets > 512 {
		logger.Warn(
			"MaxTargets is very large, exact runs scale cubically",
			"maxTargets", cfg.MaxTargets,
			"recommended", "512 or lower",
		)
	}

	// Warn if a huge k makes attacked targets practically vanish
	if cfg.Degradation > 100 {
		logger.Warn(
			"Degradation is very high, attacked power is almost fully discounted",
			"degradation", cfg.Degradation,
		)
	}

	// Warn if the cache is unbounded
	if cfg.Cache.Enabled && cfg.Cache.MaxEntries == 0 {
		logger.Warn("result cache is enabled without an entry bound")
	}
}

// LoadConfig reads a YAML configuration file.
//
// Fields missing from the file keep their DefaultConfig values; unknown
// fields are rejected so typos do not go unnoticed.
//
// Parameters:
//   - path: Path to a YAML file
//
// Returns:
//   - Config: The loaded, defaulted and validated configuration
//   - error: Read, decode or validation error
//
// Example:
//
//	cfg, err := volley.LoadConfig("volley.yaml")
//	if err != nil { /* handle */ }
//	opt, err := volley.NewOptimizer(&cfg)
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// TestConfig returns a configuration suited to unit tests.
//
// The cache is disabled so every call exercises the solvers, and the
// server shuts down quickly.
//
// Returns:
//   - Config: Configuration for tests
//
// Example:
//
//	cfg := volley.TestConfig()
//	cfg.PerPeriod, cfg.PerTarget = 2, 2
//	opt, err := volley.NewOptimizer(&cfg)
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.Cache.Enabled = false
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Server.ShutdownTimeout = 500 * time.Millisecond

	return cfg
}
