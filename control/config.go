// control/config.go
// Author: momentics <momentics@gmail.com>
//
// Typed runtime configuration: defaults, YAML/.env/environment loading and
// validation.

package control

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/momentics/hioload-mem/api"
)

// Environment overrides, applied after the YAML file.
const (
	EnvSpareBlocks = "HIOLOAD_MEM_SPARE_BLOCKS"
	EnvLogLevel    = "HIOLOAD_MEM_LOG_LEVEL"
	EnvMetrics     = "HIOLOAD_MEM_METRICS"
)

// Flattened keys used by ConfigStore and api.Control.
const (
	KeySpareBlocks    = "arena.spare_blocks"
	KeyMetricsEnabled = "metrics.enabled"
	KeyMetricsPrefix  = "metrics.prefix"
	KeyDebugEnabled   = "debug.enabled"
	KeyJournalSize    = "debug.journal_size"
	KeyLogLevel       = "log.level"
)

const maxSpareBlocks = 1 << 20

// Config holds the runtime settings.
type Config struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Metrics MetricsConfig `yaml:"metrics"`
	Debug   DebugConfig   `yaml:"debug"`
	Log     LogConfig     `yaml:"log"`
}

// ArenaConfig tunes deque block arenas.
type ArenaConfig struct {
	SpareBlocks int `yaml:"spare_blocks"` // spare list capacity per arena
}

// MetricsConfig controls lifecycle counters.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Prefix  string `yaml:"prefix"` // metric name prefix
}

// DebugConfig controls probes and the event journal.
type DebugConfig struct {
	Enabled     bool `yaml:"enabled"`
	JournalSize int  `yaml:"journal_size"` // events kept by the journal
}

// LogConfig sets the zerolog level by name.
type LogConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Arena:   ArenaConfig{SpareBlocks: 64},
		Metrics: MetricsConfig{Enabled: true, Prefix: "hioload_mem"},
		Debug:   DebugConfig{Enabled: true, JournalSize: 256},
		Log:     LogConfig{Level: "info"},
	}
}

// LoadConfig starts from DefaultConfig, overlays the YAML file at path (if
// path is not empty) and then the environment overrides. Variables missing
// from the process environment are looked up in envFiles; a missing env
// file is ignored.
func LoadConfig(path string, envFiles ...string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
		}
	}

	dotenv := make(map[string]string)
	for _, f := range envFiles {
		vars, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read env file %s: %w", f, err)
		}
		for k, v := range vars {
			if _, ok := dotenv[k]; !ok {
				dotenv[k] = v
			}
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSpareBlocks); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", api.ErrInvalidArgument, EnvSpareBlocks, v, err)
		}
		c.Arena.SpareBlocks = n
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvMetrics); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", api.ErrInvalidArgument, EnvMetrics, v, err)
		}
		c.Metrics.Enabled = b
	}
	return nil
}

var metricNameRe = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

// Validate checks every field; errors match api.ErrInvalidArgument.
func (c *Config) Validate() error {
	if c.Arena.SpareBlocks < 1 || c.Arena.SpareBlocks > maxSpareBlocks {
		return fmt.Errorf("%w: %s must be in [1, %d], got %d",
			api.ErrInvalidArgument, KeySpareBlocks, maxSpareBlocks, c.Arena.SpareBlocks)
	}
	if c.Metrics.Enabled && !metricNameRe.MatchString(c.Metrics.Prefix) {
		return fmt.Errorf("%w: %s %q is not a valid metric name",
			api.ErrInvalidArgument, KeyMetricsPrefix, c.Metrics.Prefix)
	}
	if c.Debug.Enabled && c.Debug.JournalSize < 1 {
		return fmt.Errorf("%w: %s must be positive, got %d",
			api.ErrInvalidArgument, KeyJournalSize, c.Debug.JournalSize)
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %s: %v", api.ErrInvalidArgument, KeyLogLevel, err)
	}
	return nil
}

// Flatten returns the settings keyed by their dotted names.
func (c *Config) Flatten() map[string]any {
	return map[string]any{
		KeySpareBlocks:    c.Arena.SpareBlocks,
		KeyMetricsEnabled: c.Metrics.Enabled,
		KeyMetricsPrefix:  c.Metrics.Prefix,
		KeyDebugEnabled:   c.Debug.Enabled,
		KeyJournalSize:    c.Debug.JournalSize,
		KeyLogLevel:       c.Log.Level,
	}
}

// apply sets the known dotted keys of kv; unknown keys are ignored.
func (c *Config) apply(kv map[string]any) error {
	for k, v := range kv {
		var ok bool
		switch k {
		case KeySpareBlocks:
			c.Arena.SpareBlocks, ok = toInt(v)
		case KeyJournalSize:
			c.Debug.JournalSize, ok = toInt(v)
		case KeyMetricsEnabled:
			c.Metrics.Enabled, ok = toBool(v)
		case KeyDebugEnabled:
			c.Debug.Enabled, ok = toBool(v)
		case KeyMetricsPrefix:
			c.Metrics.Prefix, ok = v.(string)
		case KeyLogLevel:
			c.Log.Level, ok = v.(string)
		default:
			continue
		}
		if !ok {
			return fmt.Errorf("%w: %s: unsupported value %v (%T)", api.ErrInvalidArgument, k, v, v)
		}
	}
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	}
	return 0, false
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		p, err := strconv.ParseBool(b)
		return p, err == nil
	}
	return false, false
}
