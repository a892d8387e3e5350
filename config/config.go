// Package config loads tspsearch settings from YAML or TOML files, optional
// .env files and TSPSEARCH_* environment variables, in that order of
// precedence (later sources win).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspsearch/prim_kruskal"
	"github.com/katalvlaran/tspsearch/tsp"
)

// Sentinel errors returned by the config package.
var (
	// ErrUnsupportedFormat indicates a config file extension other than
	// .yaml, .yml or .toml.
	ErrUnsupportedFormat = errors.New("config: unsupported config file format")

	// ErrInvalid indicates a setting outside its allowed range.
	ErrInvalid = errors.New("config: invalid setting")
)

// EnvPrefix prefixes every environment override, e.g. TSPSEARCH_ALGORITHM.
const EnvPrefix = "TSPSEARCH_"

// Output formats understood by the CLI.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config holds every user-tunable setting.
type Config struct {
	// DataFile is the edge-list file to load.
	DataFile string `yaml:"data_file" toml:"data_file"`
	// Algorithm is dfs, ucs, astar or all.
	Algorithm string `yaml:"algorithm" toml:"algorithm"`
	// MaxExpansions caps expanded partial tours; 0 means unlimited.
	MaxExpansions int `yaml:"max_expansions" toml:"max_expansions"`
	// TimeLimit is a soft budget per search; 0 means none.
	TimeLimit Duration `yaml:"time_limit" toml:"time_limit"`
	// SingleStart restricts exhaustive search to city 0.
	SingleStart bool `yaml:"single_start" toml:"single_start"`
	// MSTMethod is prim or kruskal.
	MSTMethod string `yaml:"mst_method" toml:"mst_method"`
	// Format is text or json.
	Format string `yaml:"format" toml:"format"`
	// Addr is the listen address of the HTTP server.
	Addr string `yaml:"addr" toml:"addr"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Duration wraps time.Duration so it reads as "1m30s" in YAML and TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler (used by TOML and env).
func (d *Duration) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("%w: duration %q: %v", ErrInvalid, s, err)
	}
	d.Duration = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML decodes a scalar duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Algorithm:     "all",
		MaxExpansions: 5_000_000,
		MSTMethod:     string(prim_kruskal.MethodPrim),
		Format:        FormatText,
		Addr:          ":8080",
		LogLevel:      "info",
	}
}

// Load starts from Default, merges the file at path (if path is non-empty),
// then applies environment overrides. envFiles are loaded with godotenv
// before the environment is read; missing env files are an error.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, fmt.Errorf("config: load env files: %w", err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// mergeFile decodes path over cfg, picking the decoder by extension.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		_, err = toml.Decode(string(data), c)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}

	return nil
}

// applyEnv overrides fields from TSPSEARCH_* variables found by lookup.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = v
		}
	}
	str("DATA_FILE", &c.DataFile)
	str("ALGORITHM", &c.Algorithm)
	str("MST_METHOD", &c.MSTMethod)
	str("FORMAT", &c.Format)
	str("ADDR", &c.Addr)
	str("LOG_LEVEL", &c.LogLevel)

	if v, ok := lookup(EnvPrefix + "MAX_EXPANSIONS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sMAX_EXPANSIONS=%q", ErrInvalid, EnvPrefix, v)
		}
		c.MaxExpansions = n
	}
	if v, ok := lookup(EnvPrefix + "SINGLE_START"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sSINGLE_START=%q", ErrInvalid, EnvPrefix, v)
		}
		c.SingleStart = b
	}
	if v, ok := lookup(EnvPrefix + "TIME_LIMIT"); ok {
		if err := c.TimeLimit.UnmarshalText([]byte(v)); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks every setting that has a closed set of values.
func (c Config) Validate() error {
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions=%d must be ≥ 0", ErrInvalid, c.MaxExpansions)
	}
	if c.TimeLimit.Duration < 0 {
		return fmt.Errorf("%w: time_limit=%s must be ≥ 0", ErrInvalid, c.TimeLimit)
	}
	if _, err := c.Algorithms(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := prim_kruskal.ParseMethod(c.MSTMethod); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: format=%q", ErrInvalid, c.Format)
	}

	return nil
}

// Algorithms resolves the Algorithm setting; "all" (or empty) selects every
// strategy in menu order.
func (c Config) Algorithms() ([]tsp.Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(c.Algorithm)) {
	case "", "all":
		return append([]tsp.Algorithm(nil), tsp.Algorithms...), nil
	}
	a, err := tsp.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return nil, err
	}

	return []tsp.Algorithm{a}, nil
}

// SearchOptions maps the settings onto tsp functional options.
// Call Validate first; an invalid MSTMethod falls back to Prim.
func (c Config) SearchOptions() []tsp.Option {
	method, err := prim_kruskal.ParseMethod(c.MSTMethod)
	if err != nil {
		method = prim_kruskal.MethodPrim
	}
	opts := []tsp.Option{
		tsp.WithMaxExpansions(c.MaxExpansions),
		tsp.WithTimeLimit(c.TimeLimit.Duration),
		tsp.WithMSTMethod(method),
	}
	if c.SingleStart {
		opts = append(opts, tsp.WithSingleStart())
	}

	return opts
}
