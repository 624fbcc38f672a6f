// Package config resolves polycipher CLI settings from built-in defaults,
// an optional YAML file and POLYCIPHER_* environment variables, in that
// order of increasing precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polycipher/alphabet"
	"github.com/katalvlaran/polycipher/frequency"
	"github.com/katalvlaran/polycipher/recovery"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "POLYCIPHER_"

// Config is the resolved CLI configuration.
type Config struct {
	Language  string          `yaml:"language"`
	Log       LogConfig       `yaml:"log"`
	Frequency FrequencyConfig `yaml:"frequency"`
	Recovery  RecoveryConfig  `yaml:"recovery"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// FrequencyConfig controls the freq command.
type FrequencyConfig struct {
	ExcludeSeparator bool `yaml:"exclude_separator"`
	BarWidth         int  `yaml:"bar_width"`
}

// RecoveryConfig mirrors recovery.Options.
type RecoveryConfig struct {
	MinKeyLength int      `yaml:"min_key_length"`
	MaxKeyLength int      `yaml:"max_key_length"`
	SampleSize   int      `yaml:"sample_size"`
	Top          int      `yaml:"top"`
	Cribs        []string `yaml:"cribs"`
	Words        []string `yaml:"words"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Language: alphabet.LangEnglish,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Frequency: FrequencyConfig{
			ExcludeSeparator: false,
			BarWidth:         frequency.DefaultBarWidth,
		},
		Recovery: RecoveryConfig{
			MinKeyLength: recovery.DefaultMinKeyLen,
			MaxKeyLength: recovery.DefaultMaxKeyLen,
			SampleSize:   recovery.DefaultSampleSize,
			Top:          recovery.DefaultTopN,
			Cribs:        append([]string(nil), recovery.DefaultCribs...),
			Words:        append([]string(nil), recovery.DefaultWords...),
		},
	}
}

// Load resolves the configuration. An empty path skips the file; a path
// that cannot be read is an error. Environment overrides are applied last
// and the result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := applyFile(&cfg, data); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// applyFile decodes YAML on top of cfg; keys absent from the file keep their
// current values. Unknown keys are rejected.
func applyFile(cfg *Config, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if val, ok := lookupEnv("LANG"); ok {
		cfg.Language = val
	}
	if val, ok := lookupEnv("LOG_LEVEL"); ok {
		cfg.Log.Level = val
	}
	if val, ok := lookupEnv("LOG_FORMAT"); ok {
		cfg.Log.Format = val
	}
	if val, ok := lookupEnv("EXCLUDE_SEPARATOR"); ok {
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%w: %sEXCLUDE_SEPARATOR=%q", ErrInvalid, EnvPrefix, val)
		}
		cfg.Frequency.ExcludeSeparator = b
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"BAR_WIDTH", &cfg.Frequency.BarWidth},
		{"MIN_KEY_LENGTH", &cfg.Recovery.MinKeyLength},
		{"MAX_KEY_LENGTH", &cfg.Recovery.MaxKeyLength},
		{"SAMPLE_SIZE", &cfg.Recovery.SampleSize},
		{"TOP", &cfg.Recovery.Top},
	}
	for _, it := range ints {
		val, ok := lookupEnv(it.name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, it.name, val)
		}
		*it.dst = n
	}

	if val, ok := lookupEnv("CRIBS"); ok {
		cfg.Recovery.Cribs = SplitList(val)
	}
	if val, ok := lookupEnv("WORDS"); ok {
		cfg.Recovery.Words = SplitList(val)
	}

	return nil
}

func lookupEnv(name string) (string, bool) {
	val := strings.TrimSpace(os.Getenv(EnvPrefix + name))

	return val, val != ""
}

// SplitList splits a comma-separated list, trimming blanks and dropping
// empty items. Inner spaces are kept ("second temple" is one crib).
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Language) == "" {
		problems = append(problems, "language is empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q", c.Log.Format))
	}
	if c.Frequency.BarWidth < 1 {
		problems = append(problems, "frequency.bar_width must be positive")
	}
	r := c.Recovery
	if r.MinKeyLength < 1 || r.MaxKeyLength < r.MinKeyLength {
		problems = append(problems, fmt.Sprintf("recovery key lengths %d..%d", r.MinKeyLength, r.MaxKeyLength))
	}
	if r.SampleSize < 1 {
		problems = append(problems, "recovery.sample_size must be positive")
	}
	if r.Top < 0 {
		problems = append(problems, "recovery.top must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}

	return nil
}

// RecoveryOptions converts the recovery section into recovery options.
func (c Config) RecoveryOptions() []recovery.Option {
	return []recovery.Option{
		recovery.WithKeyRange(c.Recovery.MinKeyLength, c.Recovery.MaxKeyLength),
		recovery.WithSampleSize(c.Recovery.SampleSize),
		recovery.WithTopN(c.Recovery.Top),
		recovery.WithWords(c.Recovery.Words...),
		recovery.WithCleanCiphertext(),
	}
}
