package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const healthFile = "health.yaml"

// HealthConfig holds the tunable thresholds of the Tier 2 triggers,
// loaded from .dewey/health.yaml.
type HealthConfig struct {
	SourceDrift     SourceDriftConfig     `yaml:"source_drift"`
	WhyQuality      WhyQualityConfig      `yaml:"why_quality"`
	CitationQuality CitationQualityConfig `yaml:"citation_quality"`
}

// SourceDriftConfig configures the staleness trigger.
type SourceDriftConfig struct {
	// MaxAgeDays is how long after last_validated content is considered fresh.
	// Default: 90
	MaxAgeDays int `yaml:"max_age_days"`
}

// WhyQualityConfig configures the "Why This Matters" trigger.
type WhyQualityConfig struct {
	// MinWords is the minimum section length. Default: 50
	MinWords int `yaml:"min_words"`
}

// CitationQualityConfig configures the repeated-citation trigger.
type CitationQualityConfig struct {
	// DuplicateThreshold is how many times one URL may be cited before it
	// is reported. Default: 3
	DuplicateThreshold int `yaml:"duplicate_threshold"`
}

// DefaultHealthConfig returns the thresholds used when nothing is configured.
func DefaultHealthConfig() HealthConfig {
	return HealthConfig{
		SourceDrift:     SourceDriftConfig{MaxAgeDays: 90},
		WhyQuality:      WhyQualityConfig{MinWords: 50},
		CitationQuality: CitationQualityConfig{DuplicateThreshold: 3},
	}
}

// HealthPath returns the location of health.yaml for kbRoot.
func HealthPath(kbRoot string) string {
	return filepath.Join(kbRoot, DirName, healthFile)
}

// LoadHealthConfig reads health.yaml and applies DEWEY_* environment
// overrides. A missing file is not an error. On any error the returned
// config is the defaults, so callers may log and carry on.
func LoadHealthConfig(kbRoot string) (HealthConfig, error) {
	cfg := DefaultHealthConfig()

	data, err := os.ReadFile(HealthPath(kbRoot))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return DefaultHealthConfig(), fmt.Errorf("reading %s: %w", healthFile, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultHealthConfig(), fmt.Errorf("parsing %s: %w", healthFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return DefaultHealthConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultHealthConfig(), err
	}
	return cfg, nil
}

// SaveHealthConfig writes cfg to health.yaml, creating .dewey/ if needed.
func SaveHealthConfig(kbRoot string, cfg HealthConfig) (string, error) {
	if err := os.MkdirAll(filepath.Join(kbRoot, DirName), 0755); err != nil {
		return "", fmt.Errorf("failed to create %s dir: %w", DirName, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshaling health config: %w", err)
	}

	path := HealthPath(kbRoot)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing health config: %w", err)
	}
	return path, nil
}

// Validate checks that every threshold is usable.
func (c HealthConfig) Validate() error {
	if c.SourceDrift.MaxAgeDays < 1 {
		return fmt.Errorf("source_drift.max_age_days must be at least 1 (got %d)", c.SourceDrift.MaxAgeDays)
	}
	if c.WhyQuality.MinWords < 0 {
		return fmt.Errorf("why_quality.min_words cannot be negative (got %d)", c.WhyQuality.MinWords)
	}
	if c.CitationQuality.DuplicateThreshold < 2 {
		return fmt.Errorf("citation_quality.duplicate_threshold must be at least 2 (got %d)",
			c.CitationQuality.DuplicateThreshold)
	}
	return nil
}

// applyEnv overrides thresholds from the environment:
//   - DEWEY_SOURCE_DRIFT_MAX_AGE_DAYS
//   - DEWEY_WHY_QUALITY_MIN_WORDS
//   - DEWEY_CITATION_DUPLICATE_THRESHOLD
func (c *HealthConfig) applyEnv() error {
	if err := parseEnvInt("DEWEY_SOURCE_DRIFT_MAX_AGE_DAYS", &c.SourceDrift.MaxAgeDays); err != nil {
		return err
	}
	if err := parseEnvInt("DEWEY_WHY_QUALITY_MIN_WORDS", &c.WhyQuality.MinWords); err != nil {
		return err
	}
	return parseEnvInt("DEWEY_CITATION_DUPLICATE_THRESHOLD", &c.CitationQuality.DuplicateThreshold)
}

// parseEnvInt parses an int from an environment variable
func parseEnvInt(key string, dest *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil // Use default
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}
