// Package config provides unified configuration for the benchplot tool.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the full configuration for a report run. The CLI exposes
// only the input file and output directory; everything else comes from an
// optional config file or BENCHPLOT_* environment variables.
type Config struct {
	// InputFile is the benchmark results CSV to load.
	InputFile string `json:"input_file" yaml:"input_file"`

	// OutputDir is the directory the chart artifacts are written to.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Manifest configuration
	Manifest ManifestConfig `json:"manifest" yaml:"manifest"`

	// Storage configuration for publishing artifacts
	Storage StorageConfig `json:"storage" yaml:"storage"`
}

// ManifestConfig holds run-manifest configuration.
type ManifestConfig struct {
	// Enabled controls whether a run manifest is recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the manifest database path. Empty means
	// <output_dir>/report_manifest.db.
	Path string `json:"path" yaml:"path"`
}

// Storage backend types.
const (
	StorageNone  = "none"
	StorageLocal = "local"
	StorageS3    = "s3"
)

// StorageConfig holds artifact publishing configuration.
type StorageConfig struct {
	// Type is the storage type: none, local, s3
	Type string `json:"type" yaml:"type"`

	// Path is the local publish directory (for local type)
	Path string `json:"path" yaml:"path"`

	// S3 configuration (for s3 type)
	S3 S3Config `json:"s3" yaml:"s3"`
}

// S3Config holds S3 publishing configuration.
type S3Config struct {
	// Bucket is the S3 bucket name
	Bucket string `json:"bucket" yaml:"bucket"`

	// Region is the AWS region
	Region string `json:"region" yaml:"region"`

	// Endpoint is the S3 endpoint (for S3-compatible storage)
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// Prefix is the key prefix artifacts are published under
	Prefix string `json:"prefix" yaml:"prefix"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputFile: "gdpr_logger_benchmark_results.csv",
		OutputDir: "gdpr_plots",
		Manifest: ManifestConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			Type: StorageNone,
		},
	}
}

// Resolve fills in paths derived from other settings.
func (c *Config) Resolve() {
	if c.OutputDir == "" {
		c.OutputDir = "gdpr_plots"
	}
	if c.Manifest.Enabled && c.Manifest.Path == "" {
		c.Manifest.Path = filepath.Join(c.OutputDir, "report_manifest.db")
	}
	if c.Storage.Type == StorageS3 && c.Storage.S3.Prefix == "" {
		c.Storage.S3.Prefix = "benchplot"
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return fmt.Errorf("input_file is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}

	switch c.Storage.Type {
	case "", StorageNone, StorageLocal, StorageS3:
		// Valid types
	default:
		return fmt.Errorf("invalid storage type: %s (must be none, local, or s3)", c.Storage.Type)
	}

	if c.Storage.Type == StorageLocal && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required when storage type is local")
	}
	if c.Storage.Type == StorageS3 && c.Storage.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required when storage type is s3")
	}

	return nil
}

// EnsureOutputDir creates the output directory if absent. This must
// succeed before any artifact is written; failure here is fatal.
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", c.OutputDir, err)
	}
	return nil
}

// LoadFromFile loads configuration from a YAML or JSON file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", ext)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the BENCHPLOT_ prefix.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv("BENCHPLOT_INPUT_FILE"); v != "" {
		cfg.InputFile = v
	}
	if v := os.Getenv("BENCHPLOT_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}

	// Manifest configuration
	if v := os.Getenv("BENCHPLOT_MANIFEST_ENABLED"); v != "" {
		cfg.Manifest.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("BENCHPLOT_MANIFEST_PATH"); v != "" {
		cfg.Manifest.Path = v
	}

	// Storage configuration
	if v := os.Getenv("BENCHPLOT_STORAGE_TYPE"); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv("BENCHPLOT_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("BENCHPLOT_S3_BUCKET"); v != "" {
		cfg.Storage.S3.Bucket = v
	}
	if v := os.Getenv("BENCHPLOT_S3_REGION"); v != "" {
		cfg.Storage.S3.Region = v
	}
	if v := os.Getenv("BENCHPLOT_S3_ENDPOINT"); v != "" {
		cfg.Storage.S3.Endpoint = v
	}
	if v := os.Getenv("BENCHPLOT_S3_PREFIX"); v != "" {
		cfg.Storage.S3.Prefix = v
	}
}

// Load builds the effective configuration: defaults, then the optional
// config file named by BENCHPLOT_CONFIG, then environment overrides.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("BENCHPLOT_CONFIG"); path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	LoadFromEnv(cfg)
	return cfg, nil
}
