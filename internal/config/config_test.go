package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gdpr_logger_benchmark_results.csv", cfg.InputFile)
	assert.Equal(t, "gdpr_plots", cfg.OutputDir)
	assert.True(t, cfg.Manifest.Enabled)
	assert.Equal(t, "none", cfg.Storage.Type)
	assert.NoError(t, cfg.Validate())
}

func TestResolve_ManifestPathDefaultsToOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = "out"
	cfg.Resolve()
	assert.Equal(t, filepath.Join("out", "report_manifest.db"), cfg.Manifest.Path)
}

func TestValidate_Rejections(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputFile = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Storage.Type = "ftp"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Storage.Type = "s3"
	assert.Error(t, cfg.Validate(), "s3 without bucket must fail")
	cfg.Storage.S3.Bucket = "reports"
	assert.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Storage.Type = "local"
	assert.Error(t, cfg.Validate(), "local without path must fail")
	cfg.Storage.Path = "/tmp/published"
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchplot.yaml")
	data := []byte(`
input_file: results.csv
output_dir: charts
manifest:
  enabled: false
storage:
  type: s3
  s3:
    bucket: bench-reports
    region: eu-west-1
    prefix: nightly
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "results.csv", cfg.InputFile)
	assert.Equal(t, "charts", cfg.OutputDir)
	assert.False(t, cfg.Manifest.Enabled)
	assert.Equal(t, "s3", cfg.Storage.Type)
	assert.Equal(t, "bench-reports", cfg.Storage.S3.Bucket)
	assert.Equal(t, "nightly", cfg.Storage.S3.Prefix)
}

func TestLoadFromFile_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "benchplot.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BENCHPLOT_INPUT_FILE", "env.csv")
	t.Setenv("BENCHPLOT_OUTPUT_DIR", "env_plots")
	t.Setenv("BENCHPLOT_MANIFEST_ENABLED", "false")
	t.Setenv("BENCHPLOT_STORAGE_TYPE", "s3")
	t.Setenv("BENCHPLOT_S3_BUCKET", "env-bucket")

	cfg := DefaultConfig()
	LoadFromEnv(cfg)

	assert.Equal(t, "env.csv", cfg.InputFile)
	assert.Equal(t, "env_plots", cfg.OutputDir)
	assert.False(t, cfg.Manifest.Enabled)
	assert.Equal(t, "s3", cfg.Storage.Type)
	assert.Equal(t, "env-bucket", cfg.Storage.S3.Bucket)
}

func TestEnsureOutputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = filepath.Join(t.TempDir(), "nested", "plots")
	require.NoError(t, cfg.EnsureOutputDir())

	info, err := os.Stat(cfg.OutputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
