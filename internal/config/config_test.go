package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(PathEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("data", "raw", "train.csv"), cfg.TrainPath())
	assert.Equal(t, filepath.Join("data", "raw", "test.csv"), cfg.TestPath())
	assert.Equal(t, filepath.Join("data", "interim", "train_processed.csv"), cfg.TrainOutputPath())
	assert.Equal(t, filepath.Join("data", "interim", "test_processed.csv"), cfg.TestOutputPath())
	assert.Equal(t, ',', cfg.DelimiterRune())
	assert.Equal(t, "text", cfg.CSV.TextColumn)
	assert.Equal(t, "target", cfg.CSV.TargetColumn)
	assert.Equal(t, LabelModeFitTrain, cfg.Labels.Mode)
	assert.Equal(t, "treebank", cfg.Text.Tokenizer)
	assert.Equal(t, "porter", cfg.Text.Stemmer)
	assert.Equal(t, "nltk", cfg.Text.Stopwords)
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Equal(t, "data_preprocessing.log", cfg.Log.File)
	assert.Equal(t, LogLevelDebug, cfg.Log.Level)
	assert.False(t, cfg.Log.Quiet)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.Text.Trace)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `
input:
  dir: "/in"
output:
  dir: "/out"
csv:
  delimiter: ";"
  text_column: "body"
  target_column: "label"
labels:
  mode: "per_dataset"
text:
  stemmer: "snowball"
  trace: true
log:
  quiet: true
  level: "info"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/in", "train.csv"), cfg.TrainPath())
	assert.Equal(t, filepath.Join("/out", "test_processed.csv"), cfg.TestOutputPath())
	assert.Equal(t, ';', cfg.DelimiterRune())
	assert.Equal(t, "body", cfg.CSV.TextColumn)
	assert.Equal(t, "label", cfg.CSV.TargetColumn)
	assert.Equal(t, LabelModePerDataset, cfg.Labels.Mode)
	assert.Equal(t, "snowball", cfg.Text.Stemmer)
	assert.True(t, cfg.Text.Trace)
	assert.True(t, cfg.Log.Quiet)
	assert.Equal(t, LogLevelInfo, cfg.Log.Level)
	assert.Equal(t, "treebank", cfg.Text.Tokenizer)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `
labels:
  mode: "per_dataset"
`)
	t.Setenv("TEXTPREP_LABELS_MODE", "fit_train")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, LabelModeFitTrain, cfg.Labels.Mode)
}

func TestLoad_PathFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `
csv:
  text_column: "review"
`)
	t.Setenv(PathEnv, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "review", cfg.CSV.TextColumn)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv(PathEnv, "")
	t.Setenv("TEXTPREP_TEXT_STEMMER", "lancaster")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lancaster")
}

func TestValidate(t *testing.T) {
	t.Setenv(PathEnv, "")
	valid := func(t *testing.T) *Config {
		t.Helper()
		cfg, err := Load("")
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown label mode", func(c *Config) { c.Labels.Mode = "global" }},
		{"empty text column", func(c *Config) { c.CSV.TextColumn = "" }},
		{"empty target column", func(c *Config) { c.CSV.TargetColumn = "" }},
		{"same columns", func(c *Config) { c.CSV.TargetColumn = c.CSV.TextColumn }},
		{"multi-char delimiter", func(c *Config) { c.CSV.Delimiter = ",," }},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }},
		{"quote delimiter", func(c *Config) { c.CSV.Delimiter = `"` }},
		{"unknown tokenizer", func(c *Config) { c.Text.Tokenizer = "bpe" }},
		{"unknown stopwords", func(c *Config) { c.Text.Stopwords = "spacy" }},
		{"no train file", func(c *Config) { c.Input.TrainFile = "" }},
		{"no test output", func(c *Config) { c.Output.TestFile = "" }},
		{"unknown log level", func(c *Config) { c.Log.Level = "trace" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid(t)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, valid(t).Validate())
}
