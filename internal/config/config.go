// Package config loads the preprocessing run configuration.
package config

import "path/filepath"

// Log levels.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
)

// Label modes.
const (
	// LabelModeFitTrain fits the label encoder on the training dataset and
	// reuses it for the test dataset.
	LabelModeFitTrain = "fit_train"
	// LabelModePerDataset fits an independent encoder on each dataset.
	LabelModePerDataset = "per_dataset"
)

// Config is the root configuration.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	CSV    CSVConfig    `yaml:"csv"`
	Labels LabelsConfig `yaml:"labels"`
	Text   TextConfig   `yaml:"text"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig locates the raw datasets.
type InputConfig struct {
	Dir       string `yaml:"dir"        env:"TEXTPREP_INPUT_DIR"        env-default:"./data/raw"`
	TrainFile string `yaml:"train_file" env:"TEXTPREP_INPUT_TRAIN_FILE" env-default:"train.csv"`
	TestFile  string `yaml:"test_file"  env:"TEXTPREP_INPUT_TEST_FILE"  env-default:"test.csv"`
}

// OutputConfig locates the processed datasets.
type OutputConfig struct {
	Dir       string `yaml:"dir"        env:"TEXTPREP_OUTPUT_DIR"        env-default:"./data/interim"`
	TrainFile string `yaml:"train_file" env:"TEXTPREP_OUTPUT_TRAIN_FILE" env-default:"train_processed.csv"`
	TestFile  string `yaml:"test_file"  env:"TEXTPREP_OUTPUT_TEST_FILE"  env-default:"test_processed.csv"`
}

// CSVConfig holds the file format and the columns the pipeline works on.
type CSVConfig struct {
	Delimiter    string `yaml:"delimiter"     env:"TEXTPREP_CSV_DELIMITER"     env-default:","`
	TextColumn   string `yaml:"text_column"   env:"TEXTPREP_CSV_TEXT_COLUMN"   env-default:"text"`
	TargetColumn string `yaml:"target_column" env:"TEXTPREP_CSV_TARGET_COLUMN" env-default:"target"`
}

// LabelsConfig controls label encoding across datasets.
type LabelsConfig struct {
	Mode string `yaml:"mode" env:"TEXTPREP_LABELS_MODE" env-default:"fit_train"`
}

// TextConfig selects the normalizer collaborators.
type TextConfig struct {
	Tokenizer string `yaml:"tokenizer" env:"TEXTPREP_TEXT_TOKENIZER" env-default:"treebank"`
	Stemmer   string `yaml:"stemmer"   env:"TEXTPREP_TEXT_STEMMER"   env-default:"porter"`
	Stopwords string `yaml:"stopwords" env:"TEXTPREP_TEXT_STOPWORDS" env-default:"nltk"`
	// Trace logs every normalization stage at debug level.
	Trace bool `yaml:"trace" env:"TEXTPREP_TEXT_TRACE"`
}

// LogConfig configures the run log.
type LogConfig struct {
	Dir  string `yaml:"dir"   env:"TEXTPREP_LOG_DIR"  env-default:"logs"`
	File string `yaml:"file"  env:"TEXTPREP_LOG_FILE" env-default:"data_preprocessing.log"`
	// Level is the minimum level written: "debug" or "info".
	Level string `yaml:"level" env:"TEXTPREP_LOG_LEVEL" env-default:"debug"`
	JSON  bool   `yaml:"json"  env:"TEXTPREP_LOG_JSON"`
	// Quiet disables the console copy of the log.
	Quiet bool `yaml:"quiet" env:"TEXTPREP_LOG_QUIET"`
}

// TrainPath returns the raw training dataset path.
func (c *Config) TrainPath() string { return filepath.Join(c.Input.Dir, c.Input.TrainFile) }

// TestPath returns the raw test dataset path.
func (c *Config) TestPath() string { return filepath.Join(c.Input.Dir, c.Input.TestFile) }

// TrainOutputPath returns the processed training dataset path.
func (c *Config) TrainOutputPath() string { return filepath.Join(c.Output.Dir, c.Output.TrainFile) }

// TestOutputPath returns the processed test dataset path.
func (c *Config) TestOutputPath() string { return filepath.Join(c.Output.Dir, c.Output.TestFile) }

// DelimiterRune returns the CSV delimiter. Validate guarantees it is a single rune.
func (c *Config) DelimiterRune() rune {
	return []rune(c.CSV.Delimiter)[0]
}
