package tools

import (
	"io"
	"os"

	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/corpus"
	"github.com/opencatalog/z3950/std/log"
	"github.com/opencatalog/z3950/std/utils/toolutils"
)

// Config is the configuration shared by all tools.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel log.Level `yaml:"log_level"`
	// LogJSON switches the log output to JSON lines.
	LogJSON bool `yaml:"log_json"`
	// Limits bound the decoder.
	Limits ber.Limits `yaml:"limits"`
	// Corpus locates the capture corpus.
	Corpus CorpusConfig `yaml:"corpus"`
}

type CorpusConfig struct {
	// Path of the badger directory. Empty keeps the corpus in memory.
	Path string `yaml:"path"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel: log.LevelInfo,
		Limits:   ber.DefaultLimits,
		Corpus:   CorpusConfig{Path: "./corpus"},
	}
}

// Load reads a YAML configuration file on top of c.
func (c *Config) Load(file string) error {
	return toolutils.ReadYaml(c, file)
}

// ApplyLogger installs the default logger described by c, writing to w.
func (c *Config) ApplyLogger(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	var logger *log.Logger
	if c.LogJSON {
		logger = log.NewJSON(w)
	} else {
		logger = log.NewText(w)
	}
	logger.SetLevel(c.LogLevel)
	log.SetDefault(logger)
}

// OpenCorpus opens the configured corpus store.
func (c *Config) OpenCorpus() (corpus.Store, error) {
	if c.Corpus.Path == "" {
		return corpus.NewMemoryStore(), nil
	}
	return corpus.NewBadgerStore(c.Corpus.Path)
}
