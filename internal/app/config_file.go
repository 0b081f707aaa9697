package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig represents the single-file configuration schema. Nested sections
// map naturally to the flag namespace.
type FileConfig struct {
	Input      string `yaml:"input" json:"input"`
	Output     string `yaml:"output" json:"output"`
	Checkpoint string `yaml:"checkpoint" json:"checkpoint"`

	Fetch struct {
		UA      string        `yaml:"ua" json:"ua"`
		Timeout time.Duration `yaml:"timeout" json:"timeout"`
		Delay   time.Duration `yaml:"delay" json:"delay"`
	} `yaml:"fetch" json:"fetch"`

	CheckpointEvery int `yaml:"checkpointEvery" json:"checkpointEvery"`

	Keywords struct {
		Top int `yaml:"top" json:"top"`
	} `yaml:"keywords" json:"keywords"`

	Entities struct {
		Top      int `yaml:"top" json:"top"`
		MinWords int `yaml:"minWords" json:"minWords"`
	} `yaml:"entities" json:"entities"`

	Extract struct {
		ReadabilityFallback bool `yaml:"readabilityFallback" json:"readabilityFallback"`
	} `yaml:"extract" json:"extract"`

	Cache struct {
		Dir    string        `yaml:"dir" json:"dir"`
		MaxAge time.Duration `yaml:"maxAge" json:"maxAge"`
		Clear  bool          `yaml:"clear" json:"clear"`
	} `yaml:"cache" json:"cache"`

	Report struct {
		Path string `yaml:"path" json:"path"`
		PDF  string `yaml:"pdf" json:"pdf"`
	} `yaml:"report" json:"report"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// Defaults the flag layer establishes; ApplyFileConfig uses them to tell an
// explicit flag apart from an untouched one.
const (
	DefaultInput           = "articles.csv"
	DefaultOutput          = "articles_enriched.csv"
	DefaultUserAgent       = "goenrich/1.0 (+https://github.com/newswire-tools/goenrich)"
	DefaultFetchTimeout    = 20 * time.Second
	DefaultRequestDelay    = 1 * time.Second
	DefaultCheckpointEvery = 10
	DefaultTopKeywords     = 8
	DefaultTopEntities     = 6
	DefaultMinEntityWords  = 2
)

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// still at their flag defaults. Flags should already have been parsed; this
// lets file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if (cfg.InputPath == "" || cfg.InputPath == DefaultInput) && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if (cfg.OutputPath == "" || cfg.OutputPath == DefaultOutput) && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.CheckpointPath == "" && fc.Checkpoint != "" {
		cfg.CheckpointPath = fc.Checkpoint
	}

	if (cfg.UserAgent == "" || cfg.UserAgent == DefaultUserAgent) && fc.Fetch.UA != "" {
		cfg.UserAgent = fc.Fetch.UA
	}
	if (cfg.FetchTimeout == 0 || cfg.FetchTimeout == DefaultFetchTimeout) && fc.Fetch.Timeout > 0 {
		cfg.FetchTimeout = fc.Fetch.Timeout
	}
	if (cfg.RequestDelay == 0 || cfg.RequestDelay == DefaultRequestDelay) && fc.Fetch.Delay > 0 {
		cfg.RequestDelay = fc.Fetch.Delay
	}

	if (cfg.CheckpointEvery == 0 || cfg.CheckpointEvery == DefaultCheckpointEvery) && fc.CheckpointEvery > 0 {
		cfg.CheckpointEvery = fc.CheckpointEvery
	}
	if (cfg.TopKeywords == 0 || cfg.TopKeywords == DefaultTopKeywords) && fc.Keywords.Top > 0 {
		cfg.TopKeywords = fc.Keywords.Top
	}
	if (cfg.TopEntities == 0 || cfg.TopEntities == DefaultTopEntities) && fc.Entities.Top > 0 {
		cfg.TopEntities = fc.Entities.Top
	}
	if (cfg.MinEntityWords == 0 || cfg.MinEntityWords == DefaultMinEntityWords) && fc.Entities.MinWords > 0 {
		cfg.MinEntityWords = fc.Entities.MinWords
	}
	if !cfg.ReadabilityFallback && fc.Extract.ReadabilityFallback {
		cfg.ReadabilityFallback = true
	}

	if cfg.CacheDir == "" && fc.Cache.Dir != "" {
		cfg.CacheDir = fc.Cache.Dir
	}
	if cfg.CacheMaxAge == 0 && fc.Cache.MaxAge > 0 {
		cfg.CacheMaxAge = fc.Cache.MaxAge
	}
	if !cfg.CacheClear && fc.Cache.Clear {
		cfg.CacheClear = true
	}

	if cfg.ReportPath == "" && fc.Report.Path != "" {
		cfg.ReportPath = fc.Report.Path
	}
	if cfg.ReportPDFPath == "" && fc.Report.PDF != "" {
		cfg.ReportPDFPath = fc.Report.PDF
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if cfg.InputPath == "" {
		return errors.New("config: input path is required")
	}
	if cfg.OutputPath == "" {
		return errors.New("config: output path is required")
	}
	if cfg.FetchTimeout < 0 || cfg.RequestDelay < 0 {
		return errors.New("config: negative durations are not allowed")
	}
	if cfg.CheckpointEvery < 0 || cfg.TopKeywords < 0 || cfg.TopEntities < 0 || cfg.MinEntityWords < 0 {
		return errors.New("config: negative limits are not allowed")
	}
	return nil
}
