package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeConfig(t, "cfg.yaml", `
input: news.csv
output: news_out.csv
fetch:
  ua: custom-agent/2.0
keywords:
  top: 12
entities:
  top: 3
  minWords: 3
extract:
  readabilityFallback: true
verbose: true
`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Input != "news.csv" || fc.Output != "news_out.csv" {
		t.Fatalf("paths: %+v", fc)
	}
	if fc.Fetch.UA != "custom-agent/2.0" {
		t.Fatalf("ua: %q", fc.Fetch.UA)
	}
	if fc.Keywords.Top != 12 || fc.Entities.Top != 3 || fc.Entities.MinWords != 3 {
		t.Fatalf("limits: %+v", fc)
	}
	if !fc.Extract.ReadabilityFallback || !fc.Verbose {
		t.Fatalf("booleans: %+v", fc)
	}
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeConfig(t, "cfg.json", `{
  "input": "a.csv",
  "checkpointEvery": 5,
  "cache": {"dir": "/tmp/pc", "clear": true}
}`)
	fc, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if fc.Input != "a.csv" || fc.CheckpointEvery != 5 {
		t.Fatalf("unexpected: %+v", fc)
	}
	if fc.Cache.Dir != "/tmp/pc" || !fc.Cache.Clear {
		t.Fatalf("cache: %+v", fc.Cache)
	}
}

func TestLoadConfigFile_Missing(t *testing.T) {
	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestApplyFileConfig_FileFillsDefaultsOnly(t *testing.T) {
	cfg := Config{
		InputPath:       DefaultInput,
		OutputPath:      "explicit_out.csv",
		UserAgent:       DefaultUserAgent,
		FetchTimeout:    DefaultFetchTimeout,
		RequestDelay:    DefaultRequestDelay,
		CheckpointEvery: DefaultCheckpointEvery,
		TopKeywords:     DefaultTopKeywords,
		TopEntities:     DefaultTopEntities,
		MinEntityWords:  DefaultMinEntityWords,
	}
	var fc FileConfig
	fc.Input = "from_file.csv"
	fc.Output = "from_file_out.csv"
	fc.Fetch.UA = "file-agent/1.0"
	fc.Keywords.Top = 4

	ApplyFileConfig(&cfg, fc)

	if cfg.InputPath != "from_file.csv" {
		t.Fatalf("file should override default input, got %q", cfg.InputPath)
	}
	if cfg.OutputPath != "explicit_out.csv" {
		t.Fatalf("explicit flag must win over file, got %q", cfg.OutputPath)
	}
	if cfg.UserAgent != "file-agent/1.0" {
		t.Fatalf("ua: %q", cfg.UserAgent)
	}
	if cfg.TopKeywords != 4 {
		t.Fatalf("keywords: %d", cfg.TopKeywords)
	}
	if cfg.TopEntities != DefaultTopEntities {
		t.Fatalf("untouched field changed: %d", cfg.TopEntities)
	}
}

func TestValidateConfig(t *testing.T) {
	good := Config{InputPath: "in.csv", OutputPath: "out.csv"}
	if err := ValidateConfig(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := []Config{
		{OutputPath: "out.csv"},
		{InputPath: "in.csv"},
		{InputPath: "in.csv", OutputPath: "out.csv", FetchTimeout: -time.Second},
		{InputPath: "in.csv", OutputPath: "out.csv", TopKeywords: -1},
	}
	for i, c := range cases {
		if err := ValidateConfig(c); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}
