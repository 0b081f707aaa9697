package app

import "time"

// Config holds runtime configuration for the application.
type Config struct {
	InputPath      string
	OutputPath     string
	CheckpointPath string

	// Fetch
	UserAgent    string
	FetchTimeout time.Duration
	RequestDelay time.Duration

	// Pipeline
	CheckpointEvery     int
	TopKeywords         int
	TopEntities         int
	MinEntityWords      int
	ReadabilityFallback bool

	// Page cache
	CacheDir    string
	CacheMaxAge time.Duration
	CacheClear  bool

	// Run report
	ReportPath    string
	ReportPDFPath string

	Verbose bool
}
