package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/newswire-tools/goenrich/internal/app"
	"github.com/newswire-tools/goenrich/internal/table"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		configPath      string
		inputPath       string
		outputPath      string
		checkpointPath  string
		userAgent       string
		fetchTimeout    time.Duration
		requestDelay    time.Duration
		checkpointEvery int
		topKeywords     int
		topEntities     int
		minEntityWords  int
		readabilityFB   bool
		cacheDir        string
		cacheMaxAge     time.Duration
		cacheClear      bool
		reportPath      string
		reportPDFPath   string
		verbose         bool
	)

	flag.StringVar(&configPath, "config", os.Getenv("GOENRICH_CONFIG"), "Path to optional YAML/JSON config file")
	flag.StringVar(&inputPath, "input", app.DefaultInput, "Path to input CSV of article rows (must contain a url column)")
	flag.StringVar(&outputPath, "output", app.DefaultOutput, "Path to write the enriched CSV")
	flag.StringVar(&checkpointPath, "checkpoint", "", "Path for periodic checkpoint CSV (default: derived from -output)")
	flag.StringVar(&userAgent, "fetch.ua", app.DefaultUserAgent, "User-Agent header sent with every article fetch")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", app.DefaultFetchTimeout, "Per-request fetch timeout")
	flag.DurationVar(&requestDelay, "fetch.delay", app.DefaultRequestDelay, "Fixed delay between fetch attempts")
	flag.IntVar(&checkpointEvery, "checkpoint.every", app.DefaultCheckpointEvery, "Checkpoint the table after this many fetched rows")
	flag.IntVar(&topKeywords, "keywords.top", app.DefaultTopKeywords, "How many keywords to keep per article")
	flag.IntVar(&topEntities, "entities.top", app.DefaultTopEntities, "How many entities to keep per article")
	flag.IntVar(&minEntityWords, "entities.minWords", app.DefaultMinEntityWords, "Minimum words in a candidate entity span")
	flag.BoolVar(&readabilityFB, "extract.readabilityFallback", false, "Run a readability parse when heuristic extraction finds nothing")
	flag.StringVar(&cacheDir, "cache.dir", os.Getenv("GOENRICH_CACHE_DIR"), "Directory for the on-disk page cache (empty disables)")
	flag.DurationVar(&cacheMaxAge, "cache.maxAge", 0, "Max age for page cache entries before purge (e.g. 24h); 0 disables")
	flag.BoolVar(&cacheClear, "cache.clear", false, "Clear the page cache before the run")
	flag.StringVar(&reportPath, "report", "", "Optional path for a Markdown run report")
	flag.StringVar(&reportPDFPath, "report.pdf", "", "Optional path for a PDF run report")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	cfg := app.Config{
		InputPath:           inputPath,
		OutputPath:          outputPath,
		CheckpointPath:      checkpointPath,
		UserAgent:           userAgent,
		FetchTimeout:        fetchTimeout,
		RequestDelay:        requestDelay,
		CheckpointEvery:     checkpointEvery,
		TopKeywords:         topKeywords,
		TopEntities:         topEntities,
		MinEntityWords:      minEntityWords,
		ReadabilityFallback: readabilityFB,
		CacheDir:            cacheDir,
		CacheMaxAge:         cacheMaxAge,
		CacheClear:          cacheClear,
		ReportPath:          reportPath,
		ReportPDFPath:       reportPDFPath,
		Verbose:             verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("config file load failed")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 for unusable input (missing file or url
		// column), 1 for anything else.
		if errors.Is(err, os.ErrNotExist) || errors.Is(err, table.ErrMissingURLColumn) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	ctx := context.Background()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	return a.Run(ctx)
}
