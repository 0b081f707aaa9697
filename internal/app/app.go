package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/newswire-tools/goenrich/internal/analyze"
	"github.com/newswire-tools/goenrich/internal/cache"
	"github.com/newswire-tools/goenrich/internal/enrich"
	"github.com/newswire-tools/goenrich/internal/extract"
	"github.com/newswire-tools/goenrich/internal/fetch"
	"github.com/newswire-tools/goenrich/internal/lexicon"
	"github.com/newswire-tools/goenrich/internal/table"
)

// App wires the table, fetch client and pipeline together for one run.
type App struct {
	cfg       Config
	pageCache *cache.PageCache
}

func New(cfg Config) (*App, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	a := &App{cfg: cfg}
	if cfg.CacheDir != "" {
		if cfg.CacheClear {
			_ = cache.ClearDir(cfg.CacheDir)
		}
		if cfg.CacheMaxAge > 0 {
			// Best effort; an unreadable cache must not fail startup.
			_, _ = cache.PurgeByAge(cfg.CacheDir, cfg.CacheMaxAge)
		}
		a.pageCache = &cache.PageCache{Dir: cfg.CacheDir}
	}
	return a, nil
}

// Run loads the input table, enriches every pending row, and writes the final
// output. A missing input file or a table without a url column aborts before
// any processing; everything after that is per-row isolated.
func (a *App) Run(ctx context.Context) error {
	t, err := table.Load(a.cfg.InputPath)
	if err != nil {
		return err
	}
	if err := t.RequireColumn("url"); err != nil {
		return err
	}
	log.Info().Str("input", a.cfg.InputPath).Int("rows", len(t.Rows)).Msg("loaded input table")

	checkpointPath := a.cfg.CheckpointPath
	if checkpointPath == "" {
		checkpointPath = deriveCheckpointPath(a.cfg.OutputPath)
	}

	pipe := &enrich.Pipeline{
		Fetcher: &fetch.Client{
			UserAgent:         a.cfg.UserAgent,
			PerRequestTimeout: a.cfg.FetchTimeout,
			Cache:             a.pageCache,
		},
		Extractor: extract.Extractor{ReadabilityFallback: a.cfg.ReadabilityFallback},
		Sentiment: analyze.SentimentScorer{Positive: lexicon.Positive(), Negative: lexicon.Negative()},
		Keywords:  analyze.KeywordExtractor{Stopwords: lexicon.Stopwords(), TopN: a.cfg.TopKeywords},
		Entities:  analyze.EntityExtractor{MinWords: a.cfg.MinEntityWords, TopN: a.cfg.TopEntities},
		Delay:     a.cfg.RequestDelay,
		CheckpointEvery: a.cfg.CheckpointEvery,
		Checkpoint: func(t *table.Table) error {
			return t.Save(checkpointPath)
		},
	}

	stats, err := pipe.Run(ctx, t)
	if err != nil {
		return err
	}

	if err := t.Save(a.cfg.OutputPath); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	log.Info().Str("out", a.cfg.OutputPath).
		Int("fetched", stats.Fetched).
		Int("resumed", stats.Resumed).
		Int("fetch_errors", stats.FetchErrors).
		Msg("wrote enriched table")

	if a.cfg.ReportPath != "" || a.cfg.ReportPDFPath != "" {
		md := buildRunReport(t, stats)
		if a.cfg.ReportPath != "" {
			if err := os.WriteFile(a.cfg.ReportPath, []byte(md), 0o644); err != nil {
				log.Warn().Err(err).Str("path", a.cfg.ReportPath).Msg("run report write failed")
			} else {
				log.Info().Str("report", a.cfg.ReportPath).Msg("wrote run report")
			}
		}
		if a.cfg.ReportPDFPath != "" {
			if err := writeSimplePDF(md, a.cfg.ReportPDFPath); err != nil {
				log.Warn().Err(err).Str("path", a.cfg.ReportPDFPath).Msg("pdf report write failed")
			} else {
				log.Info().Str("report", a.cfg.ReportPDFPath).Msg("wrote pdf report")
			}
		}
	}
	return nil
}

// deriveCheckpointPath places the checkpoint next to the output:
// articles_enriched.csv -> articles_enriched.checkpoint.csv.
func deriveCheckpointPath(outputPath string) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + ".checkpoint" + ext
}
