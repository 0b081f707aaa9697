package enrich

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/newswire-tools/goenrich/internal/analyze"
	"github.com/newswire-tools/goenrich/internal/table"
)

// Derived column names appended to enriched tables, in output order.
const (
	ColContent     = "content"
	ColWordCount   = "word_count"
	ColReadingTime = "reading_time_min"
	ColReadability = "readability_score"
	ColSentiment   = "sentiment_score"
	ColKeywords    = "top_keywords"
	ColEntities    = "entities"
)

// DerivedColumns lists the appended columns in output order.
var DerivedColumns = []string{
	ColContent, ColWordCount, ColReadingTime, ColReadability,
	ColSentiment, ColKeywords, ColEntities,
}

// DefaultCheckpointEvery is the checkpoint cadence in fetched records.
const DefaultCheckpointEvery = 10

// Fetcher retrieves the decoded page body for a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor turns a raw page into plain prose.
type Extractor interface {
	Text(raw string, pageURL string) string
}

// Stats summarizes one pipeline run.
type Stats struct {
	Rows         int
	Fetched      int
	Resumed      int
	SkippedNoURL int
	FetchErrors  int
	Checkpoints  int
	Elapsed      time.Duration
}

// Pipeline drives each record through the per-row states and checkpoints the
// whole table at a fixed cadence. Processing is strictly sequential: one
// record fully advances before the next begins, so the table needs no
// locking.
type Pipeline struct {
	Fetcher   Fetcher
	Extractor Extractor
	Sentiment analyze.SentimentScorer
	Keywords  analyze.KeywordExtractor
	Entities  analyze.EntityExtractor

	// Delay is the fixed inter-request spacing between fetch attempts.
	// Zero disables pacing.
	Delay time.Duration
	// CheckpointEvery is the cadence in fetched records; default 10.
	CheckpointEvery int
	// Checkpoint, when set, persists the full table. Write failures are
	// logged and do not stop the run.
	Checkpoint func(t *table.Table) error

	limiter *rate.Limiter
}

// Run advances every record in the table. Records loaded with non-empty
// content are already enriched and skipped, which is what makes re-running
// against a partially populated table a resume. Per-record fetch failures are
// isolated: the record is scored against empty content and the run continues.
// Only context cancellation aborts the loop.
func (p *Pipeline) Run(ctx context.Context, t *table.Table) (Stats, error) {
	start := time.Now()
	t.EnsureColumns(DerivedColumns...)

	every := p.CheckpointEvery
	if every <= 0 {
		every = DefaultCheckpointEvery
	}
	if p.Delay > 0 && p.limiter == nil {
		p.limiter = rate.NewLimiter(rate.Every(p.Delay), 1)
	}

	stats := Stats{Rows: len(t.Rows)}
	for i, rec := range t.Rows {
		state := StatePending
		if rec[ColContent] != "" {
			state = StatePersisted
			stats.Resumed++
			log.Debug().Int("row", i+1).Int("total", stats.Rows).
				Stringer("state", state).Msg("already enriched, skipping")
			continue
		}

		url := strings.TrimSpace(rec["url"])
		if url == "" {
			state = StateSkippedNoURL
			for _, col := range DerivedColumns {
				rec[col] = ""
			}
			stats.SkippedNoURL++
			log.Warn().Int("row", i+1).Int("total", stats.Rows).
				Stringer("state", state).Msg("no url, skipping")
			continue
		}

		// Pace fetch attempts, failures included, to respect the target site.
		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				return stats, err
			}
		}

		state = StateFetching
		log.Info().Int("row", i+1).Int("total", stats.Rows).Str("url", url).Msg("fetching")
		raw, err := p.Fetcher.Fetch(ctx, url)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.FetchErrors++
			log.Error().Err(err).Str("url", url).Msg("fetch failed; recording empty content")
			raw = ""
		}

		content := p.Extractor.Text(raw, url)
		state = StateExtracted
		if content == "" {
			log.Debug().Str("url", url).Stringer("state", state).Msg("empty content extracted")
		}

		fields := p.score(content, raw)
		state = StateScored

		for col, val := range fields {
			rec[col] = val
		}
		state = StatePersisted
		stats.Fetched++
		log.Debug().Int("row", i+1).Stringer("state", state).
			Str("word_count", fields[ColWordCount]).Msg("row enriched")

		if stats.Fetched%every == 0 && p.Checkpoint != nil {
			if err := p.Checkpoint(t); err != nil {
				log.Error().Err(err).Msg("checkpoint write failed")
			} else {
				stats.Checkpoints++
				log.Info().Int("fetched", stats.Fetched).Msg("checkpoint saved")
			}
		}
	}
	stats.Elapsed = time.Since(start)
	return stats, nil
}

// score computes every derived field for one record. content is the extracted
// prose; raw is the unstripped page the entities run against, markup included.
func (p *Pipeline) score(content, raw string) map[string]string {
	wc := len(analyze.Tokenize(content))

	readability := ""
	sentiment := 0.0
	if wc > 0 {
		readability = formatFloat(analyze.ReadingEase(content))
		sentiment = p.Sentiment.Score(content)
	}

	return map[string]string{
		ColContent:     content,
		ColWordCount:   strconv.Itoa(wc),
		ColReadingTime: formatFloat(analyze.ReadingTimeMinutes(wc)),
		ColReadability: readability,
		ColSentiment:   formatFloat(sentiment),
		ColKeywords:    p.Keywords.Top(content),
		ColEntities:    p.Entities.Top(raw),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
