package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/newswire-tools/goenrich/internal/enrich"
	"github.com/newswire-tools/goenrich/internal/table"
)

// buildRunReport renders a short Markdown summary of a run: row accounting
// from the pipeline stats plus aggregate text statistics over the enriched
// table as it now stands.
func buildRunReport(t *table.Table, stats enrich.Stats) string {
	var b strings.Builder
	b.WriteString("# goenrich run report\n\n")

	b.WriteString("## Run\n\n")
	fmt.Fprintf(&b, "- Rows in table: %d\n", stats.Rows)
	fmt.Fprintf(&b, "- Fetched this run: %d\n", stats.Fetched)
	fmt.Fprintf(&b, "- Resumed (already enriched): %d\n", stats.Resumed)
	fmt.Fprintf(&b, "- Skipped (no url): %d\n", stats.SkippedNoURL)
	fmt.Fprintf(&b, "- Fetch errors: %d\n", stats.FetchErrors)
	fmt.Fprintf(&b, "- Checkpoints written: %d\n", stats.Checkpoints)
	fmt.Fprintf(&b, "- Elapsed: %s\n", stats.Elapsed.Round(10*time.Millisecond))

	words := 0
	withContent := 0
	scored := 0
	var readabilitySum, sentimentSum float64
	sentimentN := 0
	keywordCounts := make(map[string]int)
	keywordOrder := make(map[string]int)
	for _, rec := range t.Rows {
		wc, err := strconv.Atoi(rec[enrich.ColWordCount])
		if err != nil || wc <= 0 {
			continue
		}
		words += wc
		withContent++
		if v, err := strconv.ParseFloat(rec[enrich.ColReadability], 64); err == nil {
			readabilitySum += v
			scored++
		}
		if v, err := strconv.ParseFloat(rec[enrich.ColSentiment], 64); err == nil {
			sentimentSum += v
			sentimentN++
		}
		for _, kw := range strings.Split(rec[enrich.ColKeywords], ",") {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			if _, seen := keywordCounts[kw]; !seen {
				keywordOrder[kw] = len(keywordOrder)
			}
			keywordCounts[kw]++
		}
	}

	b.WriteString("\n## Corpus\n\n")
	fmt.Fprintf(&b, "- Articles with content: %d\n", withContent)
	fmt.Fprintf(&b, "- Total words: %d\n", words)
	if scored > 0 {
		fmt.Fprintf(&b, "- Mean readability: %.2f\n", readabilitySum/float64(scored))
	}
	if sentimentN > 0 {
		fmt.Fprintf(&b, "- Mean sentiment: %.3f\n", sentimentSum/float64(sentimentN))
	}

	if len(keywordCounts) > 0 {
		b.WriteString("\n## Frequent keywords\n\n")
		for _, kw := range topKeywords(keywordCounts, keywordOrder, 10) {
			fmt.Fprintf(&b, "- %s (%d)\n", kw, keywordCounts[kw])
		}
	}
	return b.String()
}

func topKeywords(counts map[string]int, order map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return order[keys[i]] < order[keys[j]]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
