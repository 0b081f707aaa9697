package app

import (
	"strings"
	"testing"

	"github.com/newswire-tools/goenrich/internal/enrich"
	"github.com/newswire-tools/goenrich/internal/table"
)

func TestBuildRunReport(t *testing.T) {
	tbl := &table.Table{
		Columns: []string{"url"},
		Rows: []table.Record{
			{
				"url": "http://x/a", "content": "some text",
				"word_count": "10", "readability_score": "80", "sentiment_score": "0.5",
				"top_keywords": "markets, rally",
			},
			{
				"url": "http://x/b", "content": "more text",
				"word_count": "30", "readability_score": "60", "sentiment_score": "-0.5",
				"top_keywords": "markets, policy",
			},
			{"url": "http://x/c", "word_count": "0"},
		},
	}
	stats := enrich.Stats{Rows: 3, Fetched: 2, Resumed: 1}

	md := buildRunReport(tbl, stats)

	for _, want := range []string{
		"Rows in table: 3",
		"Fetched this run: 2",
		"Articles with content: 2",
		"Total words: 40",
		"Mean readability: 70.00",
		"Mean sentiment: 0.000",
		"- markets (2)",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("report missing %q:\n%s", want, md)
		}
	}
	// markets appears in both rows and must rank first.
	if strings.Index(md, "- markets (2)") > strings.Index(md, "- rally (1)") {
		t.Fatalf("keyword ordering wrong:\n%s", md)
	}
}

func TestTopKeywords_TiesBreakByFirstSeen(t *testing.T) {
	counts := map[string]int{"beta": 1, "alpha": 1, "gamma": 2}
	order := map[string]int{"beta": 0, "alpha": 1, "gamma": 2}
	got := topKeywords(counts, order, 10)
	want := []string{"gamma", "beta", "alpha"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: %v", got)
		}
	}
}
