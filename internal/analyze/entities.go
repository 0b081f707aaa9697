package analyze

import (
	"regexp"
	"strings"
)

// entityRun matches two or more consecutive capitalized words, where each word
// is an uppercase letter followed by at least one lowercase letter or digit.
var entityRun = regexp.MustCompile(`\b[A-Z][a-z0-9]+(?:\s+[A-Z][a-z0-9]+)+\b`)

// DefaultEntityCount is how many entities Top returns when TopN is unset.
const DefaultEntityCount = 6

// EntityExtractor heuristically detects capitalized multi-word spans as
// candidate named entities. It operates on the raw fetched page, markup
// included, so capitalization inside tags and attributes still surfaces
// candidates.
type EntityExtractor struct {
	MinWords int
	TopN     int
}

// Top returns the most frequent candidate spans, comma-and-space-joined.
// A span must contain at least MinWords words (default 2) and at least one
// word longer than two characters. Matching is exact: casing variants are
// counted separately.
func (e EntityExtractor) Top(raw string) string {
	minWords := e.MinWords
	if minWords <= 0 {
		minWords = 2
	}
	topN := e.TopN
	if topN <= 0 {
		topN = DefaultEntityCount
	}
	counts := make(map[string]int)
	order := make(map[string]int)
	for _, m := range entityRun.FindAllString(raw, -1) {
		words := strings.Fields(m)
		if len(words) < minWords {
			continue
		}
		long := false
		for _, w := range words {
			if len(w) > 2 {
				long = true
				break
			}
		}
		if !long {
			continue
		}
		span := strings.TrimSpace(m)
		if _, seen := counts[span]; !seen {
			order[span] = len(order)
		}
		counts[span]++
	}
	return strings.Join(rankTop(counts, order, topN), ", ")
}
