package analyze

import (
	"sort"
	"strings"

	"github.com/newswire-tools/goenrich/internal/lexicon"
)

// DefaultKeywordCount is how many keywords Top returns when TopN is unset.
const DefaultKeywordCount = 8

// KeywordExtractor ranks frequent non-stopword tokens.
type KeywordExtractor struct {
	Stopwords lexicon.Set
	TopN      int
}

// Top returns the most frequent qualifying tokens as a comma-and-space-joined
// string. Stopwords, tokens of length <= 2 and purely numeric tokens are
// dropped. Frequency ties rank by first appearance in the text. Empty string
// when nothing qualifies.
func (k KeywordExtractor) Top(text string) string {
	topN := k.TopN
	if topN <= 0 {
		topN = DefaultKeywordCount
	}
	counts := make(map[string]int)
	order := make(map[string]int)
	for _, w := range Tokenize(text) {
		if len(w) <= 2 || k.Stopwords.Contains(w) || isNumeric(w) {
			continue
		}
		if _, seen := counts[w]; !seen {
			order[w] = len(order)
		}
		counts[w]++
	}
	return strings.Join(rankTop(counts, order, topN), ", ")
}

// rankTop orders keys by descending count, breaking ties by first-seen order,
// and returns at most n of them.
func rankTop(counts map[string]int, order map[string]int, n int) []string {
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

func isNumeric(w string) bool {
	if w == "" {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < '0' || w[i] > '9' {
			return false
		}
	}
	return true
}
