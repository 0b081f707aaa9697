package extract

import (
	nurl "net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
)

// Extractor wraps the heuristic extraction with an optional readability
// fallback. The fallback only runs when the heuristic finds nothing, so the
// documented container priority is untouched whenever it produces text.
type Extractor struct {
	ReadabilityFallback bool
}

// Text extracts prose from a raw page. pageURL is only used by the fallback
// to resolve relative links and may be empty.
func (e Extractor) Text(raw string, pageURL string) string {
	text := FromHTML(raw)
	if text == "" && e.ReadabilityFallback && strings.TrimSpace(raw) != "" {
		text = readabilityText(raw, pageURL)
	}
	return text
}

func readabilityText(raw, pageURL string) string {
	u, err := nurl.Parse(pageURL)
	if err != nil {
		u = nil
	}
	article, err := readability.FromReader(strings.NewReader(raw), u)
	if err != nil {
		return ""
	}
	return collapse(article.TextContent)
}
