package analyze

import (
	"regexp"
	"strings"
)

var (
	wordPattern   = regexp.MustCompile(`[a-z0-9']{2,}`)
	sentenceBreak = regexp.MustCompile(`[.!?]\s+`)
)

// Tokenize lowercases text and returns every maximal run of letters, digits
// and apostrophes at least two characters long, in document order. Duplicates
// are retained; callers that need counts do their own bookkeeping.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// SentenceCount splits on terminal punctuation followed by whitespace and
// counts the non-empty fragments. Empty text counts as one sentence so that
// downstream ratios never divide by zero.
func SentenceCount(text string) int {
	n := 0
	for _, frag := range sentenceBreak.Split(strings.TrimSpace(text), -1) {
		if strings.TrimSpace(frag) != "" {
			n++
		}
	}
	if n < 1 {
		return 1
	}
	return n
}

// Syllables estimates the syllable count of a single word by counting
// transitions into vowel runs, discounting a trailing silent "e". Non-letters
// are ignored; a word with letters always scores at least one, an empty word
// scores zero.
func Syllables(word string) int {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	w := b.String()
	if w == "" {
		return 0
	}
	count := 0
	prevVowel := false
	for i := 0; i < len(w); i++ {
		v := isVowel(w[i])
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	if strings.HasSuffix(w, "e") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
