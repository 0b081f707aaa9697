package lexicon

// Set is an immutable membership set of lowercase words. Build one with New
// and treat it as read-only afterwards; scorers receive sets by injection so
// alternate lexicons can be swapped in without touching package state.
type Set map[string]struct{}

// New builds a Set from the given words.
func New(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether w is in the set.
func (s Set) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int { return len(s) }

// Stopwords returns the default stopword set used by keyword extraction.
func Stopwords() Set {
	return New(
		"the", "and", "a", "an", "in", "on", "for", "to", "of", "is", "are", "was", "were",
		"by", "with", "as", "that", "this", "it", "from", "at", "be", "has", "have", "had",
		"but", "or", "not", "we", "they", "he", "she", "i", "you", "your", "our", "us", "their",
		"which", "will", "its", "can", "about", "more", "after", "also", "one", "all", "new",
	)
}

// Positive returns the default positive sentiment lexicon.
func Positive() Set {
	return New(
		"good", "great", "positive", "gain", "gains", "rise", "up", "beat", "beats",
		"profit", "growth", "improve", "surge", "strong", "optimistic", "bull",
	)
}

// Negative returns the default negative sentiment lexicon.
func Negative() Set {
	return New(
		"bad", "worse", "negative", "loss", "losses", "fall", "down", "miss", "missed",
		"drop", "weak", "decline", "declining", "bear", "pessimistic", "crash",
	)
}
