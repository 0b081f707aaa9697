package analyze

import "github.com/newswire-tools/goenrich/internal/lexicon"

// SentimentScorer scores polarity from fixed positive and negative word sets.
// Both lexicons are injected so alternate vocabularies can be swapped in.
type SentimentScorer struct {
	Positive lexicon.Set
	Negative lexicon.Set
}

// Score returns (pos-neg)/(pos+neg) over lexicon hits in the token stream,
// rounded to three decimals. With zero hits the score is exactly 0. The
// result is always within [-1, 1].
func (s SentimentScorer) Score(text string) float64 {
	pos, neg := 0, 0
	for _, w := range Tokenize(text) {
		if s.Positive.Contains(w) {
			pos++
		}
		if s.Negative.Contains(w) {
			neg++
		}
	}
	if pos+neg == 0 {
		return 0
	}
	return round3(float64(pos-neg) / float64(pos+neg))
}
