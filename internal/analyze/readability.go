package analyze

import "math"

// ReadingEase computes the Flesch reading-ease score for the given prose:
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words), rounded to two
// decimals. The word count is floored at one; callers with genuinely empty
// content should skip the scorer instead of invoking it.
func ReadingEase(text string) float64 {
	words := Tokenize(text)
	w := len(words)
	if w < 1 {
		w = 1
	}
	s := SentenceCount(text)
	syllables := 0
	for _, word := range words {
		syllables += Syllables(word)
	}
	score := 206.835 - 1.015*(float64(w)/float64(s)) - 84.6*(float64(syllables)/float64(w))
	return round2(score)
}

// ReadingTimeMinutes estimates the minutes needed to read wordCount words at
// 200 words per minute, rounded to two decimals.
func ReadingTimeMinutes(wordCount int) float64 {
	return round2(float64(wordCount) / 200.0)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
