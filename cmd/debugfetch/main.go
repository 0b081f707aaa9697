package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/newswire-tools/goenrich/internal/analyze"
	"github.com/newswire-tools/goenrich/internal/extract"
	"github.com/newswire-tools/goenrich/internal/fetch"
	"github.com/newswire-tools/goenrich/internal/lexicon"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: debugfetch <url>")
		os.Exit(2)
	}
	url := os.Args[1]

	client := &fetch.Client{UserAgent: "debugfetch/1.0", PerRequestTimeout: 20 * time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
	defer cancel()

	raw, err := client.Fetch(ctx, url)
	fmt.Println("err:", err)
	content := extract.FromHTML(raw)
	wc := len(analyze.Tokenize(content))

	fmt.Println("word_count:", wc)
	if wc > 0 {
		fmt.Println("readability:", analyze.ReadingEase(content))
		s := analyze.SentimentScorer{Positive: lexicon.Positive(), Negative: lexicon.Negative()}
		fmt.Println("sentiment:", s.Score(content))
	}
	k := analyze.KeywordExtractor{Stopwords: lexicon.Stopwords()}
	fmt.Println("keywords:", k.Top(content))
	var e analyze.EntityExtractor
	fmt.Println("entities:", e.Top(raw))
	fmt.Println("---")
	fmt.Println(content)
}
