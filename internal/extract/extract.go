package extract

import (
	"strings"

	"golang.org/x/net/html"
)

// FromHTML pulls article prose out of a raw page. The first <article> element
// wins, then the first <main> element, then the concatenation of every <p>
// body in document order. When none of those structures is present the result
// is the empty string. Script and style subtrees are dropped, entities are
// decoded by the parser, and whitespace runs collapse to single spaces.
//
// The tolerant parser means overlapping or malformed tags never fail; they
// just produce best-effort text.
func FromHTML(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	node, err := html.Parse(strings.NewReader(raw))
	if err != nil || node == nil {
		return ""
	}
	if root := findFirst(node, "article"); root != nil {
		return flatten(root)
	}
	if root := findFirst(node, "main"); root != nil {
		return flatten(root)
	}
	var b strings.Builder
	for _, p := range findAll(node, "p") {
		collectText(&b, p)
		b.WriteByte(' ')
	}
	return collapse(b.String())
}

func findFirst(n *html.Node, tag string) *html.Node {
	var res *html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if res != nil {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			res = cur
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
			if res != nil {
				return
			}
		}
	}
	dfs(n)
	return res
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, tag) {
			out = append(out, cur)
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return out
}

func flatten(root *html.Node) string {
	var b strings.Builder
	collectText(&b, root)
	return collapse(b.String())
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style":
			return
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

// collapse reduces every whitespace run, non-breaking spaces included, to a
// single space and trims the ends.
func collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := true
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\u00a0' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}
