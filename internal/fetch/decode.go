package fetch

import (
	"mime"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// Decode converts a response body to a string using the charset parameter of
// contentType. Unknown, missing or failing charsets fall back to UTF-8; in
// every path invalid bytes become the Unicode replacement character, so the
// result is always valid UTF-8.
func Decode(body []byte, contentType string) string {
	if label := charsetLabel(contentType); label != "" && !isUTF8Label(label) {
		if enc, err := htmlindex.Get(label); err == nil && enc != nil {
			if decoded, _, err := transform.Bytes(enc.NewDecoder(), body); err == nil {
				return string(decoded)
			}
		}
	}
	return strings.ToValidUTF8(string(body), "�")
}

func charsetLabel(contentType string) string {
	if contentType == "" {
		return ""
	}
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		return strings.ToLower(strings.TrimSpace(params["charset"]))
	}
	return ""
}

func isUTF8Label(label string) bool {
	return label == "utf-8" || label == "utf8"
}
