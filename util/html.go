package util

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// StripTags tokenizes the input and keeps text content only.
// Consecutive whitespace is collapsed into single spaces.
func StripTags(input io.Reader) string {

	tokenizer := html.NewTokenizerFragment(input, "body")

	var b strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break // assuming tokenizer.Err() == io.EOF
		}
		if tt == html.TextToken {
			b.Write(tokenizer.Text())
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
