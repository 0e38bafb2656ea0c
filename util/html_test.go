package util

import (
	"strings"
	"testing"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"<p>Hello <strong>world</strong></p>", "Hello world"},
		{"<h1>Title</h1><p>Body</p>", "Title Body"},
		{"a<br>b", "a b"},
	}
	for _, test := range tests {
		if got := StripTags(strings.NewReader(test.input)); got != test.want {
			t.Errorf("StripTags(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}
