// Package match is the citation-locating engine: it normalizes text into a
// fixed matching alphabet, indexes each page's words with a mapping back to
// their coordinates, and finds exact occurrences of citation texts that may
// be split across page boundaries.
package match

import "strings"

// Tokenize reduces text to the fixed matching alphabet: ASCII letters,
// digits and the punctuation set !?.,;:'" are kept; everything else,
// including all whitespace, is dropped. No case folding. Because the alphabet is pure
// ASCII, byte indices into the result are character indices.
func Tokenize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if allowed(text[i]) {
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

func allowed(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '?', '.', ',', ';', ':', '\'', '"':
		return true
	}
	return false
}
