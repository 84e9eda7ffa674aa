package match

import "testing"

func TestFindIn(t *testing.T) {
	tests := []struct {
		name          string
		haystack      string
		query         string
		wantStart     int
		wantEnd       int
		wantRemainder string
		wantFound     bool
	}{
		{
			name:      "exact match mid-page",
			haystack:  "abcdefgh",
			query:     "cde",
			wantStart: 2,
			wantEnd:   4,
			wantFound: true,
		},
		{
			name:      "exact match whole page",
			haystack:  "abc",
			query:     "abc",
			wantStart: 0,
			wantEnd:   2,
			wantFound: true,
		},
		{
			name:      "first occurrence wins",
			haystack:  "abcabc",
			query:     "abc",
			wantStart: 0,
			wantEnd:   2,
			wantFound: true,
		},
		{
			name:          "partial match at page end",
			haystack:      "xxabc",
			query:         "abcdef",
			wantStart:     2,
			wantEnd:       4,
			wantRemainder: "def",
			wantFound:     true,
		},
		{
			name:          "single trailing character carries",
			haystack:      "xxa",
			query:         "abc",
			wantStart:     2,
			wantEnd:       2,
			wantRemainder: "bc",
			wantFound:     true,
		},
		{
			name:          "longest prefix preferred",
			haystack:      "zzabab",
			query:         "ababx",
			wantStart:     2,
			wantEnd:       5,
			wantRemainder: "x",
			wantFound:     true,
		},
		{
			name:          "total miss",
			haystack:      "zzz",
			query:         "abc",
			wantRemainder: "abc",
			wantFound:     false,
		},
		{
			name:          "empty query",
			haystack:      "abc",
			query:         "",
			wantRemainder: "",
			wantFound:     false,
		},
		{
			name:          "empty haystack",
			haystack:      "",
			query:         "abc",
			wantRemainder: "abc",
			wantFound:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, remainder, found := findIn(tt.haystack, tt.query)
			if found != tt.wantFound {
				t.Fatalf("findIn(%q, %q) found = %v, want %v", tt.haystack, tt.query, found, tt.wantFound)
			}
			if remainder != tt.wantRemainder {
				t.Errorf("findIn(%q, %q) remainder = %q, want %q", tt.haystack, tt.query, remainder, tt.wantRemainder)
			}
			if !found {
				return
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("findIn(%q, %q) = (%d, %d), want (%d, %d)", tt.haystack, tt.query, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

// A complete match covers exactly the query; a partial match plus its
// remainder reassembles the query.
func TestFindInReassembles(t *testing.T) {
	cases := []struct {
		haystack, query string
	}{
		{"abcdefgh", "cde"},
		{"xxabc", "abcdef"},
		{"xxa", "abc"},
		{"zzabab", "ababx"},
	}
	for _, c := range cases {
		start, end, remainder, found := findIn(c.haystack, c.query)
		if !found {
			t.Fatalf("findIn(%q, %q) found = false, want true", c.haystack, c.query)
		}
		got := c.haystack[start:end+1] + remainder
		if got != c.query {
			t.Errorf("findIn(%q, %q): matched part + remainder = %q, want %q", c.haystack, c.query, got, c.query)
		}
	}
}
