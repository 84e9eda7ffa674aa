package match

import "strings"

// findIn locates query inside the normalized page text haystack.
//
// A full occurrence returns its start and inclusive end index with an empty
// remainder. Otherwise the longest proper prefix of query that ends the
// haystack yields a partial match: the prefix's position plus the unmatched
// tail as remainder, to be sought at the very start of the next page (a
// citation can only be split at a page boundary). If not even a single
// trailing character of the haystack starts the query, found is false and
// the remainder is the whole query.
//
// Empty query or haystack is an immediate non-match.
func findIn(haystack, query string) (start, end int, remainder string, found bool) {
	if query == "" || haystack == "" {
		return 0, 0, query, false
	}
	if i := strings.Index(haystack, query); i >= 0 {
		return i, i + len(query) - 1, "", true
	}
	for n := len(query) - 1; n > 0; n-- {
		prefix := query[:n]
		if strings.HasSuffix(haystack, prefix) {
			return len(haystack) - n, len(haystack) - 1, query[n:], true
		}
	}
	return 0, 0, query, false
}
