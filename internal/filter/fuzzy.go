package filter

import (
	"strings"
	"unicode"
)

// fuzzyThreshold is the normalized token-overlap score a fuzzy match must
// reach. 0.6 means a majority of the query's tokens have to appear, or
// nearly appear, in the candidate text.
const fuzzyThreshold = 0.6

// Tokenize splits text into lowercase alphanumeric tokens.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Similarity returns a normalized token-overlap score of query against
// text in [0,1]. Each query token contributes 1 when some text token
// contains it or is contained by it, and a partial credit based on a
// shared prefix otherwise. A full containment of the whole query string
// short-circuits to 1.
func Similarity(query, text string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(text)
	if q == "" {
		return 0
	}
	if strings.Contains(t, q) {
		return 1
	}

	queryTokens := Tokenize(q)
	textTokens := Tokenize(t)
	if len(queryTokens) == 0 || len(textTokens) == 0 {
		return 0
	}

	var score float64
	for _, qt := range queryTokens {
		best := 0.0
		for _, tt := range textTokens {
			s := tokenScore(qt, tt)
			if s > best {
				best = s
			}
			if best == 1 {
				break
			}
		}
		score += best
	}
	return score / float64(len(queryTokens))
}

// tokenScore scores one query token against one text token.
func tokenScore(qt, tt string) float64 {
	if qt == tt {
		return 1
	}
	if strings.Contains(tt, qt) || strings.Contains(qt, tt) {
		return 1
	}
	// Partial credit for a shared prefix; "deliver" vs "delivery".
	prefix := commonPrefixLen(qt, tt)
	longer := len(qt)
	if len(tt) > longer {
		longer = len(tt)
	}
	if prefix < 3 {
		return 0
	}
	return float64(prefix) / float64(longer)
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}

// Matches reports whether query matches text under the given mode:
// substring containment (case-insensitive) when fuzzy is false, or a
// similarity above the threshold when fuzzy is true. An empty query
// matches nothing in either mode.
func Matches(query, text string, fuzzy bool) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	if fuzzy {
		return Similarity(q, text) >= fuzzyThreshold
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(q))
}
