package logic

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"recipick/internal/domain"
)

// Keywords splits a query on runs of whitespace, ideographic spaces included
func Keywords(query string) []string {
	return strings.Fields(query)
}

// Match returns the candidates whose identity contains any keyword of query,
// compared case-insensitively. Order is preserved. A blank query matches everything.
func Match(candidates []domain.Candidate, query string) []domain.Candidate {
	keywords := lowerAll(Keywords(query))
	if len(keywords) == 0 {
		return candidates
	}

	var matched []domain.Candidate
	for _, c := range candidates {
		if matchesAny(strings.ToLower(c.Identity), keywords) {
			matched = append(matched, c)
		}
	}
	return matched
}

// UnmatchedKeywords lists the keywords of query that match no candidate at all.
// Duplicates are reported once, in query order.
func UnmatchedKeywords(candidates []domain.Candidate, query string) []string {
	var unmatched []string
	seen := make(map[string]bool)

	for _, kw := range Keywords(query) {
		if seen[kw] {
			continue
		}
		seen[kw] = true

		lower := strings.ToLower(kw)
		found := false
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c.Identity), lower) {
				found = true
				break
			}
		}
		if !found {
			unmatched = append(unmatched, kw)
		}
	}
	return unmatched
}

// Suggest returns the identity closest to keyword by edit distance, comparing
// against each whitespace separated part of the identity. Keywords shorter
// than two characters never get a suggestion.
func Suggest(candidates []domain.Candidate, keyword string) (string, bool) {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	n := utf8.RuneCountInString(kw)
	if n < 2 {
		return "", false
	}

	limit := n / 3
	if limit < 1 {
		limit = 1
	}

	best, bestDist := "", limit+1
	for _, c := range candidates {
		for _, part := range strings.Fields(strings.ToLower(c.Identity)) {
			d := levenshtein.ComputeDistance(kw, part)
			if d < bestDist {
				best, bestDist = c.Identity, d
			}
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

func matchesAny(identity string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(identity, kw) {
			return true
		}
	}
	return false
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}
