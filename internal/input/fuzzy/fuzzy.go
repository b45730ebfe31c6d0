package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Result is a matched candidate with its score.
type Result struct {
	// Text is the matched candidate.
	Text string

	// Score is the match score (higher is better).
	Score int

	// Matches contains the rune indices of matched characters.
	Matches []int
}

// Match returns the candidates matching query, best first. Ties are
// broken by candidate text so the order is deterministic. Matching is
// case-insensitive. A limit of zero or less returns all matches.
//
// Candidates that do not contain the query as a subsequence still match
// when they are within a small edit distance of it, so transposed or
// mistyped letters are found. Such matches score below typical
// subsequence matches and carry no Matches positions.
func Match(query string, candidates []string, limit int) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	queryRunes := []rune(query)

	var results []Result
	for _, c := range candidates {
		textRunes := []rune(strings.ToLower(c))
		matches := matchRunes(queryRunes, textRunes)
		if matches == nil {
			if d, ok := typoDistance(queryRunes, textRunes); ok {
				results = append(results, Result{Text: c, Score: max(60-20*d, 1)})
			}
			continue
		}
		results = append(results, Result{
			Text:    c,
			Score:   score(queryRunes, textRunes, matches),
			Matches: matches,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Text < results[j].Text
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results
}

// Suggest returns the text of the best matches for query.
func Suggest(query string, candidates []string, limit int) []string {
	results := Match(query, candidates, limit)
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Text
	}
	return names
}

// matchRunes finds the query runes in text with a greedy left-to-right
// scan. It returns nil unless every query rune is found.
func matchRunes(query, text []rune) []int {
	matches := make([]int, 0, len(query))
	qi := 0
	for i := 0; i < len(text) && qi < len(query); i++ {
		if text[i] == query[qi] {
			matches = append(matches, i)
			qi++
		}
	}
	if qi != len(query) {
		return nil
	}
	return matches
}

// typoDistance returns the edit distance between query and text when it
// is small enough to count as a typo: one edit per three query runes,
// and at least one.
func typoDistance(query, text []rune) (int, bool) {
	limit := max(len(query)/3, 1)
	if diff := len(text) - len(query); diff > limit || -diff > limit {
		return 0, false
	}
	d := levenshtein.ComputeDistance(string(query), string(text))
	return d, d <= limit
}

func score(query, text []rune, matches []int) int {
	s := 100

	for i := 1; i < len(matches); i++ {
		if matches[i] == matches[i-1]+1 {
			s += 20
		}
	}

	if matches[0] == 0 {
		s += 25
	} else {
		s -= matches[0]
	}

	// Gaps between the first and last match.
	if gap := matches[len(matches)-1] - matches[0] - len(matches) + 1; gap > 0 {
		s -= gap * 2
	}

	// Shorter candidates are more specific.
	if len(text) < 20 {
		s += 20 - len(text)
	}

	if len(text) >= len(query) && string(text[:len(query)]) == string(query) {
		s += 50
	}

	return max(s, 1)
}
