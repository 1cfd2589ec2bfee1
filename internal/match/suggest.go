package match

import (
	"sort"

	"companion-generator/internal/common"
)

// DefaultMinScore is the minimum normalized similarity for a suggestion.
const DefaultMinScore = 0.6

// Suggestion is a ranked candidate name.
type Suggestion struct {
	Name  string
	Score float64
}

// Rank scores every candidate against query and returns those at or above
// minScore, best first. Candidates are compared by their last dotted segment
// so "Net.NetworkSettings" matches a query of "NetworkSetings".
// Ties are broken by name for deterministic output.
func Rank(query string, candidates []string, minScore float64) []Suggestion {
	q := common.LastSegment(query)

	var out []Suggestion

	for _, c := range candidates {
		score := IdentSimilarity(q, common.LastSegment(c))
		if score < minScore {
			continue
		}

		out = append(out, Suggestion{Name: c, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Name < out[j].Name
	})

	return out
}

// Suggest returns up to limit candidate names similar to query.
func Suggest(query string, candidates []string, limit int) []string {
	ranked := Rank(query, candidates, DefaultMinScore)
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, len(ranked))
	for i, s := range ranked {
		names[i] = s.Name
	}

	return names
}
