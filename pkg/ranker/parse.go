package ranker

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dtnitsch/wikilens/models"
)

// ("/wiki/Foo", 7) or ('/wiki/Foo', 7); hrefs may contain parentheses.
var tuplePattern = regexp.MustCompile(`\(\s*["'](/wiki/[^"']+)["']\s*,\s*(\d+)\s*\)`)

// ParseRanked reads the tuples between the first '[' and the last ']' of the
// model answer. Scores are clamped to 1..10 and repeated hrefs keep their
// first position.
func ParseRanked(answer string) ([]models.RankedLink, error) {
	start := strings.Index(answer, "[")
	end := strings.LastIndex(answer, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoRanking
	}

	seen := make(map[string]bool)
	var ranked []models.RankedLink
	for _, m := range tuplePattern.FindAllStringSubmatch(answer[start:end+1], -1) {
		href := m[1]
		if seen[href] {
			continue
		}
		score, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		seen[href] = true
		ranked = append(ranked, models.RankedLink{Href: href, Score: clamp(score, 1, 10)})
	}

	if len(ranked) == 0 {
		return nil, ErrNoRanking
	}
	return ranked, nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
