package match

import (
	"sort"
)

// MinScore is the similarity below which a name is not worth suggesting.
const MinScore = 0.5

// Candidate is a known name scored against a requested one.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score.
type CandidateList []Candidate

// Rank scores every known name against name after normalization. Names
// scoring below MinScore are dropped. Ties keep the order of known.
func Rank(name string, known []string) CandidateList {
	norm := Normalize(name)

	var list CandidateList
	for _, k := range known {
		if k == name {
			continue
		}

		score := Similarity(norm, Normalize(k))
		if score < MinScore {
			continue
		}

		list = append(list, Candidate{Name: k, Score: score})
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Score > list[j].Score
	})

	return list
}

// Best returns the top candidate.
func (l CandidateList) Best() (Candidate, bool) {
	if len(l) == 0 {
		return Candidate{}, false
	}

	return l[0], true
}

// Closest returns the known name most similar to name, if any is close enough.
func Closest(name string, known []string) (string, bool) {
	c, ok := Rank(name, known).Best()
	return c.Name, ok
}

// Hint formats a "did you mean" suffix for name, or returns "" when no
// known name is close.
func Hint(name string, known []string) string {
	if s, ok := Closest(name, known); ok {
		return "did you mean " + s + "?"
	}

	return ""
}
