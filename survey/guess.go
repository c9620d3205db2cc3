package survey

import (
	"errors"
	"math"
	"sort"
	"strings"
)

// TieBand is the absolute score difference under which parties count as tied for the lead.
const TieBand = 0.01

// Guess is the outcome of comparing a respondent's answers against the party profiles.
type Guess struct {
	// Parties holds every party tied for the best score, best first.
	Parties []Party
	// Confident is true when exactly one party leads.
	Confident bool
	// Scores holds every party's summed score, including those outside the lead.
	Scores map[Party]float64
}

// Label renders the guess for display: the party name, or a lean across all tied parties.
func (g Guess) Label() string {
	if len(g.Parties) == 0 {
		return ""
	}
	if g.Confident {
		return string(g.Parties[0])
	}
	names := make([]string, len(g.Parties))
	for i, p := range g.Parties {
		names[i] = string(p)
	}
	return "Leaning towards " + strings.Join(names, " and ")
}

// Score sums 1 - |user - party| / MaxOptionDistance per answered question for each party.
// Questions missing from a party's profile contribute nothing.
func Score(responses Responses, table ProfileTable, parties []Party) map[Party]float64 {
	scores := make(map[Party]float64, len(parties))
	for _, p := range parties {
		scores[p] = 0
	}
	for qid, answer := range responses {
		for _, p := range parties {
			partyAnswer, ok := table[p][qid]
			if !ok {
				continue
			}
			scores[p] += 1.0 - math.Abs(float64(answer-partyAnswer))/MaxOptionDistance
		}
	}
	return scores
}

// GuessAffiliation ranks parties by score and returns every party within TieBand of the best.
// Equal scores keep the order of parties.
func GuessAffiliation(responses Responses, table ProfileTable, parties []Party) (Guess, error) {
	if len(parties) == 0 {
		return Guess{}, errors.New("GuessAffiliation: no parties")
	}

	scores := Score(responses, table, parties)

	ranked := append([]Party(nil), parties...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	best := scores[ranked[0]]
	var top []Party
	for _, p := range ranked {
		if math.Abs(scores[p]-best) >= TieBand {
			break
		}
		top = append(top, p)
	}

	return Guess{
		Parties:   top,
		Confident: len(top) == 1,
		Scores:    scores,
	}, nil
}
