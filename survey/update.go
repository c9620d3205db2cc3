package survey

import (
	"errors"
	"fmt"
)

// UpdateProfile blends responses into party's profile in place.
//
// Each entry becomes (current + response) / 2 with integer truncation, where current defaults to
// the response itself when the party has no prior value for that question. This is a lossy,
// recency-weighted blend rather than a running mean.
func UpdateProfile(table ProfileTable, party Party, responses Responses) error {
	if table == nil {
		return errors.New("UpdateProfile: table is nil")
	}
	if !party.Valid() {
		return fmt.Errorf("UpdateProfile: unknown party %q", party)
	}

	prof := table[party]
	if prof == nil {
		prof = make(QuestionProfile, len(responses))
		table[party] = prof
	}
	for qid, answer := range responses {
		current, ok := prof[qid]
		if !ok {
			current = answer
		}
		prof[qid] = (current + answer) / 2
	}
	return nil
}
