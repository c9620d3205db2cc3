package survey

// QuestionProfile maps a question ID to a party's typical (zero-based) option index.
type QuestionProfile map[string]int

// ProfileTable maps each party to its QuestionProfile. It is the only persisted state.
type ProfileTable map[Party]QuestionProfile

// Responses maps a question ID to the respondent's chosen (zero-based) option index.
type Responses map[string]int

// Clone returns a deep copy of t.
func (t ProfileTable) Clone() ProfileTable {
	if t == nil {
		return nil
	}
	out := make(ProfileTable, len(t))
	for p, prof := range t {
		if prof == nil {
			out[p] = nil
			continue
		}
		cp := make(QuestionProfile, len(prof))
		for id, v := range prof {
			cp[id] = v
		}
		out[p] = cp
	}
	return out
}

// InitializeDefaults builds a table where every party holds the neutral index 0 for every question.
func InitializeDefaults(catalog []Question, parties []Party) ProfileTable {
	t := make(ProfileTable, len(parties))
	for _, p := range parties {
		prof := make(QuestionProfile, len(catalog))
		for _, q := range catalog {
			prof[q.ID] = 0
		}
		t[p] = prof
	}
	return t
}
