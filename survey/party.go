package survey

// Party is one of the fixed party labels. It is persisted as its name.
type Party string

const (
	Democratic  Party = "Democratic"
	Republican  Party = "Republican"
	Libertarian Party = "Libertarian"
	Green       Party = "Green"
)

var parties = []Party{Democratic, Republican, Libertarian, Green}

// Parties returns the fixed party list in display order.
func Parties() []Party {
	return append([]Party(nil), parties...)
}

// Valid reports whether p is one of the known parties.
func (p Party) Valid() bool {
	for _, known := range parties {
		if p == known {
			return true
		}
	}
	return false
}

func (p Party) String() string { return string(p) }
