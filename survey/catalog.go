package survey

// MaxOptionDistance is the largest possible index distance between two answers.
// Every catalog question has four options (indices 0..3).
const MaxOptionDistance = 3.0

// Question is one multiple-choice item in the catalog.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// Catalog returns the fixed, ordered question set. Each call returns a fresh copy.
func Catalog() []Question {
	out := make([]Question, len(catalog))
	for i, q := range catalog {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

var catalog = []Question{
	{
		ID:   "Q1",
		Text: "What should the government do to help the poor?",
		Options: []string{
			"Make it easier to apply for assistance",
			"Allow parents to use education funds for charter schools",
			"Create welfare to work programs",
			"Nothing",
		},
	},
	{
		ID:   "Q2",
		Text: "What is your stance on gun control?",
		Options: []string{
			"Stricter gun laws are needed",
			"Current laws are sufficient",
			"Some gun laws should be repealed",
			"The Second Amendment should not be restricted at all",
		},
	},
	{
		ID:   "Q3",
		Text: "What is your view on healthcare?",
		Options: []string{
			"The government should provide universal healthcare",
			"A mix of private and public options should be available",
			"Healthcare should be privatized",
			"The current system works well",
		},
	},
	{
		ID:   "Q4",
		Text: "What is your stance on climate change?",
		Options: []string{
			"It's a critical threat requiring immediate action",
			"It's a concern but economic growth is more important",
			"It's exaggerated and not a significant threat",
			"It's not real or not caused by human activity",
		},
	},
	{
		ID:   "Q5",
		Text: "What is your view on taxation?",
		Options: []string{
			"Increase taxes on the wealthy to fund social programs",
			"Keep tax rates roughly where they are",
			"Lower taxes across the board",
			"Implement a flat tax rate for all",
		},
	},
	{
		ID:   "Q6",
		Text: "What is your stance on immigration?",
		Options: []string{
			"Create a path to citizenship for undocumented immigrants",
			"Allow more skilled workers to immigrate legally",
			"Reduce overall immigration levels",
			"Strictly enforce current immigration laws",
		},
	},
	{
		ID:   "Q7",
		Text: "What is your view on abortion?",
		Options: []string{
			"Should be legal in all or most cases",
			"Should be legal only in certain cases",
			"Should be illegal except in rare cases",
			"Should be illegal in all cases",
		},
	},
	{
		ID:   "Q8",
		Text: "What is your stance on minimum wage?",
		Options: []string{
			"Significantly increase the federal minimum wage",
			"Slightly increase the minimum wage",
			"Keep the minimum wage where it is",
			"Abolish the minimum wage",
		},
	},
	{
		ID:   "Q9",
		Text: "What is your view on the role of government?",
		Options: []string{
			"Government should do more to solve problems",
			"Government is doing too many things better left to businesses and individuals",
			"Government should only handle essential functions like national defense",
			"The less government, the better",
		},
	},
	{
		ID:   "Q10",
		Text: "What is your stance on education policy?",
		Options: []string{
			"Increase funding for public schools and make college free",
			"Focus on improving the current public education system",
			"Promote school choice and charter schools",
			"Privatize education and use a voucher system",
		},
	},
}
