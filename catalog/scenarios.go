package catalog

import "moneypath/rng"

// Scenario is a randomized starting position for a new campaign.
// Cash, income and expenses are drawn uniformly from the declared ranges.
type Scenario struct {
	ID          string
	Title       string
	Description string
	Age         int
	CashMax     float64
	IncomeMin   float64
	IncomeMax   float64
	ExpenseMin  float64
	ExpenseMax  float64
}

var scenarios = []Scenario{
	{
		ID: "university_student", Title: "University Student",
		Description: "You're a college student with part-time job savings",
		Age:         20, CashMax: 5000,
		IncomeMin: 8000, IncomeMax: 16000,
		ExpenseMin: 6000, ExpenseMax: 12000,
	},
	{
		ID: "fresh_graduate", Title: "Fresh Graduate",
		Description: "You just graduated and landed your first job",
		Age:         22, CashMax: 5000,
		IncomeMin: 40000, IncomeMax: 55000,
		ExpenseMin: 12000, ExpenseMax: 18000,
	},
	{
		ID: "young_professional", Title: "Young Professional",
		Description: "You've been working for a couple years",
		Age:         24, CashMax: 5000,
		IncomeMin: 50000, IncomeMax: 70000,
		ExpenseMin: 15000, ExpenseMax: 23000,
	},
	{
		ID: "entrepreneur", Title: "Entrepreneur",
		Description: "You started a small business",
		Age:         25, CashMax: 5000,
		IncomeMin: 30000, IncomeMax: 50000,
		ExpenseMin: 10000, ExpenseMax: 16000,
	},
	{
		ID: "career_switcher", Title: "Career Switcher",
		Description: "You switched careers and have some savings",
		Age:         28, CashMax: 5000,
		IncomeMin: 45000, IncomeMax: 60000,
		ExpenseMin: 15000, ExpenseMax: 23000,
	},
	{
		ID: "part_time_worker", Title: "Part-Time Worker",
		Description: "You work part-time while studying or looking for opportunities",
		Age:         21, CashMax: 5000,
		IncomeMin: 6000, IncomeMax: 12000,
		ExpenseMin: 5000, ExpenseMax: 10000,
	},
	{
		ID: "gig_worker", Title: "Gig Worker",
		Description: "You work in the gig economy",
		Age:         23, CashMax: 5000,
		IncomeMin: 18000, IncomeMax: 30000,
		ExpenseMin: 10000, ExpenseMax: 16000,
	},
}

// Scenarios returns every starting scenario.
func Scenarios() []Scenario {
	return scenarios
}

// ScenarioByID looks a scenario up by id.
func ScenarioByID(id string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return Scenario{}, false
}

// Start is a rolled starting position.
type Start struct {
	Scenario       Scenario
	Age            int
	Cash           float64
	YearlyIncome   float64
	YearlyExpenses float64
}

// Roll draws concrete starting numbers for the scenario.
func (s Scenario) Roll(r rng.Rand) Start {
	return Start{
		Scenario:       s,
		Age:            s.Age,
		Cash:           float64(r.IntN(int(s.CashMax) + 1)),
		YearlyIncome:   s.IncomeMin + float64(r.IntN(int(s.IncomeMax-s.IncomeMin))),
		YearlyExpenses: s.ExpenseMin + float64(r.IntN(int(s.ExpenseMax-s.ExpenseMin))),
	}
}

// RandomScenario picks one scenario uniformly.
func RandomScenario(r rng.Rand) Scenario {
	return scenarios[r.IntN(len(scenarios))]
}
